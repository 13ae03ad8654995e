package main

import (
	"fmt"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	absenceService "github.com/pontolabs/ponto-backend-go/internal/service/absence"
	authService "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	balanceService "github.com/pontolabs/ponto-backend-go/internal/service/balance"
	employeeService "github.com/pontolabs/ponto-backend-go/internal/service/employee"
	scheduleService "github.com/pontolabs/ponto-backend-go/internal/service/schedule"
	timeRecordService "github.com/pontolabs/ponto-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}
	weekStartsOn, err := cfg.WeekStartDay()
	if err != nil {
		fmt.Println("Error loading week convention:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc)
	scheduleSvc := scheduleService.NewWorkScheduleService(scheduleRepo, employeeRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, scheduleRepo, employeeRepo, loc)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, timeRecordRepo, employeeRepo, loc)
	balanceSvc := balanceService.NewBalanceService(scheduleRepo, timeRecordRepo, absenceRepo, employeeRepo, loc, weekStartsOn)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Absence:    appHTTP.NewAbsenceHandler(absenceSvc),
		TimeRecord: appHTTP.NewTimeRecordHandler(timeRecordSvc),
		Balance:    appHTTP.NewBalanceHandler(balanceSvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
