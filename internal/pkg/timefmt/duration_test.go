package timefmt

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3600, "01:00:00"},
		{28800, "08:00:00"},
		{-28800, "-08:00:00"},
		{3661, "01:01:01"},
		{-1, "-00:00:01"},
		{90000, "25:00:00"},     // beyond 24h
		{624000, "173:20:00"},   // accumulated period balance
		{-624000, "-173:20:00"}, // negative accumulated balance
	}
	for _, c := range cases {
		if got := Format(c.seconds); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"00:00:00", 0},
		{"08:00:00", 28800},
		{"-08:00:00", -28800},
		{"01:01:01", 3661},
		{"173:20:00", 624000},
		{"-00:00:01", -1},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{"", "8:00", "08:00", "08:60:00", "08:00:60", "abc", "08-00-00", "08:0:00", "08:00:0", "+08:00:00"}
	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) = nil error, want error", s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 59, -59, 3600, -3600, 28799, 86400, -86400, 604800, 31536000, -31536000}
	for _, v := range values {
		got, err := Parse(Format(v))
		if err != nil {
			t.Fatalf("Parse(Format(%d)) returned error: %v", v, err)
		}
		if got != v {
			t.Errorf("Parse(Format(%d)) = %d", v, got)
		}
	}
}

func TestFromHours(t *testing.T) {
	cases := []struct {
		hours string
		want  int64
	}{
		{"8", 28800},
		{"8.5", 30600},
		{"7.75", 27900},
		{"-8", -28800},
		{"0", 0},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.hours)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.hours, err)
		}
		if got := FromHours(d); got != c.want {
			t.Errorf("FromHours(%s) = %d, want %d", c.hours, got, c.want)
		}
	}
}

func TestHours(t *testing.T) {
	if got := Hours(30600); got.String() != "8.5" {
		t.Errorf("Hours(30600) = %s, want 8.5", got)
	}
	if got := Hours(-28800); got.String() != "-8" {
		t.Errorf("Hours(-28800) = %s, want -8", got)
	}
}
