package swimtime

import (
	"math"
	"testing"
)

func TestParseSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"22.10", 22.10},
		{"58.9", 58.9},
		{"1:02.45", 62.45},
		{"10:15.00", 615},
		{"1:02:03.50", 3723.5},
		{" 21.90 ", 21.90},
	}
	for _, c := range cases {
		if got := ParseSeconds(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ParseSeconds(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSecondsInvalid(t *testing.T) {
	for _, in := range []string{"", "NT", "DNS", "DQ", "ns", "abc", "1:xx.00", "-5.0", "1:-2.0", "0", "1:2:3:4.0"} {
		if got := ParseSeconds(in); IsValid(got) {
			t.Errorf("ParseSeconds(%q) = %v, want sentinel", in, got)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{22.1, "22.10"},
		{62.45, "1:02.45"},
		{615, "10:15.00"},
		{NoTime, "NT"},
	}
	for _, c := range cases {
		if got := FormatSeconds(c.in); got != c.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Formatting then re-parsing must reproduce the value to two decimals.
func TestRoundTrip(t *testing.T) {
	for _, s := range []float64{21.9, 22.1, 59.99, 60, 61.5, 123.45, 3600.25} {
		got := ParseSeconds(FormatSeconds(s))
		if math.Abs(got-s) > 0.005 {
			t.Errorf("round trip %v -> %q -> %v", s, FormatSeconds(s), got)
		}
	}
}

func TestSentinelNeverValid(t *testing.T) {
	if IsValid(NoTime) {
		t.Fatal("sentinel must not be a valid time")
	}
	if NoTime <= 1e9 {
		t.Fatal("sentinel must compare greater than any real time")
	}
}
