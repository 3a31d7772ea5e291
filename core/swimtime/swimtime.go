// Package swimtime converts textual race times to comparable seconds.
//
// Raw time data arrives as strings in "SS.ss", "M:SS.ss" or "H:MM:SS.ss"
// form, often interleaved with scratch markers such as "NT", "DNS" or "DQ".
// Parsing is lenient: anything that is not a well-formed time yields NoTime
// so a single bad cell never aborts a lineup run.
package swimtime

import (
	"math"
	"strconv"
	"strings"
)

// NoTime marks a missing or unparseable time. It compares greater than any
// real time and must never participate in arithmetic.
var NoTime = math.Inf(1)

// IsValid reports whether s is a real time rather than the NoTime sentinel.
func IsValid(s float64) bool {
	return !math.IsInf(s, 1) && s > 0
}

// ParseSeconds converts a race time string to seconds. Supported forms are
// "SS.ss", "M:SS.ss" and "H:MM:SS.ss". Empty strings, scratch markers and
// anything else non-numeric return NoTime; no error is ever raised.
func ParseSeconds(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NoTime
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return NoTime
	}
	// Rightmost part carries the fraction, the rest must be integers.
	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 {
		return NoTime
	}
	mult := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return NoTime
		}
		secs += float64(n) * mult
		mult *= 60
	}
	if secs <= 0 {
		return NoTime
	}
	return secs
}

// FormatSeconds renders seconds back into the conventional string form:
// "M:SS.ss" at or above one minute, "SS.ss" below, "NT" for the sentinel.
// Round-tripping through ParseSeconds preserves two decimal places.
func FormatSeconds(s float64) string {
	if !IsValid(s) {
		return "NT"
	}
	mins := int(s) / 60
	rem := s - float64(mins*60)
	if mins > 0 {
		return strconv.Itoa(mins) + ":" + pad(rem)
	}
	return strconv.FormatFloat(rem, 'f', 2, 64)
}

func pad(sec float64) string {
	out := strconv.FormatFloat(sec, 'f', 2, 64)
	if sec < 10 {
		out = "0" + out
	}
	return out
}
