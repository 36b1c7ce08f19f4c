// Package date provides date parsing, formatting and arithmetic helpers.
//
// Functions accept loosely typed sources: a time.Time, a number of milliseconds
// since the Unix epoch or a string in one of the common layouts listed in Layouts.
package date

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ISOLayout matches the ISO-8601 form with millisecond precision in UTC.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Layouts are tried in order by Parse. Layouts without a zone are read in local
// time, except the bare date which is read as UTC.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var (
	now     = time.Now
	tokenRe = regexp.MustCompile(`YYYY|MM|DD|HH|mm|ss`)
)

// Parse converts src into a time. ok is false when src is not a recognised date.
func Parse(src any) (t time.Time, ok bool) {
	switch v := src.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case int:
		return time.UnixMilli(int64(v)), true
	case int32:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case uint:
		return time.UnixMilli(int64(v)), true
	case uint32:
		return time.UnixMilli(int64(v)), true
	case uint64:
		return time.UnixMilli(int64(v)), true
	case float32:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	case string:
		return parseString(v)
	default:
		return time.Time{}, false
	}
}

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range Layouts {
		loc := time.Local
		if layout == time.DateOnly {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether Parse accepts src.
func IsValidDate(src any) bool {
	_, ok := Parse(src)
	return ok
}

// FormatDate renders src using the tokens YYYY, MM, DD, HH, mm and ss.
// Any other text in format is copied through.
func FormatDate(src any, format string) (string, bool) {
	t, ok := Parse(src)
	if !ok {
		return "", false
	}
	return tokenRe.ReplaceAllStringFunc(format, func(token string) string {
		switch token {
		case "YYYY":
			return strconv.Itoa(t.Year())
		case "MM":
			return PadNumberWithLeadingZero(int(t.Month()), 2)
		case "DD":
			return PadNumberWithLeadingZero(t.Day(), 2)
		case "HH":
			return PadNumberWithLeadingZero(t.Hour(), 2)
		case "mm":
			return PadNumberWithLeadingZero(t.Minute(), 2)
		default:
			return PadNumberWithLeadingZero(t.Second(), 2)
		}
	}), true
}

// AddDays returns src shifted by days calendar days.
func AddDays(src any, days int) (time.Time, bool) {
	t, ok := Parse(src)
	if !ok {
		return time.Time{}, false
	}
	return t.AddDate(0, 0, days), true
}

// DifferenceInDays returns the absolute difference between a and b in whole days,
// rounding partial days up.
func DifferenceInDays(a, b any) (int, bool) {
	ta, ok := Parse(a)
	if !ok {
		return 0, false
	}
	tb, ok := Parse(b)
	if !ok {
		return 0, false
	}
	diff := tb.Sub(ta)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24)), true
}

// StartOfDay returns midnight of src's day in src's location.
func StartOfDay(src any) (time.Time, bool) {
	t, ok := Parse(src)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), true
}

// EndOfDay returns the last millisecond of src's day in src's location.
func EndOfDay(src any) (time.Time, bool) {
	t, ok := Parse(src)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location()), true
}

// DateToTicks returns src in milliseconds since the epoch, or the current time
// when src is not a date.
func DateToTicks(src any) int64 {
	return DateToDate(src).UnixMilli()
}

// DateToString returns src in ISOLayout, or the current time when src is not a date.
func DateToString(src any) string {
	return DateToDate(src).UTC().Format(ISOLayout)
}

// DateToDate returns src as a time, or the current time when src is not a date.
func DateToDate(src any) time.Time {
	if t, ok := Parse(src); ok {
		return t
	}
	return now()
}

// FormatHoursTo12 converts a 0-23 hour to the 12-hour clock (0 and 12 become 12).
func FormatHoursTo12(hours int) int {
	if h := hours % 12; h != 0 {
		return h
	}
	return 12
}

// PadNumberWithLeadingZero left-pads n with zeros to padding digits (2 when padding <= 0).
func PadNumberWithLeadingZero(n int, padding int) string {
	if padding <= 0 {
		padding = 2
	}
	s := strconv.Itoa(n)
	if len(s) >= padding {
		return s
	}
	return strings.Repeat("0", padding-len(s)) + s
}

// AMPM returns "PM" for hours from 12 on and "AM" otherwise.
func AMPM(hours int) string {
	if hours >= 12 {
		return "PM"
	}
	return "AM"
}

// SortNewestFirst sorts s in place by the time returned from key, newest first.
// Elements with equal times keep their relative order.
func SortNewestFirst[S ~[]E, E any](s S, key func(E) time.Time) S {
	slices.SortStableFunc(s, func(a, b E) int {
		return key(b).Compare(key(a))
	})
	return s
}
