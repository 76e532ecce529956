package iso8601

import (
	"errors"
	"time"

	"lab.nexedi.com/kirr/go123/xfmt"

	"github.com/imarsman/iso8601/pkg/utility"
)

// OffsetForTime the duration of the offset from UTC. Mostly the same as doing
// the same thing inline but this reliably gets a duration.
func OffsetForTime(t time.Time) (duration time.Duration) {
	_, offset := t.Zone()

	duration = time.Duration(offset) * time.Second

	return
}

// OffsetHM get hours and minutes for location offset from UTC. Minutes are
// always positive.
func OffsetHM(d time.Duration) (offsetH, offsetM int) {
	offsetH = int(d.Hours())
	offsetM = int(d.Minutes()) % 60

	// Ensure minutes is positive
	if offsetM < 0 {
		offsetM = -offsetM
	}

	return
}

// LocationOffsetString get an offset in HHMM format based on hours and
// minutes offset from UTC.
//
// For 5 hours and 30 minutes
//  +0530
//
// For -5 hours
//  -0500
func LocationOffsetString(d time.Duration) (string, error) {
	return locationOffsetString(d, false)
}

// LocationOffsetStringDelimited get an offset in HH:MM format based on hours
// and minutes offset from UTC.
//
// For 5 hours and 30 minutes
//  +05:30
//
// For -5 hours
//  -05:00
func LocationOffsetStringDelimited(d time.Duration) (string, error) {
	return locationOffsetString(d, true)
}

// TwoDigitOffset get digit offset for hours and minutes. This is designed
// solely to help with calculating offset strings for timestamps without using
// fmt.Sprintf, which causes allocations.
func TwoDigitOffset(in int, addPrefix bool) (digits string, err error) {
	// This is only meant to be for 2 digit offsets, such as for hours and
	// minutes offset from UTC.
	if in > 99 || in < -99 {
		err = errors.New("iso8601.TwoDigitOffset: out of range")
		return
	}

	// Figure out prefix based on sign of input and make input always positive
	var prefix rune = '+'
	if in < 0 {
		prefix = '-'
		in = -in
	}

	// First rune is the integer part after an integer division
	// Second rune is the remainder
	var fr rune = rune('0' + int(in/10))
	var lr rune = rune('0' + in%10)

	if addPrefix {
		return utility.RunesToString(prefix, fr, lr), nil
	}
	return utility.RunesToString(fr, lr), nil
}

// The sign is taken from the whole duration so -00:30 keeps its sign.
func locationOffsetString(d time.Duration, delimited bool) (offset string, err error) {
	var sign rune = '+'
	if d < 0 {
		sign = '-'
		d = -d
	}
	offsetH, offsetM := OffsetHM(d)

	buf := new(xfmt.Buffer)
	buf.C(sign)

	h, err := TwoDigitOffset(offsetH, false)
	if err != nil {
		return
	}
	buf.S(h)
	if delimited {
		buf.C(':')
	}
	m, err := TwoDigitOffset(offsetM, false)
	if err != nil {
		return
	}
	buf.S(m)

	offset = utility.BytesToString(buf.Bytes()...)

	return
}

// padded write v with at least width digits
func padded(buf *xfmt.Buffer, v, width int) *xfmt.Buffer {
	if v < 0 {
		buf.C('-')
		v = -v
	}
	var digits [20]rune
	i := len(digits)
	for {
		i--
		digits[i] = rune('0' + v%10)
		v /= 10
		width--
		if v == 0 && width <= 0 {
			break
		}
	}
	for ; i < len(digits); i++ {
		buf.C(digits[i])
	}

	return buf
}

// FormatBasic calendar date in basic format
//   "20060102"
func FormatBasic(t time.Time) string {
	buf := new(xfmt.Buffer)
	padded(buf, t.Year(), 4)
	padded(buf, int(t.Month()), 2)
	padded(buf, t.Day(), 2)

	return utility.BytesToString(buf.Bytes()...)
}

// FormatExtended calendar date in extended format
//   "2006-01-02"
func FormatExtended(t time.Time) string {
	buf := new(xfmt.Buffer)
	padded(buf, t.Year(), 4).C('-')
	padded(buf, int(t.Month()), 2).C('-')
	padded(buf, t.Day(), 2)

	return utility.BytesToString(buf.Bytes()...)
}

// FormatWeek ISO week date, Monday is 1 and Sunday is 7
//   "2006-W01-1"
func FormatWeek(t time.Time) string {
	year, week := t.ISOWeek()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	buf := new(xfmt.Buffer)
	padded(buf, year, 4).S("-W")
	padded(buf, week, 2).C('-').D(weekday)

	return utility.BytesToString(buf.Bytes()...)
}

// FormatOrdinal ordinal date
//   "2006-002"
func FormatOrdinal(t time.Time) string {
	buf := new(xfmt.Buffer)
	padded(buf, t.Year(), 4).C('-')
	padded(buf, t.YearDay(), 3)

	return utility.BytesToString(buf.Bytes()...)
}

// ISO8601Compact ISO-8601 timestamp with no sub seconds
//   "20060102T150405-0700"
//
// Result will be in whatever the location the incoming time is set to. If UTC
// is desired set location to time.UTC first
func ISO8601Compact(t time.Time) string {
	return t.Format("20060102T150405-0700")
}

// ISO8601CompactMsec ISO-8601 timestamp with milliseconds
//   "20060102T150405.000-0700"
func ISO8601CompactMsec(t time.Time) string {
	return t.Format("20060102T150405.000-0700")
}

// ISO8601 ISO-8601 timestamp long format string result
//   "2006-01-02T15:04:05-07:00"
func ISO8601(t time.Time) string {
	return t.Format("2006-01-02T15:04:05-07:00")
}

// ISO8601Msec ISO-8601 longtimestamp with msec
//   "2006-01-02T15:04:05.000-07:00"
func ISO8601Msec(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000-07:00")
}
