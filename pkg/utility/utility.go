package utility

import "strings"

// BytesToString convert byte list to string with no allocation
//
// A small cost a few ns in testing is incurred for using a string builder.
// There are no heap allocations using strings.Builder.
func BytesToString(bytes ...byte) string {
	var sb = new(strings.Builder)
	for i := 0; i < len(bytes); i++ {
		sb.WriteByte(bytes[i])
	}
	return sb.String()
}

// RunesToString convert runes list to string with no allocation
//
// WriteRune is more complex than WriteByte so can't inline
func RunesToString(runes ...rune) string {
	var sb = new(strings.Builder)
	for i := 0; i < len(runes); i++ {
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// IsDigit is rune an ASCII digit. unicode.IsDigit also accepts other scripts'
// digits, which ISO-8601 does not.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLeap is year a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn number of days in year
func DaysIn(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysBefore[m] counts the number of days in a non-leap year
// before month m begins. There is an entry for m=12, counting
// the number of days before January of next year (365).
var DaysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// DaysInMonth number of days in a 1-based month of year, 0 if month is out of
// range
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	n := int(DaysBefore[month] - DaysBefore[month-1])
	if month == 2 && IsLeap(year) {
		n++
	}

	return n
}

// MonthDay convert a 1-based day of year to a 1-based month and day of month.
// ok is false if the day of year is outside the year.
//
// Add in days before this month, plus one for February 29 from March on in a
// leap year.
func MonthDay(year, yearDay int) (month, day int, ok bool) {
	if yearDay < 1 || yearDay > DaysIn(year) {
		return 0, 0, false
	}
	leap := IsLeap(year)
	for m := 12; m >= 1; m-- {
		before := int(DaysBefore[m-1])
		if leap && m >= 3 {
			before++
		}
		if yearDay > before {
			return m, yearDay - before, true
		}
	}

	return 0, 0, false
}

// YearDay convert month and day of month to a 1-based day of year
func YearDay(year, month, day int) int {
	if month < 1 || month > 12 {
		return 0
	}
	d := int(DaysBefore[month-1]) + day
	if IsLeap(year) && month >= 3 {
		d++ // February 29
	}

	return d
}
