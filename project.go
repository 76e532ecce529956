package iso8601

import (
	"time"

	"github.com/imarsman/iso8601/pkg/utility"
)

// Style how the date part of a record is expressed
type Style int

const (
	// CalendarDate year, month and day of month
	CalendarDate Style = iota
	// WeekDate ISO week-numbering year, week and optional weekday
	WeekDate
	// OrdinalDate year and day of year
	OrdinalDate
)

func (s Style) String() string {
	switch s {
	case CalendarDate:
		return "calendar"
	case WeekDate:
		return "week"
	case OrdinalDate:
		return "ordinal"
	}
	return "unknown"
}

// Record the raw fields of a parsed date and time. MonthOrWeek is a month for
// CalendarDate and a week number for WeekDate. Day is the day of month,
// the day of year for OrdinalDate, or a day after an implicit week.
type Record struct {
	Year        int
	MonthOrWeek int
	Day         int
	Hour        int
	Minute      float64
	Seconds     float64
	Nanoseconds float64
	Weekday     int  // 1 is Monday, 7 is Sunday
	HasWeekday  bool // the input had an explicit weekday
	TZHour      int
	TZMinute    int
	Style       Style
	Zone        *Zone // nil if the input had no zone
}

// Components calendar fields ready for time.Date. Week and ordinal dates have
// their day of year resolved to a month and day when it falls inside the year;
// otherwise Month is January and Day is the day of year for time.Date to
// normalize.
type Components struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// WeekDateToOrdinal convert an ISO week date to a day of year, which may fall
// before or after the year for weeks that straddle a year end.
//
// Adapted from <http://personal.ecu.edu/mccartyr/ISOwdALG.txt>. The century
// term ((prevC/100)%4)*5 is part of that algorithm and is kept as is.
func WeekDateToOrdinal(year, week, day, weekday int) int {
	const thursday = 3

	prevYear := year - 1
	yy := prevYear % 100
	prevC := prevYear - yy
	prevG := yy + yy/4
	centuryTerm := ((prevC / 100) % 4) * 5
	jan1Weekday := (centuryTerm + prevG) % 7 // 0 is Monday

	ordinal := 8 - jan1Weekday
	if jan1Weekday > thursday {
		ordinal += 7
	}
	ordinal += (day - 1) + 7*(week-2)

	return ordinal + weekday
}

// OrdinalDay the 1-based day of year of the record's date
func (r Record) OrdinalDay() int {
	switch r.Style {
	case WeekDate:
		return WeekDateToOrdinal(r.Year, r.MonthOrWeek, r.Day, r.Weekday)
	case OrdinalDate:
		return r.Day
	}
	return utility.YearDay(r.Year, r.MonthOrWeek, r.Day)
}

// Components project the record onto calendar fields
func (r Record) Components() Components {
	c := Components{
		Year:       r.Year,
		Hour:       r.Hour,
		Minute:     int(r.Minute),
		Second:     int(r.Seconds),
		Nanosecond: int(r.Nanoseconds),
	}

	if r.Style == CalendarDate {
		c.Month = time.Month(r.MonthOrWeek)
		c.Day = r.Day
		return c
	}

	yearDay := r.OrdinalDay()
	if month, day, ok := utility.MonthDay(r.Year, yearDay); ok {
		c.Month = time.Month(month)
		c.Day = day
	} else {
		c.Month = time.January
		c.Day = yearDay
	}

	return c
}

// Location the zone of the record, UTC if the input had none
func (r Record) Location() *time.Location {
	if r.Zone == nil {
		return time.UTC
	}
	return r.Zone.Location()
}

// Time get the instant for the record. The input's zone wins; without one
// location is used, or UTC if location is nil.
func (r Record) Time(location *time.Location) time.Time {
	if r.Zone != nil {
		location = r.Zone.Location()
	}
	if location == nil {
		location = time.UTC
	}
	c := r.Components()

	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, location)
}
