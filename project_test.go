package iso8601_test

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/imarsman/iso8601"
)

func TestWeekDateToOrdinal(t *testing.T) {
	is := is.New(t)

	var tests = []struct {
		year, week, weekday int
		want                int
	}{
		{2018, 6, 1, 36},
		{2018, 1, 1, 1},    // 2018 starts on a Monday
		{2019, 1, 1, 0},    // Monday is December 31 2018
		{2020, 1, 1, -1},   // Monday is December 30 2019
		{2015, 53, 7, 368}, // Sunday is January 3 2016
		{2001, 1, 1, 1},
		{2100, 1, 1, 4},
		{2101, 1, 1, 3},
	}

	for _, tt := range tests {
		is.Equal(iso8601.WeekDateToOrdinal(tt.year, tt.week, 0, tt.weekday), tt.want)
	}
}

func TestWeekDateAgainstISOWeek(t *testing.T) {
	is := is.New(t)

	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2040; d = d.AddDate(0, 0, 1) {
		year, week := d.ISOWeek()
		weekday := int(d.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		rec := iso8601.Record{Year: year, MonthOrWeek: week, Weekday: weekday, HasWeekday: true, Style: iso8601.WeekDate}
		is.Equal(rec.Time(time.UTC), d)
	}
}

func TestRecordComponents(t *testing.T) {
	is := is.New(t)

	rec := iso8601.Record{Year: 2016, Day: 366, Style: iso8601.OrdinalDate, Hour: 10, Minute: 30, Seconds: 15, Nanoseconds: 5e8}
	c := rec.Components()
	is.Equal(c.Month, time.December)
	is.Equal(c.Day, 31)
	is.Equal(c.Hour, 10)
	is.Equal(c.Minute, 30)
	is.Equal(c.Second, 15)
	is.Equal(c.Nanosecond, 500000000)
	is.Equal(rec.OrdinalDay(), 366)

	// Past the end of the year is left to time.Date.
	rec = iso8601.Record{Year: 2018, Day: 366, Style: iso8601.OrdinalDate}
	c = rec.Components()
	is.Equal(c.Month, time.January)
	is.Equal(c.Day, 366)
	is.Equal(rec.Time(nil), time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))

	rec = iso8601.Record{Year: 2018, MonthOrWeek: 3, Day: 1}
	is.Equal(rec.OrdinalDay(), 60)
	is.Equal(rec.Style.String(), "calendar")
	is.Equal(iso8601.WeekDate.String(), "week")
	is.Equal(iso8601.OrdinalDate.String(), "ordinal")
}

func TestRecordTimeLocation(t *testing.T) {
	is := is.New(t)

	est := time.FixedZone("EST", -5*3600)
	rec := iso8601.Record{Year: 2018, MonthOrWeek: 2, Day: 5, Hour: 10}
	is.Equal(rec.Time(est).Location(), est) // no zone in the record
	is.Equal(rec.Time(nil).Location(), time.UTC)

	rec.Zone = &iso8601.Zone{Kind: iso8601.ZoneFixed, Offset: 3600}
	got := rec.Time(est)
	is.Equal(iso8601.OffsetForTime(got), time.Hour) // the record's zone wins
	is.Equal(got.UTC().Hour(), 9)
}
