package iso8601_test

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/imarsman/iso8601"
)

func TestOffsetString(t *testing.T) {
	is := is.New(t)

	var tests = []struct {
		d         time.Duration
		basic     string
		delimited string
	}{
		{0, "+0000", "+00:00"},
		{5*time.Hour + 30*time.Minute, "+0530", "+05:30"},
		{-5 * time.Hour, "-0500", "-05:00"},
		{-30 * time.Minute, "-0030", "-00:30"},
		{-(9*time.Hour + 30*time.Minute), "-0930", "-09:30"},
		{14 * time.Hour, "+1400", "+14:00"},
	}

	for _, tt := range tests {
		got, err := iso8601.LocationOffsetString(tt.d)
		is.NoErr(err)
		is.Equal(got, tt.basic)

		got, err = iso8601.LocationOffsetStringDelimited(tt.d)
		is.NoErr(err)
		is.Equal(got, tt.delimited)
	}

	_, err := iso8601.LocationOffsetString(200 * time.Hour)
	is.True(err != nil) // too many hours for two digits
}

func TestOffsetHM(t *testing.T) {
	is := is.New(t)

	h, m := iso8601.OffsetHM(-(3*time.Hour + 30*time.Minute))
	is.Equal(h, -3)
	is.Equal(m, 30) // minutes are always positive
}

func TestTwoDigitOffset(t *testing.T) {
	is := is.New(t)

	got, err := iso8601.TwoDigitOffset(5, true)
	is.NoErr(err)
	is.Equal(got, "+05")

	got, err = iso8601.TwoDigitOffset(-7, true)
	is.NoErr(err)
	is.Equal(got, "-07")

	got, err = iso8601.TwoDigitOffset(42, false)
	is.NoErr(err)
	is.Equal(got, "42")

	_, err = iso8601.TwoDigitOffset(100, false)
	is.True(err != nil)
}

func TestFormats(t *testing.T) {
	is := is.New(t)

	d := time.Date(2006, 1, 2, 15, 4, 5, 123000000, time.FixedZone("", -7*3600))

	is.Equal(iso8601.FormatBasic(d), "20060102")
	is.Equal(iso8601.FormatExtended(d), "2006-01-02")
	is.Equal(iso8601.FormatWeek(d), "2006-W01-1")
	is.Equal(iso8601.FormatOrdinal(d), "2006-002")
	is.Equal(iso8601.ISO8601Compact(d), "20060102T150405-0700")
	is.Equal(iso8601.ISO8601CompactMsec(d), "20060102T150405.123-0700")
	is.Equal(iso8601.ISO8601(d), "2006-01-02T15:04:05-07:00")
	is.Equal(iso8601.ISO8601Msec(d), "2006-01-02T15:04:05.123-07:00")

	sunday := time.Date(2016, 1, 3, 0, 0, 0, 0, time.UTC)
	is.Equal(iso8601.FormatWeek(sunday), "2015-W53-7")
	is.Equal(iso8601.FormatBasic(time.Date(987, 6, 5, 0, 0, 0, 0, time.UTC)), "09870605")
}

func TestFormatParseRoundTrip(t *testing.T) {
	is := is.New(t)

	d := time.Date(2018, 2, 5, 23, 14, 45, 500000000, time.FixedZone("", 19800))
	for _, f := range []func(time.Time) string{
		iso8601.ISO8601,
		iso8601.ISO8601Msec,
		iso8601.ISO8601Compact,
		iso8601.ISO8601CompactMsec,
	} {
		got, err := iso8601.ParseInUTC(f(d))
		is.NoErr(err)
		is.True(got.Equal(d.Truncate(time.Second)) || got.Equal(d))
	}
}
