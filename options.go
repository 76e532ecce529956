package iso8601

import "time"

// Options parsing options
type Options struct {
	// TimeSeparator separates hour, minute and second. A zero value means ':'.
	TimeSeparator rune
	// Strict disables the lenient fallbacks such as a missing hyphen, a bare
	// single digit year or an ordinal day past the end of the year.
	Strict bool
}

// DefaultOptions lenient parsing with ':' between time fields
func DefaultOptions() Options {
	return Options{TimeSeparator: ':'}
}

func (o Options) separator() rune {
	if o.TimeSeparator == 0 {
		return ':'
	}
	return o.TimeSeparator
}

// Reference the local date used to fill fields the input leaves implicit, such
// as the year of "--02-05" or the century of "180205".
type Reference struct {
	Year  int
	Month time.Month
	Day   int
}

// ReferenceFromTime get the reference date from a time in its own location
func ReferenceFromTime(t time.Time) Reference {
	y, m, d := t.Date()
	return Reference{Year: y, Month: m, Day: d}
}

// Today reference for the current local date
func Today() Reference {
	return ReferenceFromTime(time.Now())
}

func (r Reference) century() int {
	return r.Year - r.Year%100
}

func (r Reference) decade() int {
	return r.Year - r.Year%10
}
