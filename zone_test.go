package iso8601

import (
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLocationFromOffset(t *testing.T) {
	is := is.New(t)

	l1 := LocationFromOffset(19800)
	l2 := LocationFromOffset(19800)
	is.Equal(l1, l2) // cached
	is.Equal(l1.String(), "+05:30")

	l3 := LocationFromOffset(-1800)
	is.Equal(l3.String(), "-00:30") // sign kept for offsets under an hour

	d := time.Date(2018, 2, 5, 10, 0, 0, 0, l3)
	is.Equal(OffsetForTime(d), -30*time.Minute)
}

func TestLocationFromOffsetConcurrent(t *testing.T) {
	is := is.New(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offset := (i%8 + 1) * 900
			l := LocationFromOffset(offset)
			_, got := time.Date(2018, 2, 5, 0, 0, 0, 0, l).Zone()
			is.Equal(got, offset)
		}(i)
	}
	wg.Wait()
}

func TestZone(t *testing.T) {
	is := is.New(t)

	utc := Zone{Kind: ZoneUTC}
	is.Equal(utc.String(), "Z")
	is.Equal(utc.Location(), time.UTC)

	zero := Zone{Kind: ZoneFixed}
	is.Equal(zero.String(), "+00:00")
	is.Equal(zero.Location(), time.UTC) // zero offset is UTC

	west := Zone{Kind: ZoneFixed, Offset: -25200}
	is.Equal(west.String(), "-07:00")
	_, offset := time.Date(2006, 1, 2, 15, 4, 5, 0, west.Location()).Zone()
	is.Equal(offset, -25200)
}

func TestZoneParse(t *testing.T) {
	is := is.New(t)

	var tests = []struct {
		input  string
		strict bool
		hour   int
		minute int
		offset int
		kind   ZoneKind
		none   bool
		err    error
	}{
		{input: "Z", kind: ZoneUTC},
		{input: "z", kind: ZoneUTC},
		{input: "z", strict: true, none: true},
		{input: "+04", hour: 4, offset: 14400, kind: ZoneFixed},
		{input: "-05:30", hour: -5, minute: -30, offset: -19800, kind: ZoneFixed},
		{input: "-0030", minute: -30, offset: -1800, kind: ZoneFixed},
		{input: "+", none: true},
		{input: "+", strict: true, err: ErrEndOfInput},
		{input: "+x", strict: true, err: ErrInvalidFormat},
		{input: "+01:75", strict: true, err: ErrInvalidFormat},
		{input: "", none: true},
	}

	for _, tt := range tests {
		p := &parser{
			s:    newScanner(tt.input),
			opts: Options{Strict: tt.strict},
		}
		err := p.zone()
		if tt.err != nil {
			is.Equal(err, tt.err)
			continue
		}
		is.NoErr(err)
		if tt.none {
			is.True(p.rec.Zone == nil)
			continue
		}
		is.True(p.rec.Zone != nil)
		is.Equal(p.rec.Zone.Kind, tt.kind)
		is.Equal(p.rec.Zone.Offset, tt.offset)
		is.Equal(p.rec.TZHour, tt.hour)
		is.Equal(p.rec.TZMinute, tt.minute)
	}
}
