package iso8601

import (
	"sync/atomic"
	"time"

	"github.com/JohnCGriffin/overflow"
)

// ZoneKind how a parsed zone was written
type ZoneKind int

const (
	// ZoneUTC a literal Z
	ZoneUTC ZoneKind = iota
	// ZoneFixed a numeric offset such as +05:30
	ZoneFixed
)

// Zone a zone marker found in the input. Named zones are never resolved.
type Zone struct {
	Kind   ZoneKind
	Offset int // seconds east of UTC
}

// Location get the location for the zone. A zero offset is UTC.
func (z Zone) Location() *time.Location {
	if z.Kind == ZoneUTC || z.Offset == 0 {
		return time.UTC
	}
	return LocationFromOffset(z.Offset)
}

// String Z for UTC, otherwise an offset such as +05:30
func (z Zone) String() string {
	if z.Kind == ZoneUTC {
		return "Z"
	}
	offset, err := LocationOffsetStringDelimited(time.Duration(z.Offset) * time.Second)
	if err != nil {
		return ""
	}
	return offset
}

var locationAtomic atomic.Value

func init() {
	// A cache for zones tied to offsets to save quite a bit of time and 3
	// allocations needed to get a fixed zone.
	locationAtomic.Store(make(map[int]*time.Location))
}

// LocationFromOffset get a location based on the offset seconds from UTC. Uses a cache
// of locations based on offset. The cached map is never written after it is
// stored; additions store a copy.
func LocationFromOffset(offsetSec int) (location *time.Location) {
	cachedZones := locationAtomic.Load().(map[int]*time.Location)
	if l, ok := cachedZones[offsetSec]; ok {
		return l
	}

	name, err := LocationOffsetStringDelimited(time.Duration(offsetSec) * time.Second)
	if err != nil {
		name = "FixedZone"
	}
	location = time.FixedZone(name, offsetSec)

	// There are currently 37 observed UTC offsets in the world
	// (38 when Iran is on standard time).
	// Allow up to 50.
	next := make(map[int]*time.Location, len(cachedZones)+1)
	if len(cachedZones) < 50 {
		for k, v := range cachedZones {
			next[k] = v
		}
	}
	next[offsetSec] = location
	locationAtomic.Store(next)

	return
}

// zone read an optional Z or numeric offset after the time
func (p *parser) zone() error {
	s := p.s
	r, ok := s.current(false)
	if !ok {
		return nil
	}

	switch {
	case r == 'Z' || (r == 'z' && !p.opts.Strict):
		s.next(1)
		p.rec.Zone = &Zone{Kind: ZoneUTC}
	case r == '+' || r == '-':
		negative := r == '-'
		s.next(1)
		if !s.isDigit() {
			if !p.opts.Strict {
				return nil
			}
			if s.atEnd() {
				return ErrEndOfInput
			}
			return ErrInvalidFormat
		}

		_, hours, err := s.readInt(2)
		if err != nil {
			return err
		}
		if negative {
			hours = -hours
		}
		p.rec.TZHour = hours

		// Optional separator
		s.skip(p.opts.separator())

		if s.isDigit() {
			_, minutes, err := s.readInt(2)
			if err != nil {
				return err
			}
			if minutes > 59 && p.opts.Strict {
				return ErrInvalidFormat
			}
			if negative {
				minutes = -minutes
			}
			p.rec.TZMinute = minutes
		}

		offset, ok := overflow.Add(p.rec.TZHour*3600, p.rec.TZMinute*60)
		if !ok {
			return ErrInvalidFormat
		}
		p.rec.Zone = &Zone{Kind: ZoneFixed, Offset: offset}
	}

	return nil
}
