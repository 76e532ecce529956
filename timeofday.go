package iso8601

import (
	"math"
)

// epsilon the smallest fraction of a minute treated as present
const epsilon = 0x1p-52

// timeOfDay read hour, minute, second and fraction. The cursor is on the
// first digit of the hour.
func (p *parser) timeOfDay() error {
	s := p.s
	sep := p.opts.separator()

	count, hour, err := s.readInt(2)
	if err != nil {
		return err
	}
	if count != 2 && p.opts.Strict {
		return ErrInvalidFormat
	}
	p.rec.Hour = hour

	switch {
	case s.skip(sep):
		if sep == ',' || sep == '.' {
			// We can't do fractional minutes when '.' is the segment separator.
			// Only allow whole minutes and whole seconds.
			if err := p.wholeMinuteSecond(sep); err != nil {
				return err
			}
			break
		}
		if err := p.fractionalMinute(sep); err != nil {
			return err
		}
	case s.isDigit():
		// Basic format hhmm[ss[.fff]]
		if err := p.basicMinuteSecond(); err != nil {
			return err
		}
	}

	if p.opts.Strict {
		if err := p.checkTime(); err != nil {
			return err
		}
	} else if s.isSpace() {
		// Allow one space before a zone
		s.next(1)
	}

	return nil
}

// wholeMinuteSecond mm[<sep>ss] where sep is also a decimal mark
func (p *parser) wholeMinuteSecond(sep rune) error {
	s := p.s
	_, minute, err := s.readInt(2)
	if err != nil {
		return err
	}
	p.rec.Minute = float64(minute)
	if !s.skip(sep) {
		return nil
	}
	_, second, err := s.readInt(2)
	if err != nil {
		return err
	}
	p.rec.Seconds = float64(second)

	return nil
}

// fractionalMinute mm[.m] or mm<sep>ss[.s]. Seconds after the minute win over
// a fraction of the minute; otherwise the fraction becomes the seconds.
func (p *parser) fractionalMinute(sep rune) error {
	s := p.s
	_, minute, err := s.readDouble()
	if err != nil {
		return err
	}

	whole, fraction := math.Modf(minute)
	p.rec.Minute = whole
	if !s.skip(sep) {
		if fraction > epsilon {
			// Convert fraction (e.g. .5) into seconds (e.g. 30).
			p.rec.Seconds, p.rec.Nanoseconds = splitSeconds(fraction * 60)
		}
		return nil
	}

	_, seconds, err := s.readDouble()
	if err != nil {
		return err
	}
	p.rec.Seconds, p.rec.Nanoseconds = splitSeconds(seconds)

	return nil
}

// basicMinuteSecond mm with optional ss and a decimal fraction of seconds
func (p *parser) basicMinuteSecond() error {
	s := p.s
	_, minute, err := s.readInt(2)
	if err != nil {
		return err
	}
	p.rec.Minute = float64(minute)
	if !s.isDigit() {
		return nil
	}

	_, second, err := s.readInt(2)
	if err != nil {
		return err
	}
	p.rec.Seconds = float64(second)

	if s.is('.') || s.is(',') {
		_, fraction, err := s.readDouble()
		if err != nil {
			return err
		}
		carry, nanoseconds := splitSeconds(fraction)
		p.rec.Seconds += carry
		p.rec.Nanoseconds = nanoseconds
	}

	return nil
}

// splitSeconds split seconds into whole seconds and nanoseconds rounded to the
// millisecond
func splitSeconds(seconds float64) (whole float64, nanoseconds float64) {
	whole, fraction := math.Modf(seconds)
	ms := math.Round(fraction * 1000)
	if ms >= 1000 {
		whole++
		ms = 0
	}

	return whole, ms * 1_000_000
}

// checkTime strict range check. 24:00 and a leap second are allowed.
func (p *parser) checkTime() error {
	if p.rec.Hour > 24 || p.rec.Minute > 59 || p.rec.Seconds > 60 {
		return ErrInvalidFormat
	}

	return nil
}
