package iso8601

import (
	"strings"
	"time"
	"unicode"

	"github.com/imarsman/iso8601/pkg/utility"
)

// Parser parses ISO-8601 dates and times against a fixed reference date. A
// Parser holds no per-call state and can be shared between goroutines.
type Parser struct {
	options   Options
	reference Reference
}

// NewParser get a parser with options and the reference date used to fill
// implicit fields. The reference is captured once so a parse is not affected
// by the clock moving on.
func NewParser(options Options, reference Reference) *Parser {
	return &Parser{options: options, reference: reference}
}

// parser holds the state of a single parse call
type parser struct {
	s    *scanner
	rec  Record
	opts Options
	ref  Reference
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Parse parse input into a record. Leading and trailing space is ignored.
func (p *Parser) Parse(input string) (Record, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Record{}, &ParseError{Func: "Parse", Input: trimmed, Err: ErrEndOfInput}
	}

	ps := &parser{s: newScanner(trimmed), opts: p.options, ref: p.reference}
	if err := ps.parse(); err != nil {
		return Record{}, &ParseError{Func: "Parse", Input: trimmed, Offset: ps.s.pos, Err: err}
	}

	return ps.rec, nil
}

// ParseInLocation parse input, using location if the input has no zone. The
// result is in the zone of the input if it had one.
func (p *Parser) ParseInLocation(input string, location *time.Location) (time.Time, error) {
	rec, err := p.Parse(input)
	if err != nil {
		return time.Time{}, err
	}

	return rec.Time(location), nil
}

// Parse parse input with options and a reference date
func Parse(input string, options Options, reference Reference) (Record, error) {
	return NewParser(options, reference).Parse(input)
}

// ParseInUTC parse with default options, defaulting to UTC if the input has no
// zone
func ParseInUTC(timeStr string) (time.Time, error) {
	return ParseInLocation(timeStr, time.UTC)
}

// ParseInLocation parse with default options, defaulting to location if there
// is no zone in the input. Implicit fields come from today's date in location.
func ParseInLocation(timeStr string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	p := NewParser(DefaultOptions(), ReferenceFromTime(time.Now().In(location)))

	return p.ParseInLocation(timeStr, location)
}

// ParseToInstant parse input to an instant shown in location. Input without a
// zone is read as UTC; location only changes how the instant is shown. ok is
// false if the input could not be parsed.
func ParseToInstant(input string, location *time.Location) (t time.Time, ok bool) {
	if location == nil {
		location = time.UTC
	}
	p := NewParser(DefaultOptions(), ReferenceFromTime(time.Now().In(location)))
	rec, err := p.Parse(input)
	if err != nil {
		return time.Time{}, false
	}

	return rec.Time(time.UTC).In(location), true
}

// Valid is input a date or time this package can parse with default options
func Valid(input string) bool {
	_, err := Parse(input, DefaultOptions(), Today())
	return err == nil
}

func (p *parser) parse() error {
	s := p.s
	s.hyphens = s.countLeading('-')
	if s.hyphens > 3 {
		return ErrInvalidFormat
	}

	switch {
	case s.is('T'):
		// There is no date here, only a time.
		s.next(1)
		if s.atEnd() {
			return ErrEndOfInput
		}
		if !s.isDigit() {
			return ErrInvalidFormat
		}
		p.today()
	case p.timeOnly():
		p.today()
	default:
		s.skipWhile('-')
		digits, seg, err := s.readInt(0)
		if err != nil {
			return err
		}
		if err := p.date(classify(digits, s.hyphens, p.opts.Strict), digits, seg); err != nil {
			return err
		}
		if err := p.checkCalendar(); err != nil {
			return err
		}
	}

	introduced := false
	if s.isSpace() || s.is('T') {
		introduced = true
		s.next(1)
	}

	if s.isDigit() {
		if err := p.timeOfDay(); err != nil {
			return err
		}
		if err := p.zone(); err != nil {
			return err
		}
	} else if introduced && p.opts.Strict {
		if s.atEnd() {
			return ErrEndOfInput
		}
		return ErrInvalidFormat
	}

	if p.opts.Strict && !s.atEnd() {
		return ErrInvalidFormat
	}

	return nil
}

// timeOnly is input a bare time such as 10:30 or 10:30:15-05:00, that is one
// or two digits followed by the time separator.
func (p *parser) timeOnly() bool {
	s := p.s
	digits := 0
	for {
		r, ok := s.peek(digits)
		if !ok {
			return false
		}
		if utility.IsDigit(r) {
			digits++
			if digits > 2 {
				return false
			}
			continue
		}
		return digits > 0 && r == p.opts.separator()
	}
}

// today fill the date from the reference
func (p *parser) today() {
	p.rec.Year = p.ref.Year
	p.rec.MonthOrWeek = int(p.ref.Month)
	p.rec.Day = p.ref.Day
}
