package iso8601

import (
	"github.com/imarsman/iso8601/pkg/utility"
)

// form is the grammar branch chosen from the digit count of the first number
// and the count of hyphens in front of it.
type form int

const (
	formInvalid                form = iota
	formWeekOnly                    // -Www-D, -W-D, --W-D
	formDecadeWeek                  // -Y-Www-D (strict)
	formCentury                     // YY, YY-MM-DD, YY-MMDD, YY-DDD, YYWww
	formImplicitCentury             // -YY, -YY-MM-DD, -YY-Www-D
	formImplicitYear                // --MM, --MM-DD
	formImplicitMonth               // ---DD
	formImplicitOrdinal             // --DDD
	formYear                        // YYYY, YYYY-MM-DD, YYYY-MMDD, YYYY-DDD, YYYY-Www-D
	formYearMonth                   // -YYMM, -YYMM-DD
	formMonthDay                    // --MMDD
	formOrdinalImplicitCentury      // YYDDD
	formCompactImplicitCentury      // YYMMDD
	formOrdinal                     // YYYYDDD
	formCompact                     // YYYYMMDD
)

// forms is indexed by [digit count][hyphen count]. Any combination outside the
// table is formInvalid. Strict mode narrows the one and three digit rows in
// classify.
var forms = [9][4]form{
	0: {formInvalid, formWeekOnly, formWeekOnly, formInvalid},
	1: {formCentury, formImplicitCentury, formImplicitYear, formImplicitMonth},
	2: {formCentury, formImplicitCentury, formImplicitYear, formImplicitMonth},
	3: {formInvalid, formImplicitOrdinal, formImplicitOrdinal, formInvalid},
	4: {formYear, formYearMonth, formMonthDay, formInvalid},
	5: {formOrdinalImplicitCentury, formInvalid, formInvalid, formInvalid},
	6: {formCompactImplicitCentury, formInvalid, formInvalid, formInvalid},
	7: {formOrdinal, formInvalid, formInvalid, formInvalid},
	8: {formCompact, formInvalid, formInvalid, formInvalid},
}

func classify(digits, hyphens int, strict bool) form {
	if digits < 0 || digits >= len(forms) || hyphens < 0 || hyphens >= len(forms[0]) {
		return formInvalid
	}
	if strict {
		switch digits {
		case 1:
			// Two digits only - never just one, unless it is a decade
			// followed by a week.
			if hyphens == 1 {
				return formDecadeWeek
			}
			return formInvalid
		case 3:
			if hyphens != 2 {
				return formInvalid
			}
		}
	}

	return forms[digits][hyphens]
}

// date fill the date fields of the record for the chosen form. seg is the
// value of the first number, which had digits digits.
func (p *parser) date(f form, digits, seg int) error {
	switch f {
	case formWeekOnly:
		return p.weekOnly()
	case formDecadeWeek:
		return p.decadeWeek(seg)
	case formCentury:
		return p.century(seg)
	case formImplicitCentury:
		return p.implicitCentury(digits, seg)
	case formImplicitYear:
		return p.implicitYear(seg)
	case formImplicitMonth:
		p.rec.Year = p.ref.Year
		p.rec.MonthOrWeek = int(p.ref.Month)
		p.rec.Day = seg
	case formImplicitOrdinal:
		p.rec.Year = p.ref.Year
		p.rec.Day = seg
		p.rec.Style = OrdinalDate
		return p.checkOrdinal()
	case formYear:
		return p.year(seg)
	case formYearMonth:
		return p.yearMonth(seg)
	case formMonthDay:
		p.rec.Year = p.ref.Year
		p.rec.MonthOrWeek = seg / 100
		p.rec.Day = seg % 100
	case formOrdinalImplicitCentury:
		p.rec.Year = p.ref.century() + seg/1000
		p.rec.Day = seg % 1000
		p.rec.Style = OrdinalDate
		return p.checkOrdinal()
	case formCompactImplicitCentury:
		p.rec.Day = seg % 100
		seg /= 100
		p.rec.MonthOrWeek = seg % 100
		p.rec.Year = p.ref.century() + seg/100
	case formOrdinal:
		p.rec.Year = seg / 1000
		p.rec.Day = seg % 1000
		p.rec.Style = OrdinalDate
		return p.checkOrdinal()
	case formCompact:
		p.rec.Day = seg % 100
		seg /= 100
		p.rec.MonthOrWeek = seg % 100
		p.rec.Year = seg / 100
	default:
		return ErrInvalidFormat
	}

	return nil
}

// weekOnly the year is implicit and a week marker follows the hyphens
func (p *parser) weekOnly() error {
	s := p.s
	if !s.is('W') {
		return ErrInvalidFormat
	}

	// -W-D: weekday of the first week
	after, _ := s.peek(1)
	day, ok := s.peek(2)
	if after == '-' && ok && utility.IsDigit(day) && !p.opts.Strict {
		p.rec.Year = p.ref.Year
		p.rec.MonthOrWeek = 1
		s.next(2)
		return p.dayAfterWeek()
	}
	if s.hyphens != 1 {
		return ErrInvalidFormat
	}

	p.rec.Year = p.ref.Year
	s.next(1)
	_, week, err := s.readInt(2)
	if err != nil {
		return err
	}
	p.rec.MonthOrWeek = week
	p.rec.Style = WeekDate

	return p.weekday()
}

// decadeWeek -Y-Www: a single digit year in the reference decade
func (p *parser) decadeWeek(seg int) error {
	s := p.s
	s.skip('-')
	if s.atEnd() {
		return ErrEndOfInput
	}
	if !s.is('W') {
		return ErrInvalidFormat
	}
	p.rec.Year = p.ref.decade() + seg

	return p.weekAndDay()
}

// century two digits with no leading hyphen. Followed by a hyphen or a week
// marker the digits are a year in the reference century, otherwise they are
// the century itself.
func (p *parser) century(seg int) error {
	s := p.s
	switch {
	case s.skip('-'):
		p.rec.Year = p.ref.century() + seg
		if s.is('W') {
			return p.weekAndDay()
		}
		if !s.isDigit() {
			p.centuryOnly(seg)
			return nil
		}

		count, v, err := s.readInt(0)
		if err != nil {
			return err
		}
		switch count {
		case 4: // YY-MMDD
			p.rec.MonthOrWeek = v / 100
			p.rec.Day = v % 100
		case 1, 2: // YY-M, YY-MM, YY-MM-DD
			if count == 1 && p.opts.Strict {
				return ErrInvalidFormat
			}
			p.rec.MonthOrWeek = v
			p.rec.Day = 1
			if s.skip('-') && s.isDigit() {
				if _, p.rec.Day, err = s.readInt(2); err != nil {
					return err
				}
			}
		case 3: // YY-DDD
			p.rec.Day = v
			p.rec.Style = OrdinalDate
			return p.checkOrdinal()
		default:
			return ErrInvalidFormat
		}
	case s.is('W'):
		p.rec.Year = p.ref.century() + seg
		return p.weekAndDay()
	default:
		p.centuryOnly(seg)
	}

	return nil
}

// implicitCentury -YY with optional -MM-DD or -Www-D. A single digit is a
// year in the reference decade.
func (p *parser) implicitCentury(digits, seg int) error {
	s := p.s
	if digits == 1 {
		p.rec.Year = p.ref.decade() + seg
	} else {
		p.rec.Year = p.ref.century() + seg
	}

	if !s.skip('-') {
		p.rec.MonthOrWeek = 1
		p.rec.Day = 1
		return nil
	}
	if s.skip('W') {
		p.rec.Style = WeekDate
	}

	var err error
	if _, p.rec.MonthOrWeek, err = s.readInt(2); err != nil {
		return err
	}
	if !s.skip('-') {
		p.rec.Day = 1
		return nil
	}

	count, v, err := s.readInt(0)
	if err != nil {
		return err
	}
	if p.rec.Style == WeekDate {
		if v > 7 {
			return ErrInvalidFormat
		}
		if count > 0 {
			p.rec.Weekday = v
			p.rec.HasWeekday = true
		}
		return nil
	}

	p.rec.Day = v
	if p.rec.Day == 0 {
		p.rec.Day = 1
	}
	if p.rec.MonthOrWeek == 0 {
		p.rec.MonthOrWeek = 1
	}

	return nil
}

// implicitYear --MM or --MM-DD
func (p *parser) implicitYear(seg int) error {
	s := p.s
	p.rec.Year = p.ref.Year
	p.rec.MonthOrWeek = seg
	if !s.skip('-') {
		p.rec.Day = 1
		return nil
	}

	var err error
	_, p.rec.Day, err = s.readInt(2)

	return err
}

// year four digit year with an optional month and day, ordinal day or week
func (p *parser) year(seg int) error {
	s := p.s
	p.rec.Year = seg
	s.skip('-')

	if !s.isDigit() {
		if s.is('W') {
			return p.weekAndDay()
		}
		p.rec.MonthOrWeek = 1
		p.rec.Day = 1
		return nil
	}

	count, v, err := s.readInt(0)
	if err != nil {
		return err
	}
	switch count {
	case 4: // MMDD
		p.rec.MonthOrWeek = v / 100
		p.rec.Day = v % 100
	case 2: // MM
		p.rec.MonthOrWeek = v
		s.skip('-')
		if !s.isDigit() {
			p.rec.Day = 1
			return nil
		}
		if _, p.rec.Day, err = s.readInt(0); err != nil {
			return err
		}
	case 3: // DDD
		p.rec.Day = v
		p.rec.Style = OrdinalDate
		return p.checkOrdinal()
	default:
		return ErrInvalidFormat
	}

	return nil
}

// yearMonth -YYMM with an optional day
func (p *parser) yearMonth(seg int) error {
	s := p.s
	p.rec.Year = p.ref.century() + seg/100
	p.rec.MonthOrWeek = seg % 100

	s.skip('-')
	if !s.isDigit() {
		p.rec.Day = 1
		return nil
	}

	var err error
	_, p.rec.Day, err = s.readInt(0)

	return err
}

// weekAndDay the cursor is on a week marker
func (p *parser) weekAndDay() error {
	s := p.s
	s.next(1)
	if !s.isDigit() {
		// Not really a week-based date; just a year followed by 'W'.
		if p.opts.Strict {
			if s.atEnd() {
				return ErrEndOfInput
			}
			return ErrInvalidFormat
		}
		p.rec.MonthOrWeek = 1
		p.rec.Day = 1
		return nil
	}

	var err error
	if _, p.rec.MonthOrWeek, err = s.readInt(2); err != nil {
		return err
	}

	return p.weekday()
}

// weekday optional -D after a week number
func (p *parser) weekday() error {
	s := p.s
	s.skip('-')
	count, v, err := s.readInt(0)
	if err != nil {
		return err
	}
	if v > 7 {
		return ErrInvalidFormat
	}
	p.rec.Style = WeekDate
	if count > 0 {
		p.rec.Weekday = v
		p.rec.HasWeekday = true
	}

	return nil
}

// dayAfterWeek day number directly after an implicit week
func (p *parser) dayAfterWeek() error {
	p.rec.Style = WeekDate
	if !p.s.isDigit() {
		p.rec.Day = 1
		return nil
	}

	var err error
	_, p.rec.Day, err = p.s.readInt(2)

	return err
}

// centuryOnly the two digits are a century, the year within it comes from
// the reference
func (p *parser) centuryOnly(seg int) {
	p.rec.Year = seg*100 + p.ref.Year%100
	p.rec.MonthOrWeek = 1
	p.rec.Day = 1
}

// checkCalendar strict mode limits month and day of month to the calendar
// instead of letting time.Date normalize them
func (p *parser) checkCalendar() error {
	if !p.opts.Strict || p.rec.Style != CalendarDate {
		return nil
	}
	days := utility.DaysInMonth(p.rec.Year, p.rec.MonthOrWeek)
	if days == 0 || p.rec.Day < 1 || p.rec.Day > days {
		return ErrInvalidFormat
	}

	return nil
}

// checkOrdinal strict mode limits an ordinal day to the length of its year
func (p *parser) checkOrdinal() error {
	if !p.opts.Strict {
		return nil
	}
	if p.rec.Day < 1 || p.rec.Day > utility.DaysIn(p.rec.Year) {
		return ErrInvalidFormat
	}

	return nil
}
