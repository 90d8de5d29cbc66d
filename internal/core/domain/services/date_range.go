package services

import (
	"fmt"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateRange is a parsed listing filter. NeedsFloor is set when from was omitted and
// the caller must substitute the scoped actor's earliest order time.
type DateRange struct {
	From       *time.Time
	To         *time.Time
	NeedsFloor bool
}

// DateRangeParser applies the tolerant date-filter policy:
//   - blank from: no lower bound yet, NeedsFloor is set
//   - unparseable from: ignored, no lower bound and no floor
//   - to: clamped to the last millisecond of its calendar day in loc
//   - unparseable to: rejected with *errs.ValueIsInvalidError
type DateRangeParser struct {
	loc *time.Location
}

// NewDateRangeParser interprets dates without an offset in loc; nil means UTC.
func NewDateRangeParser(loc *time.Location) DateRangeParser {
	if loc == nil {
		loc = time.UTC
	}
	return DateRangeParser{loc: loc}
}

func (p DateRangeParser) Parse(from, to string) (DateRange, error) {
	var r DateRange

	from = strings.TrimSpace(from)
	if from == "" {
		r.NeedsFloor = true
	} else if t, ok := p.parse(from); ok {
		r.From = &t
	}

	to = strings.TrimSpace(to)
	if to != "" {
		t, ok := p.parse(to)
		if !ok {
			return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
				"to", fmt.Errorf("%q is not a recognised date", to))
		}
		end := p.endOfDay(t)
		r.To = &end
	}

	return r, nil
}

func (p DateRangeParser) parse(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p DateRangeParser) endOfDay(t time.Time) time.Time {
	y, m, d := t.In(p.loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), p.loc)
}
