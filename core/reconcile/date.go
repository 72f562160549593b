package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateProposal is the proposed value of a date attribute. It is one of
// YearProposal, MonthYearProposal, ExactDateProposal or UnknownDate.
type DateProposal interface {
	dateFormat() DateFormat
}

// YearProposal proposes a year-only date.
type YearProposal struct {
	Year *string
}

// MonthYearProposal proposes a month and year. Month is a 0-based index
// (January = 0); the caller has already converted from the 1-based form value.
type MonthYearProposal struct {
	Month *int
	Year  *string
}

// ExactDateProposal proposes a full calendar date.
type ExactDateProposal struct {
	Date *string
}

// UnknownDate marks the date as unknown. It never counts as a change.
type UnknownDate struct{}

func (YearProposal) dateFormat() DateFormat      { return FormatYear }
func (MonthYearProposal) dateFormat() DateFormat { return FormatMonthYear }
func (ExactDateProposal) dateFormat() DateFormat { return FormatExactDate }
func (UnknownDate) dateFormat() DateFormat       { return FormatUnknown }

// NewDateProposal builds the proposal matching format from loose form fields.
// Unrecognized formats yield UnknownDate.
func NewDateProposal(format DateFormat, year *string, month *int, date *string) DateProposal {
	switch format {
	case FormatYear:
		return YearProposal{Year: year}
	case FormatMonthYear:
		return MonthYearProposal{Month: month, Year: year}
	case FormatExactDate:
		return ExactDateProposal{Date: date}
	default:
		return UnknownDate{}
	}
}

const exactDateLayout = "January 2, 2006"

// precision orders the formats from coarsest to finest.
func precision(f DateFormat) int {
	switch f {
	case FormatYear:
		return 1
	case FormatMonthYear:
		return 2
	case FormatExactDate:
		return 3
	default:
		return 0
	}
}

// parsedDate is a calendar value with the precision it could be read at.
type parsedDate struct {
	year  int
	month int // 0-based
	day   int
	prec  int
	raw   string
}

var storedDateLayouts = []struct {
	layout string
	prec   int
}{
	{time.RFC3339Nano, 3},
	{"2006-01-02T15:04:05", 3},
	{"2006-01-02", 3},
	{"2006-01", 2},
	{"2006", 1},
}

// parseDate reads an ISO-8601 value. Unparseable input keeps its raw text
// with precision 0.
func parseDate(value string) parsedDate {
	v := strings.TrimSpace(value)
	for _, l := range storedDateLayouts {
		if t, err := time.Parse(l.layout, v); err == nil {
			return parsedDate{year: t.Year(), month: int(t.Month()) - 1, day: t.Day(), prec: l.prec, raw: v}
		}
	}
	// Years before 1000 or after 9999 do not fit the layouts above.
	if y, err := strconv.Atoi(v); err == nil {
		return parsedDate{year: y, prec: 1, raw: v}
	}
	return parsedDate{raw: v}
}

// render formats the date at the requested precision, capped by what was parsed.
func (d parsedDate) render(p int) string {
	if d.prec < p {
		p = d.prec
	}
	switch p {
	case 1:
		return strconv.Itoa(d.year)
	case 2:
		return monthYear(d.month, strconv.Itoa(d.year))
	case 3:
		t := time.Date(d.year, time.Month(d.month+1), d.day, 0, 0, 0, 0, time.UTC)
		return t.Format(exactDateLayout)
	default:
		return d.raw
	}
}

// monthYear renders a 0-based month index with its year. The +1 conversion
// happens only here, for display.
func monthYear(month int, year string) string {
	if month < 0 || month > 11 {
		return fmt.Sprintf("%d/%s", month+1, year)
	}
	return time.Month(month+1).String() + " " + year
}

// normalizeYear strips padding so "0990" and 990 render alike.
func normalizeYear(year string) string {
	y := strings.TrimSpace(year)
	if n, err := strconv.Atoi(y); err == nil {
		return strconv.Itoa(n)
	}
	return y
}

// formatStored renders a stored date at min(stored precision, target precision).
func formatStored(d TaggedDate, target DateFormat) string {
	if d.Value == nil || strings.TrimSpace(*d.Value) == "" {
		return ""
	}
	parsed := parseDate(*d.Value)
	p := precision(d.Format)
	if p == 0 {
		p = parsed.prec
	}
	if t := precision(target); t > 0 && t < p {
		p = t
	}
	if p == 0 {
		return parsed.raw
	}
	return parsed.render(p)
}

// formatProposal renders the proposed date. ok is false when the proposal
// lacks the sub-fields its format requires.
func formatProposal(proposal DateProposal) (string, bool) {
	switch p := proposal.(type) {
	case YearProposal:
		if p.Year == nil || strings.TrimSpace(*p.Year) == "" {
			return "", false
		}
		return normalizeYear(*p.Year), true
	case MonthYearProposal:
		if p.Month == nil || p.Year == nil || strings.TrimSpace(*p.Year) == "" {
			return "", false
		}
		return monthYear(*p.Month, normalizeYear(*p.Year)), true
	case ExactDateProposal:
		if p.Date == nil || strings.TrimSpace(*p.Date) == "" {
			return "", false
		}
		return parseDate(*p.Date).render(3), true
	case UnknownDate:
		return "", false
	default:
		return "", false
	}
}

// CompareDate reconciles a tagged date against a proposal. The stored value
// is projected to the proposal's precision with the same formatter used for
// the proposal, so a year-only edit of "1990-01-01" to "1990" is unchanged.
// A nil proposal keeps the stored value; an unknown or incomplete proposal
// is reported unchanged with a NONE new display.
func CompareDate(key, label string, old TaggedDate, proposal DateProposal) AttributeDiff {
	diff := AttributeDiff{Key: key, Label: label, Kind: KindDate}

	if proposal == nil {
		o := formatStored(old, FormatUnknown)
		diff.OldDisplay = displayOrNone(o)
		diff.NewDisplay = diff.OldDisplay
		return diff
	}

	n, ok := formatProposal(proposal)
	if !ok {
		diff.OldDisplay = displayOrNone(formatStored(old, FormatUnknown))
		diff.NewDisplay = None
		return diff
	}

	o := formatStored(old, proposal.dateFormat())
	diff.OldDisplay = displayOrNone(o)
	diff.NewDisplay = displayOrNone(n)
	diff.Changed = o != n
	return diff
}
