package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
)

// filterFlags are the flags shared by the commands reporting on a selection of transactions.
type filterFlags struct {
	category string
	kind     string
	period   string
	date     string
	start    string
}

func (p *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only transactions of this category")
	f.StringVar(&p.kind, "t", "", "Only transactions of this type (income or expense)")
	f.StringVar(&p.period, "p", "", "Only transactions of the period (day, week, month, quarter, year) containing the date -d")
	f.StringVar(&p.date, "d", "0d", "Reference date for -p, or end date for -s. See 'ft topic dates'.")
	f.StringVar(&p.start, "s", "", "Only transactions on or after this date. Overrides -p.")
}

// selection is the result of parsing filterFlags.
type selection struct {
	criteria fintrack.Criteria
	filters  []fintrack.Filter
	span     *date.Range // nil for all time
}

func (p *filterFlags) parse(today date.Date) (selection, error) {
	var s selection
	s.criteria.Category = fintrack.ParseCategory(p.category)
	if p.kind != "" {
		k, err := fintrack.ParseKind(p.kind)
		if err != nil {
			return s, err
		}
		s.criteria.Kind = k
	}
	s.filters = s.criteria.Filters()

	if p.period == "" && p.start == "" {
		return s, nil
	}
	end, err := date.ParseOn(p.date, today)
	if err != nil {
		return s, fmt.Errorf("invalid date: %w", err)
	}
	var r date.Range
	if p.start != "" {
		from, err := date.ParseOn(p.start, today)
		if err != nil {
			return s, fmt.Errorf("invalid start date: %w", err)
		}
		r = date.Range{From: from, To: end}
	} else {
		period, err := date.ParsePeriod(p.period)
		if err != nil {
			return s, err
		}
		r = date.NewRange(end, period)
	}
	s.span = &r
	s.filters = append(s.filters, fintrack.Between(r, time.Local))
	return s, nil
}

// title returns a report title describing the selected time span.
func (s selection) title(base string) string {
	if s.span == nil {
		return base
	}
	return fmt.Sprintf("%s for %s", base, s.span.Identifier())
}
