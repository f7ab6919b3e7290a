package folio

import (
	"fmt"
	"math"

	"github.com/foliokit/folio/date"
)

// daysPerYear converts a day count into years, Julian-calendar style.
const daysPerYear = 365.25

// PerformanceReport compares the portfolio value at two dates.
type PerformanceReport struct {
	Start, End           date.Date
	StartValue, EndValue Money
	Profit               Money // EndValue - StartValue
	Days                 int   // whole days between Start and End
	Years                float64
	TotalReturn          Percent // unannualized growth over the period
	Annualized           Percent // compound growth rate per year
}

// Evaluate computes the profit and the annualized return of the portfolio
// between start and end.
//
// The end must be strictly after the start (ErrInvalidDateRange), the span
// at least one day (ErrPeriodTooShort: annualizing shorter periods produces
// garbage percentages), and the start value positive (ErrZeroBaseValue:
// growth from nothing is undefined).
func Evaluate(p *Portfolio, r *Resolver, start, end date.Date) (*PerformanceReport, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%s..%s: %w", start, end, ErrInvalidDateRange)
	}
	days := end.Sub(start)
	if days < 1 {
		return nil, fmt.Errorf("%s..%s spans %d days: %w", start, end, days, ErrPeriodTooShort)
	}
	years := float64(days) / daysPerYear

	startReport, err := p.ValueOn(r, start)
	if err != nil {
		return nil, err
	}
	if !startReport.Total.IsPositive() {
		return nil, fmt.Errorf("portfolio value on %s is %s: %w", start, startReport.Total, ErrZeroBaseValue)
	}
	endReport, err := p.ValueOn(r, end)
	if err != nil {
		return nil, err
	}

	ratio := endReport.Total.AsFloat() / startReport.Total.AsFloat()
	return &PerformanceReport{
		Start:       start,
		End:         end,
		StartValue:  startReport.Total,
		EndValue:    endReport.Total,
		Profit:      endReport.Total.Sub(startReport.Total),
		Days:        days,
		Years:       years,
		TotalReturn: Percent(100 * (ratio - 1)),
		Annualized:  Percent(100 * (math.Pow(ratio, 1/years) - 1)),
	}, nil
}
