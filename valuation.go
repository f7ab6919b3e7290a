package folio

import "github.com/foliokit/folio/date"

// ValuationLine is the contribution of one position to a valuation.
type ValuationLine struct {
	Symbol   string
	Name     string
	Quantity Quantity
	TradedOn date.Date // trading day that produced the unit price
	Price    Money     // unit closing price
	Value    Money     // Price × Quantity
}

// ValuationReport is the value of a portfolio on a given day, one line per
// position in insertion order.
type ValuationReport struct {
	Date     date.Date
	Currency string
	Lines    []ValuationLine
	Total    Money
}

// ValueOn values the portfolio on a day, resolving each position's price
// through r.
//
// A single unresolvable position fails the whole valuation: a total must
// never silently omit a holding. Aside from cache population the call is
// read-only.
func (p *Portfolio) ValueOn(r *Resolver, on date.Date) (*ValuationReport, error) {
	report := &ValuationReport{Date: on, Currency: p.currency, Total: M(0, p.currency)}
	for _, pos := range p.positions {
		rp, err := r.Resolve(pos.Symbol, on)
		if err != nil {
			return nil, err
		}
		price := M(rp.Price, p.currency)
		value := price.Mul(pos.Quantity)
		report.Lines = append(report.Lines, ValuationLine{
			Symbol:   pos.Symbol,
			Name:     pos.Name,
			Quantity: pos.Quantity,
			TradedOn: rp.On,
			Price:    price,
			Value:    value,
		})
		report.Total = report.Total.Add(value)
	}
	return report, nil
}
