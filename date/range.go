package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of whole days spanned by the range.
func (r Range) Days() int { return r.To.Sub(r.From) }

// String formats the range in its standard form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
