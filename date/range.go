package date

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two days, boundaries included.
// Boundaries are swapped if needed.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Day returns the range made of a single day.
func Day(d Date) Range { return Range{From: d, To: d} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + " to " + r.To.String()
}
