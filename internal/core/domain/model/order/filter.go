package order

// SearchOption selects one lifecycle bucket when listing orders.
type SearchOption string

const (
	// SearchPending lists orders that were neither started nor canceled.
	SearchPending SearchOption = "0"
	// SearchInTransit lists started orders that have not ended.
	SearchInTransit SearchOption = "1"
	// SearchDelivered lists ended orders.
	SearchDelivered SearchOption = "2"
	// SearchCanceled lists canceled orders.
	SearchCanceled SearchOption = "3"

	// DefaultSearchOption is used when no option, or an unknown one, is given.
	DefaultSearchOption = SearchPending
)

// ParseSearchOption maps the raw query value to a known option. Unknown or
// empty values resolve to DefaultSearchOption with ok set to false, so the
// fallback is visible to the caller instead of silently coerced.
func ParseSearchOption(raw string) (option SearchOption, ok bool) {
	switch o := SearchOption(raw); o {
	case SearchPending, SearchInTransit, SearchDelivered, SearchCanceled:
		return o, true
	default:
		return DefaultSearchOption, false
	}
}

// Status returns the lifecycle status whose orders the option selects.
func (o SearchOption) Status() Status {
	switch o {
	case SearchInTransit:
		return Started
	case SearchDelivered:
		return Ended
	case SearchCanceled:
		return Canceled
	default:
		return Pending
	}
}

// Presence constrains the nullability of one lifecycle column.
type Presence int

const (
	Any Presence = iota
	IsNull
	IsNotNull
)

func (p Presence) matches(set bool) bool {
	switch p {
	case IsNull:
		return !set
	case IsNotNull:
		return set
	default:
		return true
	}
}

// Filter is a predicate over the canceled_at, started and ended columns.
//
//	option | canceled_at | started  | ended
//	"0"    | null        | null     | null
//	"1"    | null        | not null | null
//	"2"    | null        | not null | not null
//	"3"    | not null    | any      | any
type Filter struct {
	CanceledAt Presence
	Started    Presence
	Ended      Presence
}

// Column names the filter constrains, as stored.
const (
	ColumnCanceledAt = "canceled_at"
	ColumnStarted    = "started"
	ColumnEnded      = "ended"
)

// Condition is one column constraint of a Filter.
type Condition struct {
	Column   string
	Presence Presence
}

// BuildFilter returns the predicate for a search option.
func BuildFilter(option SearchOption) Filter {
	return FilterFor(option.Status())
}

// FilterFor returns the predicate matching exactly the rows in status s.
// Unknown statuses get the Pending predicate.
func FilterFor(s Status) Filter {
	switch s {
	case Started:
		return Filter{CanceledAt: IsNull, Started: IsNotNull, Ended: IsNull}
	case Ended:
		return Filter{CanceledAt: IsNull, Started: IsNotNull, Ended: IsNotNull}
	case Canceled:
		return Filter{CanceledAt: IsNotNull, Started: Any, Ended: Any}
	default:
		return Filter{CanceledAt: IsNull, Started: IsNull, Ended: IsNull}
	}
}

// Conditions lists the constrained columns in a stable order, skipping Any.
func (f Filter) Conditions() []Condition {
	all := []Condition{
		{Column: ColumnCanceledAt, Presence: f.CanceledAt},
		{Column: ColumnStarted, Presence: f.Started},
		{Column: ColumnEnded, Presence: f.Ended},
	}

	conditions := make([]Condition, 0, len(all))
	for _, c := range all {
		if c.Presence != Any {
			conditions = append(conditions, c)
		}
	}
	return conditions
}

// Matches evaluates the predicate against an order in memory.
func (f Filter) Matches(o *Order) bool {
	return f.CanceledAt.matches(o.canceledAt != nil) &&
		f.Started.matches(o.Started()) &&
		f.Ended.matches(o.Ended())
}
