package validation

// Kind is the JSON type a field must have.
type Kind int

const (
	String Kind = iota + 1
	Number
	Integer
	Boolean
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Rule constrains one payload field. MaxLength applies to strings only and
// is ignored when zero.
type Rule struct {
	Field     string
	Kind      Kind
	MaxLength int
}

// Rules is checked in order.
type Rules []Rule

var (
	CreateOrderRules = Rules{
		{Field: "product", Kind: String, MaxLength: 150},
		{Field: "deliverer_id", Kind: Integer},
		{Field: "recipient_id", Kind: Integer},
		{Field: "quantity", Kind: Integer},
	}

	UpdateOrderRules = Rules{
		{Field: "product", Kind: String, MaxLength: 150},
		{Field: "started", Kind: Boolean},
		{Field: "ended", Kind: Boolean},
		{Field: "signature_id", Kind: Integer},
	}

	CreateRecipientRules = Rules{
		{Field: "name", Kind: String, MaxLength: 100},
		{Field: "street", Kind: String, MaxLength: 100},
		{Field: "number", Kind: String, MaxLength: 5},
		{Field: "complement", Kind: String, MaxLength: 50},
		{Field: "state", Kind: String, MaxLength: 30},
		{Field: "city", Kind: String, MaxLength: 50},
		{Field: "postal_code", Kind: String},
	}

	CreateDelivererRules = Rules{
		{Field: "first_name", Kind: String, MaxLength: 100},
		{Field: "last_name", Kind: String, MaxLength: 100},
		{Field: "email", Kind: String, MaxLength: 150},
	}
)
