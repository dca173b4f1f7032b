package validation

// Payload is a validated request body. Getters report whether the field was
// present; values already have the type their rule declared.
type Payload struct {
	values map[string]any
}

func (p Payload) Has(field string) bool {
	_, ok := p.values[field]
	return ok
}

func (p Payload) String(field string) (string, bool) {
	v, ok := p.values[field].(string)
	return v, ok
}

func (p Payload) Int64(field string) (int64, bool) {
	v, ok := p.values[field].(int64)
	return v, ok
}

func (p Payload) Float64(field string) (float64, bool) {
	v, ok := p.values[field].(float64)
	return v, ok
}

func (p Payload) Bool(field string) (bool, bool) {
	v, ok := p.values[field].(bool)
	return v, ok
}
