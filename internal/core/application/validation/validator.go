package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"fastfeet/internal/pkg/errs"
)

// Constraints reported in FieldError.
const (
	ConstraintType      = "type"
	ConstraintMaxLength = "max_length"
)

// FieldError describes the first rule a payload broke.
type FieldError struct {
	Field      string
	Constraint string
	Message    string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap classifies validation failures as invalid values.
func (e *FieldError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Validate checks payload against rules and returns a typed view of the
// fields the rules name. Fields without a rule are dropped.
func Validate(payload map[string]any, rules Rules) (Payload, *FieldError) {
	values := make(map[string]any, len(rules))

	for _, rule := range rules {
		raw, ok := payload[rule.Field]
		if !ok || raw == nil {
			continue
		}

		value, fieldErr := check(rule, raw)
		if fieldErr != nil {
			return Payload{}, fieldErr
		}
		values[rule.Field] = value
	}

	return Payload{values: values}, nil
}

func check(rule Rule, raw any) (any, *FieldError) {
	switch rule.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, typeError(rule)
		}
		if rule.MaxLength > 0 && utf8.RuneCountInString(s) > rule.MaxLength {
			return nil, &FieldError{
				Field:      rule.Field,
				Constraint: ConstraintMaxLength,
				Message:    fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLength),
			}
		}
		return s, nil
	case Number:
		f, ok := toFloat(raw)
		if !ok {
			return nil, typeError(rule)
		}
		return f, nil
	case Integer:
		f, ok := toFloat(raw)
		if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, typeError(rule)
		}
		return int64(f), nil
	case Boolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, typeError(rule)
		}
		return b, nil
	default:
		return nil, typeError(rule)
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func typeError(rule Rule) *FieldError {
	return &FieldError{
		Field:      rule.Field,
		Constraint: ConstraintType,
		Message:    fmt.Sprintf("%s must be of type %s", rule.Field, rule.Kind),
	}
}
