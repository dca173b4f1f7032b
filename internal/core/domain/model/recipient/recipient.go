package recipient

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// Field limits, in characters. The postal code is unbounded.
const (
	MaxNameLength       = 100
	MaxStreetLength     = 100
	MaxNumberLength     = 5
	MaxComplementLength = 50
	MaxStateLength      = 30
	MaxCityLength       = 50
)

var (
	// ErrRecipientIsNotConstructed is returned when using a zero-value Recipient.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or RestoreRecipient constructor")
	// ErrRecipientAlreadyIdentified is returned by AssignID on a stored recipient.
	ErrRecipientAlreadyIdentified = errors.New("recipient already has an ID")
)

// Address is where a recipient takes deliveries. Every part is optional.
type Address struct {
	Street     string
	Number     string
	Complement string
	State      string
	City       string
	PostalCode string
}

// Recipient receives orders. Only the name is required; it is quoted in
// cancellation notices.
type Recipient struct {
	id      kernel.ID
	name    string
	address Address
	guard   guard.ConstructorGuard
}

// NewRecipient creates a recipient that has not been stored yet.
//
// Example:
//
//	r, err := recipient.NewRecipient("Maria Silva", recipient.Address{
//	    Street: "Rua das Flores", Number: "12", City: "Recife", PostalCode: "50000-000",
//	})
func NewRecipient(name string, address Address) (*Recipient, error) {
	r := &Recipient{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient rebuilds a stored recipient.
func RestoreRecipient(id kernel.ID, name string, address Address) (*Recipient, error) {
	r, err := NewRecipient(name, address)
	if err != nil {
		return nil, err
	}
	if err = r.AssignID(id); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// AssignID records the key generated on insert.
func (r *Recipient) AssignID(id kernel.ID) error {
	if !r.id.IsZero() {
		return ErrRecipientAlreadyIdentified
	}
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) ID() kernel.ID {
	return r.id
}

func (r *Recipient) Name() string {
	return r.name
}

func (r *Recipient) Address() Address {
	return r.address
}

func (r *Recipient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := checkLength("name", name, MaxNameLength); err != nil {
		return err
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(a Address) error {
	a = Address{
		Street:     strings.TrimSpace(a.Street),
		Number:     strings.TrimSpace(a.Number),
		Complement: strings.TrimSpace(a.Complement),
		State:      strings.TrimSpace(a.State),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}

	if err := errors.Join(
		checkLength("street", a.Street, MaxStreetLength),
		checkLength("number", a.Number, MaxNumberLength),
		checkLength("complement", a.Complement, MaxComplementLength),
		checkLength("state", a.State, MaxStateLength),
		checkLength("city", a.City, MaxCityLength),
	); err != nil {
		return err
	}

	r.address = a
	return nil
}

func checkLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%d characters is longer than %d", n, limit))
	}
	return nil
}
