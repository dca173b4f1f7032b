package deliverer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 150
)

var (
	// ErrDelivererIsNotConstructed is returned when using a zero-value Deliverer.
	ErrDelivererIsNotConstructed = errors.New("Deliverer must be created via NewDeliverer or RestoreDeliverer constructor")
	// ErrDelivererAlreadyIdentified is returned by AssignID on a stored deliverer.
	ErrDelivererAlreadyIdentified = errors.New("deliverer already has an ID")
)

// Deliverer transports orders. First name and email are required because
// cancellation notices are addressed with them; last name is optional.
type Deliverer struct {
	id        kernel.ID
	firstName string
	lastName  string
	email     string
	guard     guard.ConstructorGuard
}

// NewDeliverer creates a deliverer that has not been stored yet.
func NewDeliverer(firstName, lastName, email string) (*Deliverer, error) {
	d := &Deliverer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setFirstName(firstName),
		d.setLastName(lastName),
		d.setEmail(email),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeliverer rebuilds a stored deliverer.
func RestoreDeliverer(id kernel.ID, firstName, lastName, email string) (*Deliverer, error) {
	d, err := NewDeliverer(firstName, lastName, email)
	if err != nil {
		return nil, err
	}
	if err = d.AssignID(id); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deliverer) Validate() error {
	if d == nil {
		return ErrDelivererIsNotConstructed
	}
	return d.guard.Validate(ErrDelivererIsNotConstructed)
}

// AssignID records the key generated on insert.
func (d *Deliverer) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return ErrDelivererAlreadyIdentified
	}
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Deliverer) ID() kernel.ID {
	return d.id
}

func (d *Deliverer) FirstName() string {
	return d.firstName
}

func (d *Deliverer) LastName() string {
	return d.lastName
}

func (d *Deliverer) Email() string {
	return d.email
}

func (d *Deliverer) setFirstName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("first_name")
	}
	if err := checkLength("first_name", name, MaxNameLength); err != nil {
		return err
	}
	d.firstName = name
	return nil
}

func (d *Deliverer) setLastName(name string) error {
	name = strings.TrimSpace(name)
	if err := checkLength("last_name", name, MaxNameLength); err != nil {
		return err
	}
	d.lastName = name
	return nil
}

func (d *Deliverer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := checkLength("email", email, MaxEmailLength); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	d.email = email
	return nil
}

func checkLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%d characters is longer than %d", n, limit))
	}
	return nil
}
