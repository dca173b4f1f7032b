// Package recipientrepo persists recipients with GORM. The address is
// embedded in the "recipients" row.
package recipientrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientDTO is the row of the "recipients" table.
type RecipientDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"size:100;not null"`
	Address   AddressDTO `gorm:"embedded"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

// AddressDTO holds the address columns of a recipient.
type AddressDTO struct {
	Street     string `gorm:"size:100"`
	Number     string `gorm:"size:5"`
	Complement string `gorm:"size:50"`
	State      string `gorm:"size:30"`
	City       string `gorm:"size:50"`
	PostalCode string
}

func fromDomain(r *recipient.Recipient) RecipientDTO {
	a := r.Address()
	dto := RecipientDTO{
		Name: r.Name(),
		Address: AddressDTO{
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			State:      a.State,
			City:       a.City,
			PostalCode: a.PostalCode,
		},
	}
	if !r.ID().IsZero() {
		dto.ID = r.ID().Value()
	}
	return dto
}

func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return recipient.RestoreRecipient(id, dto.Name, recipient.Address{
		Street:     dto.Address.Street,
		Number:     dto.Address.Number,
		Complement: dto.Address.Complement,
		State:      dto.Address.State,
		City:       dto.Address.City,
		PostalCode: dto.Address.PostalCode,
	})
}
