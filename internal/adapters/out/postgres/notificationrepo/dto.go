// Package notificationrepo stores the notification outbox with GORM.
package notificationrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the row of the "notifications" table.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"not null;index"`
	ToAddress string    `gorm:"size:150;not null"`
	Subject   string    `gorm:"not null"`
	Body      string    `gorm:"not null"`
	Status    string    `gorm:"size:16;not null;index:idx_notifications_status_created_at,priority:1"`
	Attempts  int       `gorm:"not null"`
	LastError string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index:idx_notifications_status_created_at,priority:2"`
	SentAt    *time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	msg := n.Message()
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		OrderID:   n.OrderID().Value(),
		ToAddress: msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Status:    n.Status().String(),
		Attempts:  n.Attempts(),
		LastError: n.LastError(),
		CreatedAt: n.CreatedAt(),
		SentAt:    n.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	status, err := notification.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:      id,
		OrderID: orderID,
		Message: notification.Message{
			To:      dto.ToAddress,
			Subject: dto.Subject,
			Body:    dto.Body,
		},
		Status:    status,
		Attempts:  dto.Attempts,
		LastError: dto.LastError,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	})
}
