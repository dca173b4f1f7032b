package services

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
	"time"

	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CanceledAtLayout is how the cancellation instant is printed in notices.
const CanceledAtLayout = "Monday, 02 January 2006 at 15:04 (MST)"

// ErrOrderNotCanceled is returned when composing a notice for an order that
// has no cancellation time.
var ErrOrderNotCanceled = errors.New("order is not canceled")

const (
	cancellationSubject = "Order #{{ .OrderID }} was canceled"
	cancellationBody    = `Hello, {{ .DelivererName }}!

The delivery below was canceled on {{ .CanceledAt }}:

  Order:     #{{ .OrderID }}
  Product:   {{ .Product }}
  Quantity:  {{ number .Quantity }}
  Recipient: {{ .RecipientName }}

There is nothing to pick up for this order anymore.

FastFeet
`
)

type cancellationData struct {
	OrderID       string
	DelivererName string
	RecipientName string
	Product       string
	Quantity      int
	CanceledAt    string
}

// CancellationNotice renders the message a deliverer receives when one of
// their orders is canceled. It is safe for concurrent use.
//
// Example usage:
//
//	notice := services.NewCancellationNotice()
//	msg, err := notice.Compose(o, d, r)
//	if err != nil {
//	    return err
//	}
//	n, err := notification.NewNotification(o.ID(), msg, now)
type CancellationNotice struct {
	subject *template.Template
	body    *template.Template
}

// NewCancellationNotice parses the notice templates. The templates are
// constants, so a parse failure is a programming error and panics.
func NewCancellationNotice() CancellationNotice {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"number": func(n int) string { return printer.Sprintf("%d", n) },
	}

	return CancellationNotice{
		subject: template.Must(template.New("subject").Parse(cancellationSubject)),
		body:    template.Must(template.New("body").Funcs(funcs).Parse(cancellationBody)),
	}
}

// Compose renders the notice for a canceled order, addressed to its
// deliverer. The cancellation time is printed in its own location.
func (c CancellationNotice) Compose(
	o *order.Order,
	d *deliverer.Deliverer,
	r *recipient.Recipient,
) (notification.Message, error) {
	if err := errors.Join(o.Validate(), d.Validate(), r.Validate()); err != nil {
		return notification.Message{}, err
	}

	canceledAt := o.CanceledAt()
	if canceledAt == nil {
		return notification.Message{}, ErrOrderNotCanceled
	}

	data := cancellationData{
		OrderID:       o.ID().String(),
		DelivererName: d.FirstName(),
		RecipientName: r.Name(),
		Product:       o.Product(),
		Quantity:      o.Quantity(),
		CanceledAt:    FormatCanceledAt(*canceledAt),
	}

	subject, err := execute(c.subject, data)
	if err != nil {
		return notification.Message{}, err
	}
	body, err := execute(c.body, data)
	if err != nil {
		return notification.Message{}, err
	}

	return notification.Message{
		To:      d.Email(),
		Subject: subject,
		Body:    body,
	}, nil
}

// FormatCanceledAt prints t with CanceledAtLayout.
func FormatCanceledAt(t time.Time) string {
	return t.Format(CanceledAtLayout)
}

func execute(t *template.Template, data cancellationData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
