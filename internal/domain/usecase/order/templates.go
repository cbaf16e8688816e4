package order

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// emailData is the model every status template renders
type emailData struct {
	OrderID  uint64
	Status   string
	Total    string
	Headline string
	Body     string
}

type statusCopy struct {
	subject  string
	headline string
	body     string
}

var statusCopies = map[entity.OrderStatus]statusCopy{
	entity.OrderProcessing: {
		subject:  "Your VyronaMart order #%d is being prepared",
		headline: "We are packing your order",
		body:     "Our team has started preparing your items.",
	},
	entity.OrderShipped: {
		subject:  "Your VyronaMart order #%d has shipped",
		headline: "Your order is on its way",
		body:     "The package has left our warehouse.",
	},
	entity.OrderOutForDelivery: {
		subject:  "Your VyronaMart order #%d is out for delivery",
		headline: "Arriving today",
		body:     "A delivery partner is bringing your package. Keep your phone nearby.",
	},
	entity.OrderDelivered: {
		subject:  "Your VyronaMart order #%d was delivered",
		headline: "Delivered",
		body:     "Enjoy your purchase. Reply to this email if anything is missing.",
	},
}

const statusEmailLayout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>{{.Headline}}</h2>
  <p>{{.Body}}</p>
  <table cellpadding="4">
    <tr><td>Order</td><td>#{{.OrderID}}</td></tr>
    <tr><td>Status</td><td>{{.Status}}</td></tr>
    <tr><td>Total</td><td>{{.Total}}</td></tr>
  </table>
  <p style="font-size: 12px; color: #888;">VyronaMart group orders</p>
</body>
</html>`

// Templates renders one email per status transition
type Templates struct {
	layout *template.Template
}

// NewTemplates parses the email layout
func NewTemplates() (*Templates, error) {
	layout, err := template.New("status").Parse(statusEmailLayout)
	if err != nil {
		return nil, fmt.Errorf("parse status email template: %w", err)
	}
	return &Templates{layout: layout}, nil
}

// Render returns the subject and HTML body for an order that just reached its current status
func (t *Templates) Render(order *entity.Order) (string, string, error) {
	text, ok := statusCopies[order.Status]
	if !ok {
		return "", "", fmt.Errorf("no email template for status %q", order.Status)
	}

	var buf bytes.Buffer
	err := t.layout.Execute(&buf, emailData{
		OrderID:  order.ID,
		Status:   string(order.Status),
		Total:    order.FormattedTotal(),
		Headline: text.headline,
		Body:     text.body,
	})
	if err != nil {
		return "", "", fmt.Errorf("render status email: %w", err)
	}

	return fmt.Sprintf(text.subject, order.ID), buf.String(), nil
}
