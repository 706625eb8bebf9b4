package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const EnvelopeStatusSent = "sent"

// Order is the stored outcome of one orchestration run. Nullable columns are
// pointers so they serialize as JSON null.
type Order struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Product        string          `json:"product"`
	Price          decimal.Decimal `json:"price"`
	PaymentID      *string         `json:"paymentId"`
	PaymentStatus  *string         `json:"paymentStatus"`
	EnvelopeID     *string         `json:"envelopeId"`
	EnvelopeStatus *string         `json:"envelopeStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// OrderOutput is what POST /orders answers with.
type OrderOutput struct {
	Message    string  `json:"message"`
	OrderID    string  `json:"orderId"`
	PaymentID  string  `json:"paymentId"`
	EnvelopeID *string `json:"envelopeId"`
}

// SearchDocument is the snapshot pushed to the search index.
type SearchDocument struct {
	ObjectID   string          `json:"objectID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Product    string          `json:"product"`
	Price      decimal.Decimal `json:"price"`
	PaymentID  string          `json:"paymentId"`
	EnvelopeID *string         `json:"envelopeId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FanoutPayload is posted to the automation webhook and the event topic.
type FanoutPayload struct {
	OrderID string          `json:"orderId"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
}

func (o Order) SearchDocument() SearchDocument {
	d := SearchDocument{
		ObjectID:   o.ID,
		Name:       o.Name,
		Email:      o.Email,
		Product:    o.Product,
		Price:      o.Price,
		EnvelopeID: o.EnvelopeID,
		CreatedAt:  o.CreatedAt,
	}
	if o.PaymentID != nil {
		d.PaymentID = *o.PaymentID
	}
	return d
}

func (o Order) FanoutPayload() FanoutPayload {
	return FanoutPayload{
		OrderID: o.ID,
		Name:    o.Name,
		Email:   o.Email,
		Product: o.Product,
		Price:   o.Price,
	}
}
