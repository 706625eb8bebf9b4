package internal

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const providerStripe = "stripe"

type Payment struct {
	ID     string
	Status string
}

type IPayment interface {
	Authorize(ctx context.Context, amount int64, currency, receiptEmail, description string, metadata map[string]string) (Payment, error)
}

// StripePayments creates a PaymentIntent per order. The client secret is not
// handed back to any frontend; the intent id and status are all that is kept.
type StripePayments struct {
	client paymentintent.Client
	logger *zap.SugaredLogger
}

func NewStripePayments(cfg StripeConfig, logger *zap.SugaredLogger) *StripePayments {
	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger,
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	return &StripePayments{
		client: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: cfg.SecretKey,
		},
		logger: logger,
	}
}

func (p *StripePayments) Authorize(ctx context.Context, amount int64, currency, receiptEmail, description string, metadata map[string]string) (Payment, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amount),
		Currency:     stripe.String(currency),
		ReceiptEmail: stripe.String(receiptEmail),
		Description:  stripe.String(description),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.client.New(params)
	if err != nil {
		return Payment{}, NewUpstreamError(providerStripe, err)
	}

	p.logger.Infof("Stripe PaymentIntent created: %s", pi.ID)
	return Payment{ID: pi.ID, Status: string(pi.Status)}, nil
}
