package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal/model"
)

const (
	OrderProcessedMessage = "Order processed"

	stepPayment  = "payment"
	stepEnvelope = "envelope"
	stepWorkItem = "work_item"
	stepIndex    = "search_index"
	stepStore    = "store"
)

//go:generate mockgen -destination=mock/mock_internal.go -package=mock_internal . IService,IRepository,IPayment,IEnvelope,IWorkItem,IIndexer,IDispatcher

type IService interface {
	ProcessOrder(context.Context, OrderInput) (model.OrderOutput, error)
	GetOrders(context.Context) ([]model.Order, error)
	GetOrderByID(context.Context, string) (model.Order, error)
}

// Integrations are the best-effort steps. A nil field means the integration is
// not configured and its step is skipped.
type Integrations struct {
	Envelope   IEnvelope
	WorkItem   IWorkItem
	Indexer    IIndexer
	Dispatcher IDispatcher
}

type ServiceOptions struct {
	Currency   string
	TemplateID string
	BoardID    string
	Timeout    time.Duration
}

type Service struct {
	Repository   IRepository
	Payment      IPayment
	Integrations Integrations

	// NewID and Now are replaceable in tests.
	NewID func() string
	Now   func() time.Time

	opts    ServiceOptions
	logger  *zap.SugaredLogger
	metrics *Metrics
}

func NewService(repository IRepository, payment IPayment, integrations Integrations, opts ServiceOptions, logger *zap.SugaredLogger, metrics *Metrics) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Currency == "" {
		opts.Currency = "usd"
	}

	return &Service{
		Repository:   repository,
		Payment:      payment,
		Integrations: integrations,
		NewID:        NewOrderID,
		Now:          time.Now,
		opts:         opts,
		logger:       logger,
		metrics:      metrics,
	}
}

// NewOrderID returns a time-ordered UUIDv7.
func NewOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ProcessOrder validates the input, takes payment and then runs the optional
// integrations in order. Only a payment failure aborts; the record is written
// once, after every step has resolved.
func (s *Service) ProcessOrder(ctx context.Context, in OrderInput) (model.OrderOutput, error) {
	v, err := in.Validate()
	if err != nil {
		s.metrics.order("invalid")
		return model.OrderOutput{}, err
	}

	order := model.Order{
		ID:      s.NewID(),
		Name:    v.Name,
		Email:   v.Email,
		Product: v.Product,
		Price:   v.Price,
	}

	payment, err := s.authorize(ctx, order)
	if err != nil {
		s.logger.Errorf("Payment for order %s failed: %s", order.ID, err.Error())
		s.metrics.order("payment_failed")
		return model.OrderOutput{}, err
	}
	order.PaymentID = &payment.ID
	order.PaymentStatus = &payment.Status

	if env, ok := s.createEnvelope(ctx, order); ok {
		order.EnvelopeID = &env.ID
		order.EnvelopeStatus = &env.Status
	}

	s.createWorkItem(ctx, order)

	order.CreatedAt = s.Now().UTC()

	s.index(ctx, order)
	s.dispatch(order)

	err = s.call(ctx, stepStore, func(ctx context.Context) error {
		return s.Repository.SaveOrder(ctx, order)
	})
	if err != nil {
		s.logger.Errorf("Saving order %s failed: %s", order.ID, err.Error())
		s.metrics.order("store_failed")
		return model.OrderOutput{}, err
	}

	s.logger.Infow("order processed", "orderId", order.ID, "paymentId", payment.ID, "envelope", order.EnvelopeID != nil)
	s.metrics.order("processed")
	return model.OrderOutput{
		Message:    OrderProcessedMessage,
		OrderID:    order.ID,
		PaymentID:  payment.ID,
		EnvelopeID: order.EnvelopeID,
	}, nil
}

func (s *Service) authorize(ctx context.Context, o model.Order) (Payment, error) {
	var p Payment
	err := s.call(ctx, stepPayment, func(ctx context.Context) error {
		var err error
		p, err = s.Payment.Authorize(ctx,
			MinorUnits(o.Price),
			s.opts.Currency,
			o.Email,
			fmt.Sprintf("Order %s - %s", o.ID, o.Product),
			map[string]string{"orderId": o.ID, "product": o.Product, "name": o.Name},
		)
		return err
	})
	return p, err
}

func (s *Service) createEnvelope(ctx context.Context, o model.Order) (Envelope, bool) {
	if s.Integrations.Envelope == nil {
		s.logger.Warn("DocuSign not configured; skipping envelope creation.")
		s.metrics.skipStep(stepEnvelope)
		return Envelope{}, false
	}

	var env Envelope
	err := s.call(ctx, stepEnvelope, func(ctx context.Context) error {
		var err error
		env, err = s.Integrations.Envelope.CreateFromTemplate(ctx, s.opts.TemplateID, o.Name, o.Email, "Please sign your contract for "+o.Product)
		return err
	})
	if err != nil {
		s.logger.Warnf("Envelope for order %s not created: %s", o.ID, err.Error())
		return Envelope{}, false
	}
	if env.Status == "" {
		env.Status = model.EnvelopeStatusSent
	}
	return env, true
}

func (s *Service) createWorkItem(ctx context.Context, o model.Order) {
	if s.Integrations.WorkItem == nil {
		s.metrics.skipStep(stepWorkItem)
		return
	}

	err := s.call(ctx, stepWorkItem, func(ctx context.Context) error {
		_, err := s.Integrations.WorkItem.CreateItem(ctx, s.opts.BoardID, o.Name+" - "+o.Product)
		return err
	})
	if err != nil {
		s.logger.Warnf("Work item for order %s not created: %s", o.ID, err.Error())
	}
}

func (s *Service) index(ctx context.Context, o model.Order) {
	if s.Integrations.Indexer == nil {
		s.metrics.skipStep(stepIndex)
		return
	}

	err := s.call(ctx, stepIndex, func(ctx context.Context) error {
		return s.Integrations.Indexer.Upsert(ctx, o.ID, o.SearchDocument())
	})
	if err != nil {
		s.logger.Warnf("Order %s not indexed: %s", o.ID, err.Error())
	}
}

func (s *Service) dispatch(o model.Order) {
	if s.Integrations.Dispatcher == nil {
		return
	}
	s.Integrations.Dispatcher.Dispatch(o.FanoutPayload())
}

// call runs one outbound step under the per-call timeout.
func (s *Service) call(ctx context.Context, step string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	s.metrics.observeStep(step, start, err)
	return err
}

func (s *Service) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.Repository.GetOrders(ctx, ListLimit)
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (model.Order, error) {
	return s.Repository.GetOrderByID(ctx, id)
}
