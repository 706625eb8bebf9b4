package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/OnboardFlow/internal"
)

func main() {
	//decimals at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	repository, err := NewRepository(cfg, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := NewMetrics(reg)

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	var integrations Integrations
	if cfg.DocuSign.Enabled() {
		envelopes, err := NewDocuSignEnvelopes(cfg.DocuSign, httpClient, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
		integrations.Envelope = envelopes
	}
	if cfg.Monday.Enabled() {
		integrations.WorkItem = NewMondayWorkItems(cfg.Monday, httpClient, sugaredLogger)
	}
	if cfg.Algolia.Enabled() {
		integrations.Indexer = NewAlgoliaIndexer(cfg.Algolia, sugaredLogger)
	}

	var dispatcher *Dispatcher
	if cfg.Fanout.Enabled() {
		var sinks []Sink
		if cfg.Fanout.WebhookURL != "" {
			sinks = append(sinks, NewWebhookSink(cfg.Fanout.WebhookURL, httpClient))
		}
		if brokers := cfg.Fanout.Brokers(); len(brokers) > 0 {
			sinks = append(sinks, NewKafkaSink(brokers, cfg.Fanout.KafkaTopic))
		}
		dispatcher = NewDispatcher(cfg.UpstreamTimeout, sugaredLogger, metrics, sinks...)
		integrations.Dispatcher = dispatcher
	}

	service := NewService(repository, NewStripePayments(cfg.Stripe, sugaredLogger), integrations, ServiceOptions{
		Currency:   cfg.Stripe.Currency,
		TemplateID: cfg.DocuSign.TemplateID,
		BoardID:    cfg.Monday.BoardID,
		Timeout:    cfg.UpstreamTimeout,
	}, sugaredLogger, metrics)
	handlers := NewHandlers(service, cfg.Stripe.WebhookSecret, sugaredLogger, metrics)

	app := NewApp(handlers, reg)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Errorf("Error on shutdown: %s", err.Error())
	}
	if dispatcher != nil {
		if err = dispatcher.Close(); err != nil {
			sugaredLogger.Errorf("Error on closing fan-out: %s", err.Error())
		}
	}
	if err = repository.Close(); err != nil {
		sugaredLogger.Errorf("Error on closing database: %s", err.Error())
	}
}
