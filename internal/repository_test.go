package internal_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal"
	"github.com/DrGermanius/OnboardFlow/internal/model"
)

var orderColumns = []string{
	"id", "name", "email", "product", "price",
	"payment_id", "payment_status", "envelope_id", "envelope_status", "created_at",
}

func strPtr(s string) *string {
	return &s
}

func testOrder(id string, createdAt time.Time) model.Order {
	return model.Order{
		ID:            id,
		Name:          "Ada",
		Email:         "ada@x.com",
		Product:       "Plan A",
		Price:         decimal.RequireFromString("49.99"),
		PaymentID:     strPtr("pi_1"),
		PaymentStatus: strPtr("succeeded"),
		CreatedAt:     createdAt,
	}
}

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = &internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Repository tests", func() {
		It("SaveOrder without error", func() {
			o := testOrder("order-1", time.Now().UTC())

			mock.ExpectExec("INSERT INTO orders (.+) VALUES (.+)").
				WithArgs(o.ID, o.Name, o.Email, o.Product, o.Price, "pi_1", "succeeded", nil, nil, o.CreatedAt).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.SaveOrder(context.Background(), o)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("SaveOrder with error", func() {
			o := testOrder("order-1", time.Now().UTC())

			mock.ExpectExec("INSERT INTO orders (.+) VALUES (.+)").
				WillReturnError(errors.New("some error"))

			err := repo.SaveOrder(context.Background(), o)
			Expect(err).Should(HaveOccurred())
		})
		It("GetOrders without error", func() {
			t := time.Now().UTC()

			expectedRows := sqlmock.NewRows(orderColumns).
				AddRow("order-2", "Ada", "ada@x.com", "Plan A", "49.99", "pi_2", "succeeded", "env-2", "sent", t).
				AddRow("order-1", "Bob", "bob@x.com", "Plan B", "10", "pi_1", "succeeded", nil, nil, t.Add(-time.Minute))

			mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC LIMIT \\$1").
				WithArgs(internal.ListLimit).WillReturnRows(expectedRows).RowsWillBeClosed()

			orders, err := repo.GetOrders(context.Background(), internal.ListLimit)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(2))
			Expect(orders[0].ID).Should(Equal("order-2"))
			Expect(*orders[0].EnvelopeID).Should(Equal("env-2"))
			Expect(orders[1].EnvelopeID).Should(BeNil())
			Expect(orders[1].EnvelopeStatus).Should(BeNil())
			Expect(orders[1].Price.Equal(decimal.NewFromInt(10))).Should(BeTrue())
		})
		It("GetOrders with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC LIMIT \\$1").
				WithArgs(internal.ListLimit).WillReturnError(errors.New("some error"))

			_, err := repo.GetOrders(context.Background(), internal.ListLimit)
			Expect(err).Should(HaveOccurred())
		})
		It("GetOrderByID without error", func() {
			t := time.Now().UTC()

			expectedRows := sqlmock.NewRows(orderColumns).
				AddRow("order-1", "Ada", "ada@x.com", "Plan A", "49.99", "pi_1", "succeeded", nil, nil, t)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("order-1").WillReturnRows(expectedRows)

			o, err := repo.GetOrderByID(context.Background(), "order-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(*o.PaymentStatus).Should(Equal("succeeded"))
		})
		It("GetOrderByID without records", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("order-1").WillReturnRows(sqlmock.NewRows(orderColumns))

			_, err := repo.GetOrderByID(context.Background(), "order-1")
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("GetOrderByID with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("order-1").WillReturnError(errors.New("some error"))

			_, err := repo.GetOrderByID(context.Background(), "order-1")
			Expect(err).Should(HaveOccurred())
			Expect(err).ShouldNot(Equal(internal.ErrNoRecords))
		})
	})
})

var _ = Describe("Repository on SQLite", func() {
	var (
		dir  string
		repo *internal.Repository
		ctx  context.Context
	)
	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "onboardflow-*")
		Expect(err).ShouldNot(HaveOccurred())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo, err = internal.NewRepository(&internal.Config{SQLiteFile: filepath.Join(dir, "data", "orders.db")}, logger.Sugar())
		Expect(err).ShouldNot(HaveOccurred())
		ctx = context.Background()
	})
	AfterEach(func() {
		Expect(repo.Close()).Should(Succeed())
		os.RemoveAll(dir)
	})

	It("creates the file and round-trips a record with null envelope fields", func() {
		Expect(filepath.Join(dir, "data", "orders.db")).Should(BeAnExistingFile())

		t := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		Expect(repo.SaveOrder(ctx, testOrder("order-1", t))).Should(Succeed())

		o, err := repo.GetOrderByID(ctx, "order-1")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(o.Name).Should(Equal("Ada"))
		Expect(o.Price.Equal(decimal.RequireFromString("49.99"))).Should(BeTrue())
		Expect(*o.PaymentID).Should(Equal("pi_1"))
		Expect(*o.PaymentStatus).Should(Equal("succeeded"))
		Expect(o.EnvelopeID).Should(BeNil())
		Expect(o.EnvelopeStatus).Should(BeNil())
		Expect(o.CreatedAt).Should(BeTemporally("==", t))
	})

	It("keeps every digit of a long price", func() {
		o := testOrder("order-1", time.Now().UTC())
		o.Price = decimal.RequireFromString("12345678901234567.89")
		Expect(repo.SaveOrder(ctx, o)).Should(Succeed())

		got, err := repo.GetOrderByID(ctx, "order-1")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(got.Price.String()).Should(Equal("12345678901234567.89"))
	})

	It("refuses a second write for the same id", func() {
		t := time.Now().UTC()
		Expect(repo.SaveOrder(ctx, testOrder("order-1", t))).Should(Succeed())
		Expect(repo.SaveOrder(ctx, testOrder("order-1", t))).ShouldNot(Succeed())
	})

	It("returns unknown ids as no records", func() {
		_, err := repo.GetOrderByID(ctx, "missing")
		Expect(err).Should(Equal(internal.ErrNoRecords))
	})

	It("lists at most 100 records, newest first", func() {
		base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		for i := 0; i < 105; i++ {
			Expect(repo.SaveOrder(ctx, testOrder(fmt.Sprintf("order-%03d", i), base.Add(time.Duration(i)*time.Second)))).Should(Succeed())
		}

		orders, err := repo.GetOrders(ctx, internal.ListLimit)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(orders).Should(HaveLen(internal.ListLimit))
		Expect(orders[0].ID).Should(Equal("order-104"))
		for i := 1; i < len(orders); i++ {
			Expect(orders[i-1].CreatedAt.Before(orders[i].CreatedAt)).Should(BeFalse())
		}
	})

	It("lists an empty table as an empty slice", func() {
		orders, err := repo.GetOrders(ctx, internal.ListLimit)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(orders).ShouldNot(BeNil())
		Expect(orders).Should(BeEmpty())
	})
})
