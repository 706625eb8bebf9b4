package internal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal"
)

var _ = Describe("MondayWorkItems", func() {
	var (
		srv    *httptest.Server
		status int
		reply  string
		auth   string
		req    map[string]interface{}
		items  *internal.MondayWorkItems
	)
	BeforeEach(func() {
		status = http.StatusOK
		req = nil

		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&req)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(reply))
		}))

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		items = internal.NewMondayWorkItems(internal.MondayConfig{APIKey: "key-1", BoardID: "42", APIURL: srv.URL}, srv.Client(), logger.Sugar())
	})
	AfterEach(func() {
		srv.Close()
	})

	It("creates an item", func() {
		reply = `{"data":{"create_item":{"id":"item-1"}}}`

		id, err := items.CreateItem(context.Background(), "42", "Ada - Plan A")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(id).Should(Equal("item-1"))

		Expect(auth).Should(Equal("key-1"))
		Expect(req["query"]).Should(ContainSubstring("create_item"))
		Expect(req["variables"]).Should(Equal(map[string]interface{}{"boardId": "42", "itemName": "Ada - Plan A"}))
	})

	It("treats GraphQL errors as failures", func() {
		reply = `{"data":{"create_item":null},"errors":[{"message":"Board not found"}]}`

		_, err := items.CreateItem(context.Background(), "42", "Ada - Plan A")
		Expect(errors.Is(err, internal.ErrGraphQLResponse)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring("Board not found"))

		var ue *internal.UpstreamError
		Expect(errors.As(err, &ue)).Should(BeTrue())
		Expect(ue.Provider).Should(Equal("monday"))
	})

	It("treats an error_message as a failure", func() {
		reply = `{"error_message":"Not Authenticated"}`

		_, err := items.CreateItem(context.Background(), "42", "Ada - Plan A")
		Expect(errors.Is(err, internal.ErrGraphQLResponse)).Should(BeTrue())
	})

	It("treats a non-2xx status as a failure", func() {
		status = http.StatusInternalServerError
		reply = `oops`

		_, err := items.CreateItem(context.Background(), "42", "Ada - Plan A")
		Expect(errors.Is(err, internal.ErrUnexpectedStatus)).Should(BeTrue())
	})
})
