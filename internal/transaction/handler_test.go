package transaction_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/danakita/expense-tracker/internal/auth"
	txDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/transaction"
	"github.com/danakita/expense-tracker/internal/transaction"
	txPostgres "github.com/danakita/expense-tracker/internal/transaction/postgres"
)

var _ = Describe("Transaction Handler Integration", func() {
	var (
		db      *gorm.DB
		router  *chi.Mux
		handler *transaction.Handler
	)

	caller := &auth.User{ID: "caller-1", Name: "Caller", Email: "caller@mail.com"}
	stranger := &auth.User{ID: "stranger-1", Name: "Stranger", Email: "stranger@mail.com"}

	asUser := func(req *http.Request, user *auth.User) *http.Request {
		return req.WithContext(auth.ContextWithUser(req.Context(), user))
	}

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&txDatamodel.Transaction{})
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := transaction.NewService(txPostgres.NewTransactionRepository(db), slogger)
		handler = transaction.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/transactions", func(r chi.Router) {
			r.Get("/", handler.ListTransactions)
			r.Post("/", handler.CreateTransaction)
			r.Get("/summary", handler.GetSummary)
			r.Get("/range/date", handler.GetByDateRange)
			r.Get("/{id}", handler.GetTransaction)
			r.Put("/{id}", handler.UpdateTransaction)
			r.Delete("/{id}", handler.DeleteTransaction)
		})
	})

	createTransaction := func(user *auth.User, payload string) map[string]interface{} {
		req := asUser(httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(payload)), user)
		w := serve(req)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var body map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body
	}

	It("should create a transaction owned by the authenticated caller", func() {
		body := createTransaction(caller, `{"kind":"expense","amount":40.5,"category":"Food","note":"lunch"}`)

		Expect(body["id"]).NotTo(BeEmpty())
		Expect(body["ownerId"]).To(Equal(caller.ID))
		Expect(body["kind"]).To(Equal("expense"))
		Expect(body["amount"]).To(BeNumerically("==", 40.5))
		Expect(body["category"]).To(Equal("Food"))
	})

	It("should reject requests without an authenticated user", func() {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		w := serve(req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should return the error envelope for validation failures", func() {
		req := asUser(httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(`{"kind":"expense","amount":-5,"category":"Food"}`)), caller)
		w := serve(req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var envelope struct {
			Error struct {
				Type    string `json:"type"`
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Error.Type).To(Equal("VALIDATION_ERROR"))
		Expect(envelope.Error.Code).To(Equal("INVALID_AMOUNT"))
		Expect(envelope.Error.Message).To(Equal("amount must be positive"))
	})

	It("should list only the caller's transactions", func() {
		createTransaction(caller, `{"kind":"income","amount":100,"category":"Salary"}`)
		createTransaction(stranger, `{"kind":"income","amount":200,"category":"Salary"}`)

		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions", nil), caller))
		Expect(w.Code).To(Equal(http.StatusOK))

		var list []map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		Expect(list[0]["ownerId"]).To(Equal(caller.ID))
	})

	It("should answer 404 for another caller's transaction id", func() {
		created := createTransaction(stranger, `{"kind":"expense","amount":10,"category":"Food"}`)
		id := created["id"].(string)

		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/"+id, nil), caller))

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should apply a partial update", func() {
		created := createTransaction(caller, `{"kind":"expense","amount":50,"category":"Food","note":"groceries"}`)
		id := created["id"].(string)

		req := asUser(httptest.NewRequest(http.MethodPut, "/transactions/"+id, bytes.NewBufferString(`{"amount":75}`)), caller)
		w := serve(req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var body map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body["amount"]).To(BeNumerically("==", 75))
		Expect(body["category"]).To(Equal("Food"))
		Expect(body["note"]).To(Equal("groceries"))
	})

	It("should delete a transaction and confirm", func() {
		created := createTransaction(caller, `{"kind":"expense","amount":50,"category":"Food"}`)
		id := created["id"].(string)

		w := serve(asUser(httptest.NewRequest(http.MethodDelete, "/transactions/"+id, nil), caller))
		Expect(w.Code).To(Equal(http.StatusOK))

		var body map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body["message"]).To(Equal("Transaction deleted successfully"))

		w = serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/"+id, nil), caller))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should produce a summary with a per-category breakdown", func() {
		createTransaction(caller, `{"kind":"income","amount":100,"category":"Salary","occurredAt":"2024-01-10T00:00:00Z"}`)
		createTransaction(caller, `{"kind":"expense","amount":40.5,"category":"Food","occurredAt":"2024-01-05T00:00:00Z"}`)

		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/summary", nil), caller))
		Expect(w.Code).To(Equal(http.StatusOK))

		var summary struct {
			TotalIncome       float64 `json:"totalIncome"`
			TotalExpense      float64 `json:"totalExpense"`
			Balance           float64 `json:"balance"`
			TransactionCount  int     `json:"transactionCount"`
			CategoryBreakdown map[string]struct {
				Income  float64 `json:"income"`
				Expense float64 `json:"expense"`
				Net     float64 `json:"net"`
			} `json:"categoryBreakdown"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&summary)).To(Succeed())
		Expect(summary.TotalIncome).To(BeNumerically("==", 100))
		Expect(summary.TotalExpense).To(BeNumerically("==", 40.5))
		Expect(summary.Balance).To(BeNumerically("==", 59.5))
		Expect(summary.TransactionCount).To(Equal(2))
		Expect(summary.CategoryBreakdown).To(HaveKey("Salary"))
		Expect(summary.CategoryBreakdown["Food"].Net).To(BeNumerically("==", -40.5))
	})

	It("should require both bounds on the date range endpoint", func() {
		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/range/date?startDate=2024-01-01", nil), caller))

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Error.Message).To(Equal("startDate and endDate are required"))
	})

	It("should reject malformed date parameters", func() {
		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/range/date?startDate=bogus&endDate=2024-01-31", nil), caller))

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Error.Message).To(Equal("invalid date format"))
	})

	It("should accept plain dates and return records inside the range", func() {
		createTransaction(caller, `{"kind":"expense","amount":10,"category":"Food","occurredAt":"2024-01-15T12:00:00Z"}`)
		createTransaction(caller, `{"kind":"expense","amount":20,"category":"Food","occurredAt":"2024-03-15T12:00:00Z"}`)

		w := serve(asUser(httptest.NewRequest(http.MethodGet, "/transactions/range/date?startDate=2024-01-01&endDate=2024-01-31", nil), caller))
		Expect(w.Code).To(Equal(http.StatusOK))

		var list []map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		Expect(list[0]["amount"]).To(BeNumerically("==", 10))
	})

	It("should serialize amounts as JSON numbers", func() {
		t := &transaction.Transaction{
			ID:         "tx-1",
			OwnerID:    caller.ID,
			Kind:       transaction.KindExpense,
			Amount:     decimal.NewFromFloat(40.50),
			Category:   "Food",
			OccurredAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		}

		raw, err := json.Marshal(t)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring(`"amount":40.5`))
	})
})
