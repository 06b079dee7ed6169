package rest_test

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI Contract", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())

		err = doc.Validate(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should document every mounted route", func() {
		expected := map[string][]string{
			"/health":                   {http.MethodGet},
			"/ping":                     {http.MethodGet},
			"/auth/register":            {http.MethodPost},
			"/auth/login":               {http.MethodPost},
			"/categories":               {http.MethodGet},
			"/categories/default":       {http.MethodPost},
			"/transactions":             {http.MethodGet, http.MethodPost},
			"/transactions/summary":     {http.MethodGet},
			"/transactions/range/date":  {http.MethodGet},
			"/transactions/{id}":        {http.MethodGet, http.MethodPut, http.MethodDelete},
			"/user/profile":             {http.MethodGet, http.MethodPut},
			"/user/settings":            {http.MethodGet, http.MethodPut},
		}

		for path, methods := range expected {
			item := doc.Paths.Find(path)
			Expect(item).NotTo(BeNil(), "path %s missing from the contract", path)
			for _, method := range methods {
				Expect(item.GetOperation(method)).NotTo(BeNil(), "%s %s missing from the contract", method, path)
			}
		}
	})

	It("should declare bearer auth on ledger operations", func() {
		item := doc.Paths.Find("/transactions")
		Expect(item).NotTo(BeNil())

		op := item.GetOperation(http.MethodGet)
		Expect(op.Security).NotTo(BeNil())
		Expect(*op.Security).NotTo(BeEmpty())
	})

	It("should model the transaction with camelCase wire keys", func() {
		schema := doc.Components.Schemas["Transaction"]
		Expect(schema).NotTo(BeNil())

		for _, key := range []string{"id", "ownerId", "kind", "amount", "category", "note", "occurredAt", "createdAt", "updatedAt"} {
			Expect(schema.Value.Properties).To(HaveKey(key))
		}
	})

	It("should model the summary shape", func() {
		schema := doc.Components.Schemas["Summary"]
		Expect(schema).NotTo(BeNil())

		for _, key := range []string{"totalIncome", "totalExpense", "balance", "transactionCount", "categoryBreakdown"} {
			Expect(schema.Value.Properties).To(HaveKey(key))
		}
	})
})
