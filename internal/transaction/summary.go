package transaction

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryTotals accumulates per-category amounts. Net adds income and
// subtracts expense.
type CategoryTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategoryBreakdown maps category names to totals. Entries are created lazily
// on first encounter and serialize in first-occurrence order so summary output
// is deterministic.
type CategoryBreakdown struct {
	order  []string
	totals map[string]*CategoryTotals
}

func NewCategoryBreakdown() *CategoryBreakdown {
	return &CategoryBreakdown{
		totals: make(map[string]*CategoryTotals),
	}
}

func (b *CategoryBreakdown) add(kind Kind, category string, amount decimal.Decimal) {
	entry, ok := b.totals[category]
	if !ok {
		entry = &CategoryTotals{}
		b.totals[category] = entry
		b.order = append(b.order, category)
	}

	if kind == KindIncome {
		entry.Income = entry.Income.Add(amount)
		entry.Net = entry.Net.Add(amount)
	} else {
		entry.Expense = entry.Expense.Add(amount)
		entry.Net = entry.Net.Sub(amount)
	}
}

// Get returns the totals for a category name.
func (b *CategoryBreakdown) Get(category string) (CategoryTotals, bool) {
	entry, ok := b.totals[category]
	if !ok {
		return CategoryTotals{}, false
	}
	return *entry, true
}

// Categories returns the category names in first-occurrence order.
func (b *CategoryBreakdown) Categories() []string {
	return append([]string(nil), b.order...)
}

func (b *CategoryBreakdown) Len() int {
	return len(b.order)
}

func (b *CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(b.totals[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summary is the derived, non-persisted aggregation over a transaction set.
type Summary struct {
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	TotalExpense      decimal.Decimal    `json:"totalExpense"`
	Balance           decimal.Decimal    `json:"balance"`
	TransactionCount  int                `json:"transactionCount"`
	CategoryBreakdown *CategoryBreakdown `json:"categoryBreakdown"`
}

// Summarize computes income, expense, balance and the per-category breakdown
// in a single pass. All arithmetic is exact decimal; repeated summaries over
// the same records always agree.
func Summarize(transactions []*Transaction) *Summary {
	summary := &Summary{
		CategoryBreakdown: NewCategoryBreakdown(),
	}

	for _, t := range transactions {
		if t.Kind == KindIncome {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}
		summary.CategoryBreakdown.add(t.Kind, t.Category, t.Amount)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.TransactionCount = len(transactions)
	return summary
}
