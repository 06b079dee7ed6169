package category

import (
	categoryDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/category"
)

// Category is a static reference entry: a display label for the mobile client
// with no ownership and no referential integrity toward transactions.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Icon string `json:"icon"`
}

// Defaults returns the fixed reference list: 5 income and 9 expense entries.
// ResetToDefaults replaces the whole stored set with exactly these.
func Defaults() []*Category {
	return []*Category{
		{Name: "Salary", Kind: "income", Icon: "💼"},
		{Name: "Freelance", Kind: "income", Icon: "💻"},
		{Name: "Investment", Kind: "income", Icon: "📈"},
		{Name: "Gift", Kind: "income", Icon: "🎁"},
		{Name: "Other Income", Kind: "income", Icon: "💰"},

		{Name: "Food", Kind: "expense", Icon: "🍔"},
		{Name: "Transport", Kind: "expense", Icon: "🚗"},
		{Name: "Rent", Kind: "expense", Icon: "🏠"},
		{Name: "Utilities", Kind: "expense", Icon: "💡"},
		{Name: "Entertainment", Kind: "expense", Icon: "🎬"},
		{Name: "Healthcare", Kind: "expense", Icon: "🏥"},
		{Name: "Shopping", Kind: "expense", Icon: "🛒"},
		{Name: "Education", Kind: "expense", Icon: "📚"},
		{Name: "Other Expense", Kind: "expense", Icon: "💸"},
	}
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:   c.ID,
		Name: c.Name,
		Kind: c.Kind,
		Icon: c.Icon,
	}
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:   c.ID,
		Name: c.Name,
		Kind: c.Kind,
		Icon: c.Icon,
	}
}

func FromDataModelSlice(records []*categoryDatamodel.Category) []*Category {
	result := make([]*Category, len(records))
	for i, c := range records {
		result[i] = FromDataModel(c)
	}
	return result
}
