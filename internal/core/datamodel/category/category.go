package category

import "time"

// Category is the persistence model for the global category reference list.
// No ownership, no per-user scoping.
type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Kind      string    `json:"kind" gorm:"column:kind;not null"`
	Icon      string    `json:"icon" gorm:"column:icon"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Category) TableName() string {
	return "categories"
}
