package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/danakita/expense-tracker/internal/category"
	categoryPostgres "github.com/danakita/expense-tracker/internal/category/postgres"
	categoryDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/category"
)

func TestCategoryPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Postgres Suite")
}

// SQLiteCategory is a SQLite-compatible model for testing
type SQLiteCategory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Kind      string    `gorm:"column:kind;not null"`
	Icon      string    `gorm:"column:icon"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (SQLiteCategory) TableName() string {
	return "categories"
}

var _ = Describe("Category PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo category.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteCategory{})
		Expect(err).NotTo(HaveOccurred())

		repo = categoryPostgres.NewCategoryRepository(db)
	})

	Describe("ReplaceAll", func() {
		It("should insert the given set into an empty table", func() {
			err := repo.ReplaceAll([]*categoryDatamodel.Category{
				{Name: "Salary", Kind: "income", Icon: "💼"},
				{Name: "Food", Kind: "expense", Icon: "🍔"},
			})
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(2))
			Expect(stored[0].ID).To(BeNumerically(">", 0))
		})

		It("should drop every previously stored row", func() {
			err := repo.ReplaceAll([]*categoryDatamodel.Category{
				{Name: "Custom", Kind: "expense", Icon: "🧾"},
			})
			Expect(err).NotTo(HaveOccurred())

			err = repo.ReplaceAll([]*categoryDatamodel.Category{
				{Name: "Salary", Kind: "income", Icon: "💼"},
			})
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].Name).To(Equal("Salary"))
		})

		It("should leave the table empty when given an empty set", func() {
			err := repo.ReplaceAll([]*categoryDatamodel.Category{
				{Name: "Custom", Kind: "expense", Icon: "🧾"},
			})
			Expect(err).NotTo(HaveOccurred())

			err = repo.ReplaceAll(nil)
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(0))
		})
	})

	Describe("GetAll", func() {
		It("should return rows in insertion order", func() {
			defaults := category.Defaults()
			records := make([]*categoryDatamodel.Category, len(defaults))
			for i, c := range defaults {
				records[i] = category.ToDataModel(c)
			}

			err := repo.ReplaceAll(records)
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(14))
			Expect(stored[0].Name).To(Equal("Salary"))
			Expect(stored[13].Name).To(Equal("Other Expense"))
		})
	})
})
