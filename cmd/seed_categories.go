package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/danakita/expense-tracker/internal/category"
	categoryPostgres "github.com/danakita/expense-tracker/internal/category/postgres"
	"github.com/danakita/expense-tracker/pkg/logger"
)

var seedCategoriesCmd = &cobra.Command{
	Use:   "seed-categories",
	Short: "Reset the category catalog to the built-in defaults",
	Long:  `Replace all rows in the categories table with the built-in default set. Custom categories are removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		svc := category.NewService(categoryPostgres.NewCategoryRepository(gormDB), logger.L())

		seeded, err := svc.ResetToDefaults()
		if err != nil {
			log.Fatalf("failed to seed categories: %v", err)
		}

		for _, c := range seeded {
			fmt.Printf("Seeded category: %s (%s)\n", c.Name, c.Kind)
		}
		fmt.Printf("Category catalog reset, %d categories seeded\n", len(seeded))
	},
}
