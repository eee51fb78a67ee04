package migration

import (
	"fmt"

	"gorm.io/gorm"

	"devfolio/internal/infrastructure/persistence/models"
	"devfolio/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model managed by AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.GuestAccessModel{},
	}
}

// AutoMigrateStrategy applies the schema directly from the gorm models.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy() Strategy {
	return &AutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "automigrate"
}
