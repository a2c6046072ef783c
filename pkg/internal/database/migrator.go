package database

import (
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Agent{},
	&models.Meeting{},
	&models.CallIdentity{},
}

// Soft-deletable models eligible for periodic hard cleanup.
var AutoCleanupRange = []any{
	&models.Account{},
	&models.Agent{},
	&models.Meeting{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
