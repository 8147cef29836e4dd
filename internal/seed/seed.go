package seed

import (
	"context"
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/repository"
	"gorm.io/gorm"
)

const userBatchSize = 500

// Run migrates the schema and writes the dataset. Safe to call multiple times:
// existing rows are left untouched.
func Run(ctx context.Context, db *gorm.DB, dataset domain.Dataset) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for i, org := range dataset.Organizations {
		rec := repository.NewOrganizationRecord(org, i)
		if err := db.Where("org_id = ?", rec.OrgID).FirstOrCreate(&rec).Error; err != nil {
			return fmt.Errorf("failed to create organization %s: %w", org.OrgID, err)
		}
	}

	created := 0
	for start := 0; start < len(dataset.Users); start += userBatchSize {
		end := start + userBatchSize
		if end > len(dataset.Users) {
			end = len(dataset.Users)
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			for _, u := range dataset.Users[start:end] {
				rec := repository.NewUserRecord(u)
				res := tx.Where("user_id = ?", rec.UserID).FirstOrCreate(&rec)
				if res.Error != nil {
					return fmt.Errorf("failed to create user %s: %w", u.UserID, res.Error)
				}
				created += int(res.RowsAffected)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	logging.Info().
		Int("organizations", len(dataset.Organizations)).
		Int("users", len(dataset.Users)).
		Int("users_created", created).
		Msg("Seed completed")
	return nil
}
