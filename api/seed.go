/*
seed.go - Development seed data

PURPOSE:
  Populates a fresh database with the three pharmacy branches, a
  default admin account, and the current year's bank holidays. Run via
  the -seed flag on the server binary; safe to re-run (branches that
  already exist are skipped, users and holidays upsert).
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/careplus/leave-tracker/schedule"
	store "github.com/careplus/leave-tracker/store/sqlite"
)

var seedBranches = []string{
	"Careplus Chemist",
	"Wilmslow Road Pharmacy",
	"247 Pharmacy",
}

// Seed loads the baseline data set: branches, an admin user, and the
// current year's England & Wales bank holidays.
func Seed(ctx context.Context, s *store.Store, adminPassword string, log *logrus.Logger) error {
	for _, name := range seedBranches {
		b := store.Branch{ID: uuid.NewString(), Name: name}
		if err := s.SaveBranch(ctx, b); err != nil {
			if errors.Is(err, store.ErrDuplicateBranch) {
				continue
			}
			return fmt.Errorf("failed to seed branch %q: %w", name, err)
		}
		log.WithField("branch", name).Info("seeded branch")
	}

	hash, err := HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := store.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := s.SaveUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.WithField("username", admin.Username).Info("seeded admin user")

	year := time.Now().Year()
	for _, d := range schedule.BankHolidaysEnglandWales(year) {
		hol := store.PublicHoliday{
			ID:   uuid.NewString(),
			Date: d.Date,
			Name: d.Name,
		}
		if err := s.UpsertHoliday(ctx, hol); err != nil {
			return fmt.Errorf("failed to seed holiday %q: %w", d.Name, err)
		}
	}
	log.WithField("year", year).Info("seeded bank holidays")

	return nil
}
