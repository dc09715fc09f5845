package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"blogapi/internal/middleware"

	"gorm.io/gorm"
)

// schemaVersion is one row of the ledger of applied migrations.
type schemaVersion struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaVersion) TableName() string {
	return "schema_versions"
}

// Migrator applies versioned SQL migrations and keeps the schema_versions ledger.
type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

// NewMigrator returns a Migrator over the embedded migrations.
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db, migrations: migrations}
}

// Applied returns the recorded versions in ascending order. A database that has
// never been migrated has none.
func (m *Migrator) Applied(ctx context.Context) ([]int, error) {
	var versions []int
	err := m.db.WithContext(ctx).Model(&schemaVersion{}).Order("version").Pluck("version", &versions).Error
	if err != nil && !isMissingTableError(err) {
		return nil, fmt.Errorf("read schema_versions: %w", err)
	}
	if versions == nil {
		versions = []int{}
	}
	return versions, nil
}

// Pending returns the migrations not yet recorded, in version order.
func (m *Migrator) Pending(ctx context.Context) ([]Migration, error) {
	applied, err := m.Applied(ctx)
	if err != nil {
		return nil, err
	}
	var out []Migration
	for _, mig := range m.migrations {
		if !slices.Contains(applied, mig.Version) {
			out = append(out, mig)
		}
	}
	return out, nil
}

// Up applies every pending migration, each in its own transaction together with
// its ledger row.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&schemaVersion{}); err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}
	applied, err := m.Applied(ctx)
	if err != nil {
		return err
	}
	if err := checkKnownVersions(applied, m.migrations); err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if slices.Contains(applied, mig.Version) {
			continue
		}
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(mig.UpScript).Error; err != nil {
				return fmt.Errorf("apply %s: %w", mig.String(), err)
			}
			return tx.Create(&schemaVersion{Version: mig.Version, Name: mig.Name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return err
		}
		middleware.Logger.InfoContext(ctx, "migration applied", slog.String("migration", mig.String()))
	}
	return nil
}

// Down reverts one applied migration and removes it from the ledger.
func (m *Migrator) Down(ctx context.Context, version int) error {
	idx := slices.IndexFunc(m.migrations, func(mig Migration) bool { return mig.Version == version })
	if idx < 0 {
		return fmt.Errorf("migration version %d not found", version)
	}
	mig := m.migrations[idx]

	applied, err := m.Applied(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(applied, version) {
		return fmt.Errorf("migration %s has not been applied", mig.String())
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(mig.DownScript).Error; err != nil {
			return fmt.Errorf("revert %s: %w", mig.String(), err)
		}
		return tx.Where("version = ?", version).Delete(&schemaVersion{}).Error
	})
	if err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "migration reverted", slog.String("migration", mig.String()))
	return nil
}

// checkKnownVersions refuses to run against a ledger written by a newer build.
func checkKnownVersions(applied []int, registered []Migration) error {
	var unknown []string
	for _, version := range applied {
		if !slices.ContainsFunc(registered, func(mig Migration) bool { return mig.Version == version }) {
			unknown = append(unknown, fmt.Sprintf("%06d", version))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return errors.New("schema_versions lists migrations this build does not know: " + strings.Join(unknown, ", "))
}
