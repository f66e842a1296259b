package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"aurora-app-go/pkg/logger"
	"gorm.io/gorm"
)

// Migration is one SQL file from the migrations directory.
type Migration struct {
	Name string
	SQL  string
}

type schemaMigration struct {
	Filename  string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// Migrate finds the migrations directory above the working directory and
// applies it. A missing directory is not an error.
func Migrate(db *gorm.DB, log logger.Logger) ([]string, error) {
	dir, ok := locateMigrations()
	if !ok {
		log.Warn("db: migrations directory not found, skipping")
		return nil, nil
	}
	return MigrateDir(db, dir, log)
}

// MigrateDir applies every pending .sql file in dir and returns the names it
// applied, in order.
func MigrateDir(db *gorm.DB, dir string, log logger.Logger) ([]string, error) {
	migrations, err := LoadMigrations(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load migrations from %s: %w", dir, err)
	}
	return Apply(db, migrations, log)
}

// LoadMigrations reads the top-level .sql files of fsys sorted by name.
// Blank files are dropped.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if body := strings.TrimSpace(string(raw)); body != "" {
			migrations = append(migrations, Migration{Name: path.Base(name), SQL: body})
		}
	}
	return migrations, nil
}

// Apply runs the migrations that schema_migrations does not list yet. Each
// one commits together with its bookkeeping row.
func Apply(db *gorm.DB, migrations []Migration, log logger.Logger) ([]string, error) {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return nil, fmt.Errorf("prepare schema_migrations: %w", err)
	}

	var done []string
	if err := db.Model(&schemaMigration{}).Pluck("filename", &done).Error; err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}

	var applied []string
	for _, m := range Pending(migrations, done) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.SQL).Error; err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Filename: m.Name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		log.Info("db: migration applied", "file", m.Name)
		applied = append(applied, m.Name)
	}
	return applied, nil
}

// Pending keeps the migrations whose name is not in done, preserving order.
func Pending(migrations []Migration, done []string) []Migration {
	seen := make(map[string]struct{}, len(done))
	for _, name := range done {
		seen[name] = struct{}{}
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if _, ok := seen[m.Name]; !ok {
			pending = append(pending, m)
		}
	}
	return pending
}

func locateMigrations() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
