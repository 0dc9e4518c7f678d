package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bookshop-be/internal/config"
	"bookshop-be/internal/db"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/user"

	"go.uber.org/zap"
)

// seedPassword is shared by every seeded account.
const seedPassword = "password123"

type seedUser struct {
	Name   string
	Email  string
	Roles  user.Roles
	Status user.Status
}

var seedUsers = []seedUser{
	{Name: "Rina", Email: "rina@bookshop.test", Roles: user.Roles{user.RoleAdmin}, Status: user.StatusActive},
	{Name: "Tommy", Email: "tommy@bookshop.test", Roles: user.Roles{user.RoleCustomer}, Status: user.StatusInactive},
}

func main() {
	mode := flag.String("mode", "up", "migration mode: up, down or seed")
	dir := flag.String("dir", "./migrations", "directory holding *.sql migrations")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect db", zap.Error(err))
	}
	defer database.Close()

	if err := run(database, *mode, *dir); err != nil {
		logger.L().Fatal("migrate failed", zap.String("mode", *mode), zap.Error(err))
	}
}

func run(db *sql.DB, mode, migrationsDir string) error {
	if mode == "seed" {
		return seed(db, seedPassword)
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	slices.Sort(files)

	switch mode {
	case "up":
		return runMigrationsUp(db, files)
	case "down":
		return runMigrationsDown(db, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up', 'down' or 'seed')", mode)
	}
}

func runMigrationsUp(db *sql.DB, files []string) error {
	log := logger.L().With(zap.String("mode", "up"))

	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Info("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		log.Info("applying migration", zap.String("version", version))
		if _, err := db.Exec(extractMigrationPart(string(content), "Up")); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		if _, err = db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}

	log.Info("all new migrations applied")
	return nil
}

// runMigrationsDown rolls back the most recently applied migration only.
func runMigrationsDown(db *sql.DB, files []string) error {
	log := logger.L().With(zap.String("mode", "down"))

	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	idx := slices.IndexFunc(files, func(f string) bool { return filepath.Base(f) == lastVersion })
	if idx < 0 {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(files[idx])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", files[idx], err)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))
	if _, err := db.Exec(extractMigrationPart(string(content), "Down")); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", lastVersion, err)
	}

	if _, err = db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	log.Info("rollback successful")
	return nil
}

// seed inserts the sample accounts. Existing emails are left untouched.
func seed(db *sql.DB, password string) error {
	hash, err := user.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, u := range seedUsers {
		_, err := db.Exec(`
			INSERT INTO users (name, email, password, roles, status)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO NOTHING
		`, u.Name, u.Email, hash, u.Roles, u.Status)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", u.Email, err)
		}
		logger.L().Info("seeded user", zap.String("email", u.Email), zap.Strings("roles", u.Roles.Strings()))
	}
	return nil
}

func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
