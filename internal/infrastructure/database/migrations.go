package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/mindease/mindease-api/internal/infrastructure/config"
)

// RunMigrations aplica as migrações pendentes do diretório ./migrations
func RunMigrations(cfg *config.Config) error {
	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		return errors.New("DATABASE_URL é obrigatória para executar migrações")
	}

	sourceURL := "file://migrations"

	// Criar instância do migrate
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	// Aplicar migrações
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}
