package postgres

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          SERIAL PRIMARY KEY,
		telegram_id BIGINT NOT NULL UNIQUE,
		username    TEXT,
		first_name  TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_demo     BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id           SERIAL PRIMARY KEY,
		user_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_name TEXT NOT NULL,
		amount       DOUBLE PRECISION NOT NULL,
		quantity     INTEGER NOT NULL DEFAULT 1,
		date         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status       TEXT NOT NULL DEFAULT 'completed'
			CHECK (status IN ('completed', 'pending', 'cancelled'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_user_date ON sales (user_id, date DESC)`,
}

// Migrate cria as tabelas caso ainda não existam
func Migrate(ctx context.Context, q Queryer) error {
	for i, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar migração %d: %w", i+1, err)
		}
	}
	return nil
}
