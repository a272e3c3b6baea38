// Package repository provides a PostgreSQL implementation of the generation history.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/atinyakov/passgen/internal/models"
	"github.com/atinyakov/passgen/internal/strength"
)

// PostgresHistoryRepository stores generation history entries in PostgreSQL.
type PostgresHistoryRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresHistoryRepository creates a new PostgresHistoryRepository using the provided *sql.DB.
func NewPostgresHistoryRepository(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{DB: db}
}

// Record inserts a single history entry.
func (r *PostgresHistoryRepository) Record(ctx context.Context, e models.HistoryEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO history (id, length, classes, score, strength, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.Length, pq.Array(e.Classes), e.Score, string(e.Strength), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// List returns up to limit entries ordered from newest to oldest.
func (r *PostgresHistoryRepository) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, length, classes, score, strength, created_at
		  FROM history
		 ORDER BY created_at DESC
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			e     models.HistoryEntry
			label string
		)
		if err := rows.Scan(&e.ID, &e.Length, pq.Array(&e.Classes), &e.Score, &label, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.Strength = strength.Label(label)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
