// Package postgresql implements the keystore on a single jsonb documents
// table, for deployments that outgrow the state file.
package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	pgclient "github.com/wkdev/pacelular-backend/pkg/client/postgresql"
	"github.com/wkdev/pacelular-backend/pkg/keystore"
	"go.uber.org/zap"
)

type store struct {
	client pgclient.Client
	logger *zap.Logger
}

func New(client pgclient.Client, logger *zap.Logger) *store {
	return &store{
		client: client,
		logger: logger,
	}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT doc
		FROM storefront_documents
		WHERE key = $1
	`

	var doc []byte

	err := s.client.QueryRow(ctx, query, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, keystore.ErrKeyNotFound
		}

		return nil, err
	}

	return doc, nil
}

// SetAll upserts every document in a single transaction so the slots can
// never be observed half-written.
func (s *store) SetAll(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}

	query := `
		INSERT INTO storefront_documents (key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`

	for key, doc := range entries {
		if _, err := tx.Exec(ctx, query, key, doc); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error("rollback failed", zap.Error(rbErr))
			}

			return fmt.Errorf("unable to upsert document %q: %w", key, err)
		}
	}

	return tx.Commit(ctx)
}
