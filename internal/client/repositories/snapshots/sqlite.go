package snapshots

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/okuleshov/supportlist/internal/client/models"
	"github.com/okuleshov/supportlist/internal/common"
	"github.com/okuleshov/supportlist/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, listID string, l *models.List) error {
	content, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot[%s]: %w", listID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (list_id, content, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(list_id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at
	`, listID, string(content), l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot[%s]: %w", listID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, listID string) (*models.List, error) {
	var content string
	err := r.db.QueryRowContext(ctx, `SELECT content FROM snapshots WHERE list_id = ?`, listID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", listID, err)
	}

	var l models.List
	if err := json.Unmarshal([]byte(content), &l); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot[%s]: %w", listID, err)
	}
	return &l, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, listID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE list_id = ?`, listID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot[%s]: %w", listID, err)
	}
	return nil
}
