package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
)

type GroupRepository struct {
	db *sqlx.DB
}

var _ ports.GroupRepository = (*GroupRepository)(nil)

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) GetOwnerID(ctx context.Context, groupID string) (string, error) {
	var ownerID string
	if err := r.db.GetContext(ctx, &ownerID, "SELECT owner_id FROM `groups` WHERE id = ?;", groupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrGroupNotFound
		}
		return "", err
	}
	return ownerID, nil
}
