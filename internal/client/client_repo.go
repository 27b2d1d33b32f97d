package client

import (
	"context"
	"errors"

	clienterrors "go-payroll/internal/client/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Client, error)
	IsOwnedBy(ctx context.Context, clientID, userID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, clienterrors.ErrInvalidClientID
	}

	var c Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clienterrors.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// IsOwnedBy answers false for malformed ids instead of erroring.
func (r *repository) IsOwnedBy(ctx context.Context, clientID, userID string) (bool, error) {
	if _, err := uuid.Parse(clientID); err != nil {
		return false, nil
	}
	if _, err := uuid.Parse(userID); err != nil {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
