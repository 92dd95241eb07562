package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
)

// OrderTx is a single-use transactional session. Close releases the session
// and rolls back anything not yet committed; it is safe to call exactly once
// on every path, including after Commit or Rollback.
type OrderTx interface {
	Create(order *models.Order) error
	Commit() error
	Rollback() error
	Close()
}

// OrderStore hands out transactional sessions for order writes.
type OrderStore interface {
	Begin(ctx context.Context) (OrderTx, error)
}

type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Begin(ctx context.Context) (OrderTx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormOrderTx{tx: tx}, nil
}

type gormOrderTx struct {
	tx   *gorm.DB
	done bool
}

func (t *gormOrderTx) Create(order *models.Order) error {
	return t.tx.Create(order).Error
}

func (t *gormOrderTx) Commit() error {
	if err := t.tx.Commit().Error; err != nil {
		return err
	}
	t.done = true
	return nil
}

func (t *gormOrderTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback().Error
}

func (t *gormOrderTx) Close() {
	if !t.done {
		t.tx.Rollback()
		t.done = true
	}
}
