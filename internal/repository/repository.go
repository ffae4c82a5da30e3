package repository

import (
	"errors"
	"fmt"

	"tracking-service/internal/model"

	"gorm.io/gorm"
)

// Repository is the tenant-scoped query layer over the tracking store.
// Every operation takes the owning user's ID as its first argument;
// there is no way to query across tenants.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository backed by the given database handle.
func New(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("repository: nil db")
	}
	return &Repository{db: db}, nil
}

// GetUser returns the account with the given ID.
func (r *Repository) GetUser(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, wrapLookup("user", err)
	}
	return &user, nil
}

// wrapLookup converts gorm's not-found sentinel into ErrNotFound and
// wraps everything else as a storage failure.
func wrapLookup(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return fmt.Errorf("%s lookup: %w", entity, err)
}
