package database

import (
	"errors"

	"gorm.io/gorm"
)

// ContentRepo is the persistence contract shared by all four content types.
// One generic repository instead of four copies keeps create/read/update/delete
// behavior from drifting between resources.
type ContentRepo[T any] struct {
	db *gorm.DB
}

func NewContentRepo[T any](db *gorm.DB) *ContentRepo[T] {
	return &ContentRepo[T]{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ContentRepo[T]) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every record, newest first.
func (r *ContentRepo[T]) FindAll() ([]T, error) {
	var records []T
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// FindByID returns the record with the given id, or nil when absent.
func (r *ContentRepo[T]) FindByID(id uint) (*T, error) {
	var record T
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Add inserts a new record and backfills its assigned id.
func (r *ContentRepo[T]) Add(record *T) error {
	return r.db.Create(record).Error
}

// Update performs a full-column overwrite of the record identified by its
// primary key. Concurrent updates to the same id are last-writer-wins.
func (r *ContentRepo[T]) Update(record *T) error {
	return r.db.Save(record).Error
}

// Delete removes the record by id. Deleting an unknown id reports
// gorm.ErrRecordNotFound rather than succeeding silently.
func (r *ContentRepo[T]) Delete(id uint) error {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
