// Package crud provides a generic gorm-backed repository with the
// find/save/delete/exists operations shared by every entity.
//
// # Usage
//
//	levels := crud.NewRepository[entities.Level](db)
//	level, err := levels.FindByID("l1")
//	if errors.Is(err, crud.ErrNotFound) { ... }
package crud

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Repository handles the database operations of a single entity type.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository for T.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle so entity-specific repositories can
// build their own queries.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// FindAll returns every row in storage order.
func (r *Repository[T]) FindAll() ([]T, error) {
	var records []T
	if err := r.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return records, nil
}

// FindByID returns the row with the given primary key or ErrNotFound.
func (r *Repository[T]) FindByID(id string) (*T, error) {
	var record T
	err := r.db.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by id %s: %w", id, err)
	}
	return &record, nil
}

// FindOneBy returns the first row whose column equals value. The column
// name must come from code, never from request input.
func (r *Repository[T]) FindOneBy(column string, value any) (*T, error) {
	var record T
	err := r.db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by %s: %w", column, err)
	}
	return &record, nil
}

// Save inserts the record, or replaces every column of the existing row
// with the same primary key. Associations are left untouched.
func (r *Repository[T]) Save(record *T) (*T, error) {
	if err := r.db.Omit(clause.Associations).Save(record).Error; err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return record, nil
}

// DeleteByID removes the row with the given primary key. Deleting a missing
// row is not an error.
func (r *Repository[T]) DeleteByID(id string) error {
	if err := r.db.Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("delete by id %s: %w", id, err)
	}
	return nil
}

// DeleteAll removes every row of the table.
func (r *Repository[T]) DeleteAll() error {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("delete all: %w", err)
	}
	return nil
}

// ExistsByID reports whether a row with the given primary key exists.
func (r *Repository[T]) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("exists by id %s: %w", id, err)
	}
	return count > 0, nil
}

// Count returns the number of rows in the table.
func (r *Repository[T]) Count() (int64, error) {
	var count int64
	if err := r.db.Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
