package services

import (
	"errors"

	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/entities"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = crud.ErrNotFound
	// ErrInvalid wraps input the service refuses to store.
	ErrInvalid = errors.New("invalid input")
)

// Repository is the storage contract every pass-through service sits on.
// *crud.Repository[T] satisfies it.
type Repository[T any] interface {
	FindAll() ([]T, error)
	FindByID(id string) (*T, error)
	Save(record *T) (*T, error)
	DeleteByID(id string) error
	DeleteAll() error
	ExistsByID(id string) (bool, error)
}

// CategoryRepository adds the name lookups.
type CategoryRepository interface {
	Repository[entities.Category]
	FindByCategoryName(name string) (*entities.Category, error)
	FindBySubCategoryName(name string) (*entities.Category, error)
}

// WordRepository adds relationship queries.
type WordRepository interface {
	Repository[entities.Word]
	FindByLevel(levelID string) ([]entities.Word, error)
	GetCategories(wordID string) ([]entities.Category, error)
	AddCategory(wordID, categoryID string) error
	RemoveCategory(wordID, categoryID string) error
	GetStageWords(wordID string) ([]entities.StageWord, error)
	GetPronunciations(wordID string) ([]entities.Pronunciation, error)
}
