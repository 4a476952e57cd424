// Package words provides database operations for words and their
// relationships to levels, categories, stage words and pronunciations.
package words

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/entities"
)

// Repository handles all word database operations.
type Repository struct {
	*crud.Repository[entities.Word]
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: crud.NewRepository[entities.Word](db)}
}

// FindByLevel returns the words that belong to a level.
func (r *Repository) FindByLevel(levelID string) ([]entities.Word, error) {
	var words []entities.Word
	err := r.DB().Where("level_id = ?", levelID).Find(&words).Error
	return words, err
}

// GetCategories returns the categories a word is tagged with.
func (r *Repository) GetCategories(wordID string) ([]entities.Category, error) {
	word, err := r.FindByID(wordID)
	if err != nil {
		return nil, err
	}
	var categories []entities.Category
	if err := r.DB().Model(word).Association("Categories").Find(&categories); err != nil {
		return nil, fmt.Errorf("load categories of word %s: %w", wordID, err)
	}
	return categories, nil
}

// AddCategory associates a category with a word.
func (r *Repository) AddCategory(wordID, categoryID string) error {
	word, category, err := r.loadPair(wordID, categoryID)
	if err != nil {
		return err
	}
	return r.DB().Model(word).Association("Categories").Append(category)
}

// RemoveCategory removes a category from a word.
func (r *Repository) RemoveCategory(wordID, categoryID string) error {
	word, category, err := r.loadPair(wordID, categoryID)
	if err != nil {
		return err
	}
	return r.DB().Model(word).Association("Categories").Delete(category)
}

// GetStageWords returns the stage records of a word.
func (r *Repository) GetStageWords(wordID string) ([]entities.StageWord, error) {
	var stageWords []entities.StageWord
	err := r.DB().Where("word_fk = ?", wordID).Find(&stageWords).Error
	return stageWords, err
}

// GetPronunciations returns the pronunciations recorded for a word.
func (r *Repository) GetPronunciations(wordID string) ([]entities.Pronunciation, error) {
	var pronunciations []entities.Pronunciation
	err := r.DB().Where("word_id = ?", wordID).Find(&pronunciations).Error
	return pronunciations, err
}

func (r *Repository) loadPair(wordID, categoryID string) (*entities.Word, *entities.Category, error) {
	word, err := r.FindByID(wordID)
	if err != nil {
		return nil, nil, err
	}
	var category entities.Category
	err = r.DB().Where("id = ?", categoryID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, crud.ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return word, &category, nil
}
