package database

import (
	"errors"

	"github.com/pronunciationapp/backend/internal/database/crud"
	"github.com/pronunciationapp/backend/internal/entities"
)

// LevelByNumber returns the level with the given number or crud.ErrNotFound.
func (d *Database) LevelByNumber(number int) (*entities.Level, error) {
	return d.Levels.FindOneBy("number", number)
}

// GetOrCreateLevel returns the level with the given number, creating it
// with a default name when missing.
func (d *Database) GetOrCreateLevel(number int, name string) (*entities.Level, error) {
	level, err := d.LevelByNumber(number)
	if err == nil {
		return level, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return nil, err
	}
	return d.Levels.Save(&entities.Level{Number: number, Name: name})
}

// GetOrCreateCategory returns the category with the given names, creating
// it when missing.
func (d *Database) GetOrCreateCategory(name, subName string) (*entities.Category, error) {
	category, err := d.Categories.FindByNames(name, subName)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return nil, err
	}
	return d.Categories.Save(&entities.Category{CategoryName: name, SubCategoryName: subName})
}

// SaveWord inserts or replaces a word.
func (d *Database) SaveWord(word *entities.Word) error {
	_, err := d.Words.Save(word)
	return err
}

// AddWordCategory tags a word with a category.
func (d *Database) AddWordCategory(wordID, categoryID string) error {
	return d.Words.AddCategory(wordID, categoryID)
}
