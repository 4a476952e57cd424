package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronunciationapp/backend/internal/entities"
)

// WordStore defines the word operations the API needs.
type WordStore interface {
	ResourceStore[entities.Word]
	GetCategories(wordID string) ([]entities.Category, error)
	AddCategory(wordID, categoryID string) error
	RemoveCategory(wordID, categoryID string) error
	GetStageWords(wordID string) ([]entities.StageWord, error)
	GetPronunciations(wordID string) ([]entities.Pronunciation, error)
}

var wordOptions = ResourceOptions{
	Name:              "word",
	AllDeletedMessage: "All words deleted!",
	DeletedMessage:    "Word deleted!",
}

func NewWordsController(store WordStore) *ResourceController[entities.Word, *entities.Word] {
	return NewResourceController[entities.Word](store, wordOptions)
}

type WordRelationsController struct {
	store WordStore
}

func NewWordRelationsController(store WordStore) *WordRelationsController {
	return &WordRelationsController{store: store}
}

// ListCategories returns the categories of a word.
// GET /api/words/:id/categories
func (wc *WordRelationsController) ListCategories(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	categories, err := wc.store.GetCategories(id)
	if err != nil {
		respondStoreError(c, err, "word", "list word categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AddCategory tags a word with a category.
// POST /api/words/:id/categories/:categoryId
func (wc *WordRelationsController) AddCategory(c *gin.Context) {
	wordID, ok := requireParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := requireParam(c, "categoryId")
	if !ok {
		return
	}

	if err := wc.store.AddCategory(wordID, categoryID); err != nil {
		respondStoreError(c, err, "word or category", "add word category")
		return
	}

	respondText(c, "Category added!")
}

// RemoveCategory removes a category from a word.
// DELETE /api/words/:id/categories/:categoryId
func (wc *WordRelationsController) RemoveCategory(c *gin.Context) {
	wordID, ok := requireParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := requireParam(c, "categoryId")
	if !ok {
		return
	}

	if err := wc.store.RemoveCategory(wordID, categoryID); err != nil {
		respondStoreError(c, err, "word or category", "remove word category")
		return
	}

	respondText(c, "Category removed!")
}

// ListStageWords returns the stage records of a word.
// GET /api/words/:id/stage-words
func (wc *WordRelationsController) ListStageWords(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	stageWords, err := wc.store.GetStageWords(id)
	if err != nil {
		respondStoreError(c, err, "word", "list stage words")
		return
	}

	c.JSON(http.StatusOK, stageWords)
}

// ListPronunciations returns the pronunciations of a word.
// GET /api/words/:id/pronunciations
func (wc *WordRelationsController) ListPronunciations(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	pronunciations, err := wc.store.GetPronunciations(id)
	if err != nil {
		respondStoreError(c, err, "word", "list pronunciations")
		return
	}

	c.JSON(http.StatusOK, pronunciations)
}
