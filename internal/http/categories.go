package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronunciationapp/backend/internal/entities"
)

// CategoryStore defines the category operations the API needs.
type CategoryStore interface {
	ResourceStore[entities.Category]
	GetByName(name string) (*entities.Category, error)
	GetBySubCategoryName(name string) (*entities.Category, error)
}

// categoryOptions keeps the historical category contract: updates save the
// body under its own id, and single deletes confirm with "Level deleted!".
var categoryOptions = ResourceOptions{
	Name:              "category",
	AllDeletedMessage: "All categories deleted!",
	DeletedMessage:    "Level deleted!",
	KeepBodyID:        true,
}

func NewCategoriesController(store CategoryStore) *ResourceController[entities.Category, *entities.Category] {
	return NewResourceController[entities.Category](store, categoryOptions)
}

type CategorySearchController struct {
	store CategoryStore
}

func NewCategorySearchController(store CategoryStore) *CategorySearchController {
	return &CategorySearchController{store: store}
}

// Search finds a category by name or sub-category name.
// GET /api/categories/search?categoryName=...  or  ?subCategoryName=...
func (sc *CategorySearchController) Search(c *gin.Context) {
	var (
		category *entities.Category
		err      error
	)

	if name := c.Query("categoryName"); name != "" {
		category, err = sc.store.GetByName(name)
	} else if subName := c.Query("subCategoryName"); subName != "" {
		category, err = sc.store.GetBySubCategoryName(subName)
	} else {
		respondBadRequest(c, "categoryName or subCategoryName is required")
		return
	}

	if err != nil {
		respondStoreError(c, err, "category", "search categories")
		return
	}

	c.JSON(http.StatusOK, category)
}
