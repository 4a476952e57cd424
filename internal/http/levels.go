package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronunciationapp/backend/internal/entities"
)

// LevelStore defines the level operations the API needs.
type LevelStore interface {
	ResourceStore[entities.Level]
	GetWords(levelID string) ([]entities.Word, error)
}

// levelOptions keeps the historical level contract: updates save the body
// under its own id and answer with the request as received.
var levelOptions = ResourceOptions{
	Name:              "level",
	AllDeletedMessage: "All levels deleted!",
	DeletedMessage:    "Level deleted!",
	KeepBodyID:        true,
	EchoUpdateRequest: true,
}

func NewLevelsController(store LevelStore) *ResourceController[entities.Level, *entities.Level] {
	return NewResourceController[entities.Level](store, levelOptions)
}

type LevelWordsController struct {
	store LevelStore
}

func NewLevelWordsController(store LevelStore) *LevelWordsController {
	return &LevelWordsController{store: store}
}

// ListWords returns the words of a level.
// GET /api/levels/:id/words
func (lc *LevelWordsController) ListWords(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	words, err := lc.store.GetWords(id)
	if err != nil {
		respondStoreError(c, err, "level", "list level words")
		return
	}

	c.JSON(http.StatusOK, words)
}
