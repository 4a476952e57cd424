package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronunciationapp/backend/internal/entities"
)

// UserStore defines the user operations the API needs.
type UserStore interface {
	ResourceStore[entities.User]
	GetGameProgress(userID string) (*entities.GameProgress, error)
}

var userOptions = ResourceOptions{
	Name:              "user",
	AllDeletedMessage: "All users deleted!",
	DeletedMessage:    "User deleted!",
}

// NewUsersController never renders password hashes.
func NewUsersController(store UserStore) *ResourceController[entities.User, *entities.User] {
	return NewResourceController[entities.User](store, userOptions).
		WithPresenter(func(u entities.User) any { return u.Redacted() })
}

type UserProgressController struct {
	store UserStore
}

func NewUserProgressController(store UserStore) *UserProgressController {
	return &UserProgressController{store: store}
}

// GetGameProgress returns the game progress of a user.
// GET /api/users/:id/game-progress
func (uc *UserProgressController) GetGameProgress(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	progress, err := uc.store.GetGameProgress(id)
	if err != nil {
		respondStoreError(c, err, "game progress", "get user game progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}
