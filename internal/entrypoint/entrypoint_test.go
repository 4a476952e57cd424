package entrypoint

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pronunciationapp/backend/internal/config"
	"github.com/pronunciationapp/backend/internal/database"
	http_controllers "github.com/pronunciationapp/backend/internal/http"
)

func TestNewRouterConfig_WiresEveryResource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "wiring.db"))
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{Users: config.Users{BcryptCost: bcrypt.MinCost}}
	router := http_controllers.NewRouter(newRouterConfig(db, cfg, zap.NewNop(), "test"))

	paths := []string{
		"/api/categories",
		"/api/levels",
		"/api/words",
		"/api/stage-words",
		"/api/game-progress",
		"/api/users",
		"/api/pronunciations",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("DELETE", path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "deleted!")
		})
	}
}
