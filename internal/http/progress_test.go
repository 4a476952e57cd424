package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pronunciationapp/backend/internal/entities"
)

func TestStageWords_RejectsUnknownStatus(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/api/stage-words/createStageWord",
		map[string]any{"status": "MAYBE", "listenedQty": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	count, err := db.StageWords.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStageWords_Lifecycle(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/api/stage-words/createStageWord", map[string]any{
		"status":              "PENDING",
		"listenedQty":         2,
		"lastUpdatedDateTime": time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[entities.StageWord](t, w)
	require.NotEmpty(t, created.ID)

	w = doRequest(t, router, "PUT", "/api/stage-words/"+created.ID,
		map[string]any{"status": "DONE", "listenedQty": 3})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[entities.StageWord](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, entities.StageWordStatusDone, updated.Status)

	w = doRequest(t, router, "DELETE", "/api/stage-words", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All stage words deleted!", w.Body.String())
}

func TestGameProgress_Lifecycle(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/api/game-progress/createGameProgress",
		map[string]any{"currentScore": 10, "currentStage": "STAGE_01", "wordsLearned": 4})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[entities.GameProgress](t, w)
	require.NotEmpty(t, created.ID)

	w = doRequest(t, router, "GET", "/api/game-progress/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[entities.GameProgress](t, w).WordsLearned)

	w = doRequest(t, router, "PUT", "/api/game-progress/"+created.ID,
		map[string]any{"currentStage": "STAGE_09"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "DELETE", "/api/game-progress/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Game progress deleted!", w.Body.String())
}

func TestPronunciations_Lifecycle(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(t, router, "GET", "/api/pronunciations", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, "POST", "/api/pronunciations/createPronunciation",
		entities.Pronunciation{ID: "p1", AudioURL: "https://cdn.example/a.mp3", Accent: "US"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, "GET", "/api/pronunciations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.Pronunciation](t, w), 1)

	w = doRequest(t, router, "DELETE", "/api/pronunciations/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pronunciation deleted!", w.Body.String())

	w = doRequest(t, router, "DELETE", "/api/pronunciations/p1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
