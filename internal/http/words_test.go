package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pronunciationapp/backend/internal/entities"
)

func TestWords_CreateAndUpdate(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/api/words/createWord", map[string]any{
		"wordName":         "thought",
		"definition":       "an idea",
		"phoneticSpelling": "/θɔːt/",
		"isActive":         true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[entities.Word](t, w)
	require.NotEmpty(t, created.ID)

	// The path id wins over whatever the body carries.
	w = doRequest(t, router, "PUT", "/api/words/"+created.ID, map[string]any{
		"id":       "other",
		"wordName": "through",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[entities.Word](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "through", updated.WordName)

	exists, err := db.Words.ExistsByID("other")
	require.NoError(t, err)
	assert.False(t, exists)

	w = doRequest(t, router, "DELETE", "/api/words/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Word deleted!", w.Body.String())
}

func TestWords_Categories(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	_, err := db.Words.Save(&entities.Word{ID: "w1", WordName: "cat"})
	require.NoError(t, err)
	_, err = db.Categories.Save(&entities.Category{ID: "c1", CategoryName: "Animals"})
	require.NoError(t, err)

	w := doRequest(t, router, "POST", "/api/words/w1/categories/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category added!", w.Body.String())

	w = doRequest(t, router, "GET", "/api/words/w1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[[]entities.Category](t, w)
	require.Len(t, categories, 1)
	assert.Equal(t, "Animals", categories[0].CategoryName)

	w = doRequest(t, router, "DELETE", "/api/words/w1/categories/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category removed!", w.Body.String())

	w = doRequest(t, router, "GET", "/api/words/w1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]entities.Category](t, w))

	w = doRequest(t, router, "POST", "/api/words/w1/categories/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWords_StageWordsAndPronunciations(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	wordID := "w1"
	_, err := db.Words.Save(&entities.Word{ID: wordID, WordName: "cat"})
	require.NoError(t, err)
	_, err = db.StageWords.Save(&entities.StageWord{ID: "s1", Status: entities.StageWordStatusPending, WordID: &wordID})
	require.NoError(t, err)
	_, err = db.Pronunciations.Save(&entities.Pronunciation{ID: "p1", AudioURL: "https://cdn.example/cat.mp3", Accent: "UK", WordID: &wordID})
	require.NoError(t, err)

	w := doRequest(t, router, "GET", "/api/words/w1/stage-words", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stageWords := decode[[]entities.StageWord](t, w)
	require.Len(t, stageWords, 1)
	assert.Equal(t, entities.StageWordStatusPending, stageWords[0].Status)

	w = doRequest(t, router, "GET", "/api/words/w1/pronunciations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	pronunciations := decode[[]entities.Pronunciation](t, w)
	require.Len(t, pronunciations, 1)
	assert.Equal(t, "UK", pronunciations[0].Accent)

	w = doRequest(t, router, "GET", "/api/words/missing/stage-words", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
