package importers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pronunciationapp/backend/internal/entities"
)

// Store is the persistence the import needs. *database.Database satisfies it.
type Store interface {
	GetOrCreateLevel(number int, name string) (*entities.Level, error)
	GetOrCreateCategory(name, subName string) (*entities.Category, error)
	SaveWord(word *entities.Word) error
	AddWordCategory(wordID, categoryID string) error
}

// Result summarises an import run.
type Result struct {
	WordsImported int
	Categorized   int
	Levels        int
	Categories    int
}

// Pipeline writes parsed rows into a Store.
type Pipeline struct {
	store Store
}

func NewPipeline(store Store) *Pipeline {
	return &Pipeline{store: store}
}

// Import saves every row as a new active word. A level number of zero
// leaves the word without a level; an empty category leaves it untagged.
// The first store error aborts the run and is returned with the partial
// result.
func (p *Pipeline) Import(rows []WordRow) (Result, error) {
	var result Result
	levels := make(map[int]string)
	categories := make(map[string]string)

	for _, row := range rows {
		word := &entities.Word{
			WordName:         row.Word,
			Definition:       row.Definition,
			PhoneticSpelling: row.PhoneticSpelling,
			Sentence:         row.Sentence,
			IsActive:         true,
		}

		if row.Level > 0 {
			levelID, ok := levels[row.Level]
			if !ok {
				level, err := p.store.GetOrCreateLevel(row.Level, fmt.Sprintf("Level %d", row.Level))
				if err != nil {
					return result, fmt.Errorf("line %d: level %d: %w", row.Line, row.Level, err)
				}
				levelID = level.ID
				levels[row.Level] = levelID
				result.Levels++
			}
			word.LevelID = &levelID
		}

		if err := p.store.SaveWord(word); err != nil {
			return result, fmt.Errorf("line %d: save word %q: %w", row.Line, row.Word, err)
		}
		result.WordsImported++

		if row.Category == "" {
			continue
		}

		key := row.Category + "|" + row.SubCategory
		categoryID, ok := categories[key]
		if !ok {
			category, err := p.store.GetOrCreateCategory(row.Category, row.SubCategory)
			if err != nil {
				return result, fmt.Errorf("line %d: category %q: %w", row.Line, row.Category, err)
			}
			categoryID = category.ID
			categories[key] = categoryID
			result.Categories++
		}

		if err := p.store.AddWordCategory(word.ID, categoryID); err != nil {
			return result, fmt.Errorf("line %d: tag word %q: %w", row.Line, row.Word, err)
		}
		result.Categorized++
	}

	zap.L().Info("word import finished",
		zap.Int("words", result.WordsImported),
		zap.Int("levels", result.Levels),
		zap.Int("categories", result.Categories))

	return result, nil
}
