package services

import "github.com/pronunciationapp/backend/internal/entities"

type LevelService struct {
	*Service[entities.Level]
	words WordRepository
}

func NewLevelService(repo Repository[entities.Level], words WordRepository) *LevelService {
	return &LevelService{Service: NewService(repo), words: words}
}

// GetWords returns the words of a level, or ErrNotFound when the level
// does not exist.
func (s *LevelService) GetWords(levelID string) ([]entities.Word, error) {
	exists, err := s.ExistsByID(levelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.words.FindByLevel(levelID)
}
