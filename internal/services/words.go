package services

import "github.com/pronunciationapp/backend/internal/entities"

type WordService struct {
	*Service[entities.Word]
	repo WordRepository
}

func NewWordService(repo WordRepository) *WordService {
	return &WordService{Service: NewService[entities.Word](repo), repo: repo}
}

func (s *WordService) GetCategories(wordID string) ([]entities.Category, error) {
	return s.repo.GetCategories(wordID)
}

func (s *WordService) AddCategory(wordID, categoryID string) error {
	return s.repo.AddCategory(wordID, categoryID)
}

func (s *WordService) RemoveCategory(wordID, categoryID string) error {
	return s.repo.RemoveCategory(wordID, categoryID)
}

func (s *WordService) GetStageWords(wordID string) ([]entities.StageWord, error) {
	if err := s.ensureExists(wordID); err != nil {
		return nil, err
	}
	return s.repo.GetStageWords(wordID)
}

func (s *WordService) GetPronunciations(wordID string) ([]entities.Pronunciation, error) {
	if err := s.ensureExists(wordID); err != nil {
		return nil, err
	}
	return s.repo.GetPronunciations(wordID)
}

func (s *WordService) ensureExists(wordID string) error {
	exists, err := s.ExistsByID(wordID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
