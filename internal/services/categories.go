package services

import "github.com/pronunciationapp/backend/internal/entities"

type CategoryService struct {
	*Service[entities.Category]
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{Service: NewService[entities.Category](repo), repo: repo}
}

func (s *CategoryService) GetByName(name string) (*entities.Category, error) {
	return s.repo.FindByCategoryName(name)
}

func (s *CategoryService) GetBySubCategoryName(name string) (*entities.Category, error) {
	return s.repo.FindBySubCategoryName(name)
}
