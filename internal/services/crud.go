package services

// Service is a pass-through over a Repository. It adds no rules of its own;
// repository errors are returned unchanged.
type Service[T any] struct {
	repo Repository[T]
}

// NewService creates a pass-through service for T.
func NewService[T any](repo Repository[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

func (s *Service[T]) GetAll() ([]T, error) {
	return s.repo.FindAll()
}

func (s *Service[T]) GetByID(id string) (*T, error) {
	return s.repo.FindByID(id)
}

func (s *Service[T]) Create(record *T) (*T, error) {
	return s.repo.Save(record)
}

func (s *Service[T]) Update(record *T) (*T, error) {
	return s.repo.Save(record)
}

func (s *Service[T]) DeleteByID(id string) error {
	return s.repo.DeleteByID(id)
}

func (s *Service[T]) DeleteAll() error {
	return s.repo.DeleteAll()
}

func (s *Service[T]) ExistsByID(id string) (bool, error) {
	return s.repo.ExistsByID(id)
}
