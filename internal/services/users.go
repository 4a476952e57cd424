package services

import (
	"fmt"

	"github.com/pronunciationapp/backend/internal/auth"
	"github.com/pronunciationapp/backend/internal/entities"
)

// UserService stores users with bcrypt-hashed passwords.
type UserService struct {
	*Service[entities.User]
	progress   Repository[entities.GameProgress]
	bcryptCost int
}

func NewUserService(repo Repository[entities.User], progress Repository[entities.GameProgress], bcryptCost int) *UserService {
	return &UserService{
		Service:    NewService(repo),
		progress:   progress,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Create(user *entities.User) (*entities.User, error) {
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}
	return s.Service.Create(user)
}

// Update replaces the stored user. An empty password is stored empty,
// matching the replace-by-id semantics of every other resource.
func (s *UserService) Update(user *entities.User) (*entities.User, error) {
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}
	return s.Service.Update(user)
}

// GetGameProgress returns the game progress linked to a user.
func (s *UserService) GetGameProgress(userID string) (*entities.GameProgress, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.GameProgressID == nil {
		return nil, ErrNotFound
	}
	return s.progress.FindByID(*user.GameProgressID)
}

func (s *UserService) hashPassword(user *entities.User) error {
	if user.Password == "" {
		return nil
	}
	hash, err := auth.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	user.Password = hash
	return nil
}
