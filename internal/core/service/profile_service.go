package service

import (
	"context"

	"github.com/nexa-agro/auth-api/internal/core/domain"
	"github.com/nexa-agro/auth-api/internal/core/ports"
)

// ProfileService is a read-only projection of user accounts.
type ProfileService struct {
	directory ports.UserDirectory
}

func NewProfileService(directory ports.UserDirectory) *ProfileService {
	return &ProfileService{directory: directory}
}

// GetProfile returns the full stored projection of a user, password hash
// excluded by serialization.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.directory.FindUserByID(ctx, userID)
}
