package ports

import (
	"context"

	"github.com/nexa-agro/auth-api/internal/core/domain"
)

// UserDirectory is the persistent store of users and their reference data.
// Lookups signal absence with the matching domain sentinel
// (domain.ErrUserNotFound, domain.ErrInvalidUserType, domain.ErrPlanNotFound).
type UserDirectory interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	// CreateUser persists a new user and returns the stored record with its
	// generated identity and registration timestamp. A uniqueness violation
	// on email surfaces as domain.ErrEmailRegistered.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserTypeByName(ctx context.Context, name string) (*domain.UserType, error)
	FindSubscriptionPlanByName(ctx context.Context, name string) (*domain.SubscriptionPlan, error)
}
