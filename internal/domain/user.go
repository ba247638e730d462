package domain

import (
	"context"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// ============ Repository interface ============

// UserRepository is the data-access surface for admin accounts.
type UserRepository interface {
	// Create creates an account from a username and bcrypt hash.
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)

	// GetByUsername looks up an account for login.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByID looks up an account by id.
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// List returns a page of accounts.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int, error)

	// Delete removes an account.
	Delete(ctx context.Context, userID string) error

	// UpdateLastLogin advances the last-login timestamp.
	UpdateLastLogin(ctx context.Context, userID string) error
}

// ============ Usecase interface ============

// UserUsecase is the admin account business surface.
type UserUsecase interface {
	// Register creates an admin account.
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Login verifies credentials and returns the account.
	Login(ctx context.Context, username, password string) (*entity.User, error)

	// GetUser returns an account by id.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// ListUsers returns a page of accounts plus the total count.
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID string) error
}
