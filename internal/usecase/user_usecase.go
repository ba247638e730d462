package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// usernameRegex allows 3-50 characters of letters, digits and underscores.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

// userUsecase manages admin accounts.
type userUsecase struct {
	userRepo domain.UserRepository
	logger   *slog.Logger
}

// NewUserUsecase creates a new user usecase.
func NewUserUsecase(
	userRepo domain.UserRepository,
	logger *slog.Logger,
) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates an admin account.
func (u *userUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if err := validateRegisterRequest(username, password); err != nil {
		return nil, err
	}

	existingUser, err := u.userRepo.GetByUsername(ctx, username)
	if err == nil && existingUser != nil {
		return nil, domain.NewAlreadyExistsError("user", username)
	}
	if err != nil && !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.userRepo.Create(ctx, username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords return
// the same error so the login form leaks nothing.
func (u *userUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewInvalidInputError("invalid username or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := verifyPassword(user.PasswordHash, password); err != nil {
		return nil, domain.NewInvalidInputError("invalid username or password")
	}

	// Last-login bookkeeping runs off the request path.
	go func() {
		if err := u.userRepo.UpdateLastLogin(context.Background(), user.ID); err != nil {
			u.logger.Error("failed to update last login", "error", err, "user_id", user.ID)
		}
	}()

	u.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// GetUser returns an account by id.
func (u *userUsecase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// ListUsers returns a page of accounts plus the total count.
func (u *userUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	users, err := u.userRepo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

// DeleteUser removes an account.
func (u *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	u.logger.Info("user deleted", "user_id", userID)
	return nil
}

// ============ Helpers ============

func validateRegisterRequest(username, password string) error {
	if !usernameRegex.MatchString(username) {
		return domain.NewInvalidInputError("username must be 3-50 characters and contain only letters, numbers, and underscores")
	}

	if len(password) < 6 {
		return domain.NewInvalidInputError("password must be at least 6 characters")
	}
	if len(password) > 72 {
		return domain.NewInvalidInputError("password too long (max 72 characters)")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
