package database

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// mysqlDupEntry is the MySQL duplicate key error number.
const mysqlDupEntry = 1062

// userRepository is the MySQL implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts an admin account. A duplicate username maps to
// ErrAlreadyExists.
func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	now := time.Now()
	model := UserModel{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
			return nil, domain.NewAlreadyExistsError("user", username)
		}
		return nil, domain.NewInternalError("failed to create user", err)
	}

	return toEntityUser(&model), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", username)
		}
		return nil, domain.NewInternalError("failed to get user", err)
	}
	return toEntityUser(&model), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", userID)
		}
		return nil, domain.NewInternalError("failed to get user", err)
	}
	return toEntityUser(&model), nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var models []UserModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list users", err)
	}

	out := make([]*entity.User, 0, len(models))
	for i := range models {
		out = append(out, toEntityUser(&models[i]))
	}
	return out, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, domain.NewInternalError("failed to count users", err)
	}
	return int(count), nil
}

// Delete soft deletes the account.
func (r *userRepository) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&UserModel{})
	if result.Error != nil {
		return domain.NewInternalError("failed to delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("user", userID)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_login_at": now,
			"updated_at":    now,
		})
	if result.Error != nil {
		return domain.NewInternalError("failed to update last login", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("user", userID)
	}
	return nil
}
