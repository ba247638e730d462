package dto

import (
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// RegisterRequest creates an admin account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token plus the account.
type LoginResponse struct {
	Token  string       `json:"token"`
	Expire string       `json:"expire"`
	User   UserResponse `json:"user"`
}

// UserResponse is the public view of an admin account.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// UserListResponse is a page of accounts.
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// ToUserResponse converts a user entity, dropping the password hash.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserListResponse converts a page of user entities.
func ToUserListResponse(users []*entity.User, total, page, pageSize int) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, ToUserResponse(user))
	}
	return UserListResponse{
		Users:    out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
