package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserID string

func (u UserID) String() string {
	return string(u)
}

func (u UserID) Valid() bool {
	_, err := uuid.Parse(string(u))

	return err == nil
}

func NewUserID() UserID {
	return UserID(uuid.New().String())
}

type User struct {
	ID           UserID
	FullName     string
	Phone        string
	Email        string
	Password     string
	CreatedAt    time.Time
	LastModified time.Time
}

type PasswordReset struct {
	Token     string
	UserID    UserID
	ExpiresAt time.Time
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	UserID     UserID
	TokenID    string
	TokenExp   time.Time
	StatusCode int
}

func CreateUserIDCtx(userID UserID, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		StatusCode: code,
	}
}
