package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/entity"
	usecase "github.com/avGenie/go-food-bag/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"user_id"`
}

type Token struct {
	Value     string
	ID        string
	UserID    entity.UserID
	ExpiresAt time.Time
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *TokenIssuer) BuildJWTString(userID entity.UserID) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return tokenString, nil
}

func (i *TokenIssuer) ParseToken(tokenString string) (Token, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Token{}, usecase.ErrTokenExpired
		}
		return Token{}, fmt.Errorf("%w: %s", usecase.ErrTokenNotValid, err.Error())
	}

	if !token.Valid {
		return Token{}, usecase.ErrTokenNotValid
	}

	out := Token{
		Value:  tokenString,
		ID:     claims.ID,
		UserID: claims.UserID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

func (i *TokenIssuer) GetUserID(tokenString string) (entity.UserID, error) {
	token, err := i.ParseToken(tokenString)
	if err != nil {
		return entity.UserID(""), err
	}

	return token.UserID, nil
}
