package device

import (
	"context"
	"errors"
	"fmt"
)

type Language string

const (
	LanguageEnglish Language = `en`
	LanguageFrench  Language = `fr`
	LanguageArabic  Language = `ar`

	DefaultLanguage = LanguageEnglish
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

func ParseLanguage(raw string) (Language, error) {
	switch language := Language(raw); language {
	case LanguageEnglish, LanguageFrench, LanguageArabic:
		return language, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
}

// Token returns an empty string when no token is stored.
func (s *Storage) Token(ctx context.Context) (string, error) {
	return s.getOptional(ctx, TokenKey)
}

func (s *Storage) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, TokenKey, token)
}

func (s *Storage) RefreshToken(ctx context.Context) (string, error) {
	return s.getOptional(ctx, RefreshTokenKey)
}

func (s *Storage) SetRefreshToken(ctx context.Context, token string) error {
	return s.Set(ctx, RefreshTokenKey, token)
}

func (s *Storage) ClearTokens(ctx context.Context) error {
	return s.MultiRemove(ctx, TokenKey, RefreshTokenKey)
}

// Language falls back to English when nothing valid is stored.
func (s *Storage) Language(ctx context.Context) (Language, error) {
	raw, err := s.getOptional(ctx, LanguageKey)
	if err != nil {
		return DefaultLanguage, err
	}

	language, err := ParseLanguage(raw)
	if err != nil {
		return DefaultLanguage, nil
	}

	return language, nil
}

func (s *Storage) SetLanguage(ctx context.Context, language Language) error {
	_, err := ParseLanguage(string(language))
	if err != nil {
		return err
	}

	return s.Set(ctx, LanguageKey, string(language))
}

func (s *Storage) getOptional(ctx context.Context, key string) (string, error) {
	value, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}

	return value, err
}
