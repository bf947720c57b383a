package validator

import (
	"net/mail"
	"strings"

	"github.com/avGenie/go-food-bag/internal/app/model"
)

const minPasswordLen = 6

type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func ValidateLoginRequest(request model.LoginRequest) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(request.Phone)) == 0 {
		errs["phone"] = "phone is required"
	}
	if len(request.Password) == 0 {
		errs["password"] = "password is required"
	}

	return errs
}

func ValidateRegisterRequest(request model.RegisterRequest) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(request.FullName)) == 0 {
		errs["fullName"] = "full name is required"
	}
	if len(strings.TrimSpace(request.Phone)) == 0 {
		errs["phone"] = "phone is required"
	}
	if !validEmail(request.Email) {
		errs["email"] = "email is invalid"
	}
	if len(request.Password) < minPasswordLen {
		errs["password"] = "password must contain at least 6 characters"
	}
	if len(request.ConfirmPassword) != 0 && request.ConfirmPassword != request.Password {
		errs["confirmPassword"] = "passwords don't match"
	}

	return errs
}

func ValidateForgotPasswordRequest(request model.ForgotPasswordRequest) Errors {
	errs := Errors{}
	if !validEmail(request.Email) {
		errs["email"] = "email is invalid"
	}

	return errs
}

func validEmail(email string) bool {
	if len(email) == 0 {
		return false
	}

	address, err := mail.ParseAddress(email)

	return err == nil && address.Address == email
}
