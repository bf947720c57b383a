package client

import "errors"

type Variant string

const (
	VariantDefault Variant = `default`
	VariantSuccess Variant = `success`
	VariantError   Variant = `error`
	VariantWarning Variant = `warning`
	VariantInfo    Variant = `info`
)

type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type Operation int

const (
	OpGeneric Operation = iota
	OpRegister
	OpLogin
	OpProfile
	OpLogout
	OpForgotPassword
)

const (
	defaultServerMessage  = "Something went wrong on the server."
	defaultUnknownMessage = "An unexpected error occurred."
	offlineMessage        = "Please check your internet connection and try again."
)

func SuccessToast(title, description string) Toast {
	return Toast{
		Title:       title,
		Description: description,
		Variant:     VariantSuccess,
	}
}

// ErrorToast turns a failed call into the message shown to the user, the
// wording depends on which operation failed.
func ErrorToast(op Operation, err error) Toast {
	message := responseMessage(err)

	switch op {
	case OpProfile:
		if Classify(err) == KindNetwork {
			return errorToast("Network Error", offlineMessage)
		}
		return errorToast("Authentication Error", orDefault(message, "Failed to fetch current user."))
	case OpLogout:
		if Classify(err) == KindNetwork {
			return errorToast("Network Error", offlineMessage)
		}
		return errorToast("Logout Error", orDefault(message, "Failed to log out."))
	}

	switch Classify(err) {
	case KindValidation:
		if op == OpRegister || op == OpLogin {
			return errorToast("Invalid Credentials", message)
		}
		return errorToast("Validation Error", message)
	case KindNotFound:
		if op == OpRegister || op == OpLogin {
			return errorToast("Error", orDefault(message, defaultUnknownMessage))
		}
		return errorToast("Not Found", message)
	case KindServer:
		return errorToast("Server Error", orDefault(message, defaultServerMessage))
	case KindNetwork:
		return errorToast("Network Error", err.Error())
	case KindOther:
		return errorToast("Error", orDefault(message, defaultUnknownMessage))
	default:
		return errorToast("Error", err.Error())
	}
}

func errorToast(title, description string) Toast {
	return Toast{
		Title:       title,
		Description: description,
		Variant:     VariantError,
	}
}

func responseMessage(err error) string {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.Message
	}

	return ""
}

func orDefault(value, fallback string) string {
	if len(value) == 0 {
		return fallback
	}

	return value
}
