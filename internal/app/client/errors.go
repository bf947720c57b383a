package client

import (
	"errors"
	"fmt"
	"net/http"
)

type ResponseError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *ResponseError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindServer
	KindOther
	KindNetwork
)

func Classify(err error) Kind {
	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return KindNetwork
	}

	var responseErr *ResponseError
	if !errors.As(err, &responseErr) {
		return KindUnknown
	}

	switch responseErr.StatusCode {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindServer
	default:
		return KindOther
	}
}

// FieldErrors returns the per field validation messages of a 400 answer.
func FieldErrors(err error) map[string]string {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.Errors
	}

	return nil
}
