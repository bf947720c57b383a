package httputils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/model"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
	UpdateTimeout  = 5 * time.Second
)

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(out)
	if err != nil {
		zap.L().Error("error while writing response body", zap.Error(err))
	}
}

func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, model.MessageResponse{Message: message})
}

func WriteValidationErrors(w http.ResponseWriter, message string, errs map[string]string) {
	WriteJSON(w, http.StatusBadRequest, model.MessageResponse{
		Message: message,
		Errors:  errs,
	})
}
