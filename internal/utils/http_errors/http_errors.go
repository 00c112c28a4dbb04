package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifehub/internal/models"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

func WriteJSONError(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorBody{
			Code: code,
			Text: text,
		},
	})
}

// WriteDomainError maps a service error onto the HTTP status surface.
// Unknown errors collapse to 500 with a generic message so wrapped
// internals never leak to clients.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsNotFound(err):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
	case models.IsValidation(err):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
	case errors.Is(err, models.ErrUserExists):
		WriteJSONError(w, http.StatusConflict, models.ErrUserExists.Error())
	case errors.Is(err, models.ErrMethodNotAllowed):
		WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
	}
}
