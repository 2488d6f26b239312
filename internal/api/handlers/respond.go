package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy onto HTTP status codes:
// type, value and reference errors are the client's fault (400),
// not-found is 404, conflict is 409, everything else is 500.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeInvalidType, apperrors.ErrorTypeInvalidValue, apperrors.ErrorTypeReference:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, appErr.Message)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes the request body into dst. A value of the wrong
// JSON kind for a field (a boolean in a numeric field, a fractional
// rating) surfaces as a type error; malformed JSON as a value error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field != "" {
				return apperrors.NewTypeError(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
			}
			return apperrors.NewTypeError("request payload has a wrongly-typed field")
		}
		return apperrors.NewValueError("invalid request payload")
	}
	return nil
}
