package handler

import (
	"errors"
	"net/http"

	"github.com/gastor/gastor-server/internal/model"
)

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		respondWithError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrUserNotFound):
		respondWithError(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, model.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Expense not found")
	case errors.Is(err, model.ErrNoChartData):
		respondWithError(w, http.StatusNotFound, "No data found for the selected period")
	case errors.Is(err, model.ErrChartRender):
		respondWithError(w, http.StatusInternalServerError, "Failed to generate chart")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
