package handler

import "net/http"

// Health reports liveness; no auth.
type Health struct{}

// NewHealth creates a new Health handler.
func NewHealth() *Health {
	return &Health{}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Gastor API",
	})
}
