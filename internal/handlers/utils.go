package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blogforge/apiserver/internal/token"
)

type contextKey string

const contextClaimsKey contextKey = "claims"

func claimsFromContext(ctx context.Context) (token.Claims, error) {
	claims, ok := ctx.Value(contextClaimsKey).(token.Claims)
	if !ok || claims.Subject == "" {
		return token.Claims{}, errors.New("missing claims")
	}
	return claims, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
