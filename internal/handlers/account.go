package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/blogforge/apiserver/internal/services"
	"github.com/blogforge/apiserver/internal/store"
	"github.com/blogforge/apiserver/internal/token"
	"github.com/go-chi/chi/v5"
)

// AccountHandler provides registration, login, and profile endpoints.
type AccountHandler struct {
	accountService *services.AccountService
	tokens         *token.Service
}

// NewAccountHandler constructs an AccountHandler with the provided dependencies.
func NewAccountHandler(accountService *services.AccountService, tokens *token.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		tokens:         tokens,
	}
}

// AccountRouter registers account routes on the given router.
func AccountRouter(r chi.Router, accountService *services.AccountService, tokens *token.Service) {
	handler := NewAccountHandler(accountService, tokens)

	r.Post("/", handler.Register)
	r.Post("/login", handler.Login)
	r.With(RequireAuth(tokens)).Post("/upload-image", handler.UploadImage)
}

// RequireAuth enforces bearer-token authentication and injects the
// validated claims into the request context.
func RequireAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), contextClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on a role claim. It must run after
// RequireAuth; roles come from the validated token, not the store.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromContext(r.Context())
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			for _, granted := range claims.Roles {
				if strings.EqualFold(granted, role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, role+" access required")
		})
	}
}

// Register provisions a new account and returns the generated password.
// This response is the only time the plaintext is observable.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	creds, err := h.accountService.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusBadRequest, "email already registered")
			return
		}
		writeError(w, http.StatusBadRequest, "failed to create account")
		return
	}

	writeJSON(w, http.StatusOK, creds)
}

// Login verifies credentials and returns a session token.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	tokenString, err := h.accountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: tokenString})
}

// UploadImage stores a new profile image for the authenticated user.
func (h *AccountHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Base64Image) == "" {
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}

	if _, err := h.accountService.UpdateProfileImage(r.Context(), claims.Subject, req.Base64Image); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update image")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "image updated"})
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UploadImageRequest struct {
	Base64Image string `json:"imageBase64"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", errors.New("invalid authorization")
	}
	return tokenString, nil
}
