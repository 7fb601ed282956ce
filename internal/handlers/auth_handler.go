package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
	"github.com/ledgerbook/backend/internal/token"
)

type TokenIssuer interface {
	Generate(userID int64) (string, *token.Claims, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthHandler struct {
	accounts    AccountService
	tokens      TokenIssuer
	revocations TokenRevoker
	sessions    SessionStore
	validator   *services.ValidationHelper
	log         *slog.Logger
}

func NewAuthHandler(accounts AccountService, tokens TokenIssuer, revocations TokenRevoker, sessions SessionStore) *AuthHandler {
	return &AuthHandler{
		accounts:    accounts,
		tokens:      tokens,
		revocations: revocations,
		sessions:    sessions,
		validator:   services.NewValidationHelper(),
		log:         logger.Component("AUTH"),
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Register creates a user account
// @Summary Register
// @Description Create a user account. Passwords need at least 6 characters.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := services.DecodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	services.SendJSON(w, http.StatusCreated, user)
}

// Login exchanges credentials for a bearer token
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 401 {object} services.ErrorResponse
// @Failure 429 {object} services.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := services.DecodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	signed, claims, err := h.tokens.Generate(user.ID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	services.SendJSON(w, http.StatusOK, LoginResponse{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	})
}

// Logout revokes the current token and clears the session
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} services.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := h.revocations.Revoke(r.Context(), claims.ID, ttl); err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	if err := h.sessions.Clear(r.Context(), claims.UserID); err != nil && !errors.Is(err, session.ErrUnavailable) {
		h.log.Warn("session clear failed", "user_id", claims.UserID, "error", err)
	}

	h.log.Info("user logged out", "user_id", claims.UserID)
	services.SendJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Account returns the authenticated user
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} services.ErrorResponse
// @Router /auth/account [get]
func (h *AuthHandler) Account(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	user, err := h.accounts.Get(r.Context(), userID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	services.SendJSON(w, http.StatusOK, user)
}
