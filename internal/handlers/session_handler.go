package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
)

type SessionHandler struct {
	sessions  SessionStore
	customers CustomerService
	ledger    LedgerService
	validator *services.ValidationHelper
	log       *slog.Logger
}

func NewSessionHandler(sessions SessionStore, customers CustomerService, ledger LedgerService) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		customers: customers,
		ledger:    ledger,
		validator: services.NewValidationHelper(),
		log:       logger.Component("SESSION"),
	}
}

type SessionResponse struct {
	State    *session.State `json:"state"`
	FormMode string         `json:"form_mode" example:"add"`
}

// Get returns the caller's interaction state
// @Summary Session state
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} services.ErrorResponse
// @Failure 503 {object} services.ErrorResponse
// @Router /session [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	state, err := h.sessions.Load(r.Context(), userID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	services.SendJSON(w, http.StatusOK, SessionResponse{State: state, FormMode: state.FormMode()})
}

// Apply performs one state transition
// @Summary Session action
// @Description Customer and transaction ids must belong to the caller.
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body session.Action true "Action"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 503 {object} services.ErrorResponse
// @Router /session/actions [post]
func (h *SessionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var action session.Action
	if err := services.DecodeJSON(w, r, &action); err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&action); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if action.CustomerID != nil {
		if _, err := h.customers.Get(r.Context(), userID, *action.CustomerID); err != nil {
			sendServiceError(w, h.log, err)
			return
		}
	}
	if action.TransactionID != nil {
		tx, err := h.ledger.Get(r.Context(), *action.TransactionID)
		if err != nil {
			sendServiceError(w, h.log, err)
			return
		}
		if _, err := h.customers.Get(r.Context(), userID, tx.CustomerID); err != nil {
			sendServiceError(w, h.log, err)
			return
		}
	}

	state, err := h.sessions.Load(r.Context(), userID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if err := state.Apply(action); err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if err := h.sessions.Save(r.Context(), userID, state); err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	services.SendJSON(w, http.StatusOK, SessionResponse{State: state, FormMode: state.FormMode()})
}
