package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
)

type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
}

type CustomerService interface {
	List(ctx context.Context, userID int64) ([]models.Customer, error)
	Add(ctx context.Context, userID int64, name string) (int64, error)
	Get(ctx context.Context, userID, customerID int64) (*models.Customer, error)
}

type LedgerService interface {
	List(ctx context.Context, customerID int64, month string) ([]models.Transaction, error)
	ListToday(ctx context.Context, customerID int64) ([]models.TodayEntry, error)
	Add(ctx context.Context, customerID int64, in services.TransactionInput) (int64, error)
	Update(ctx context.Context, id int64, in services.TransactionInput) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Transaction, error)
	AvailableMonths(ctx context.Context, customerID int64) ([]string, error)
	DefaultMonth(months []string) string
}

type SessionStore interface {
	Load(ctx context.Context, userID int64) (*session.State, error)
	Save(ctx context.Context, userID int64, state *session.State) error
	Clear(ctx context.Context, userID int64) error
}

// MessageResponse is returned by endpoints with nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// statusFor maps service errors to an HTTP status and client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrNegativeReceived),
		errors.Is(err, services.ErrInvalidKind),
		errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrEmptyName),
		errors.Is(err, session.ErrMissingTarget):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, session.ErrUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func sendServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	}
	services.SendErrorResponse(w, message, status, nil)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// updateSession applies fn to the stored session state. Ledger writes use it
// to close forms; a missing or failing session store never fails the request.
func updateSession(ctx context.Context, sessions SessionStore, log *slog.Logger, userID int64, fn func(*session.State)) {
	if sessions == nil {
		return
	}

	state, err := sessions.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, session.ErrUnavailable) {
			log.Warn("session load failed", "user_id", userID, "error", err)
		}
		return
	}

	fn(state)
	if err := sessions.Save(ctx, userID, state); err != nil {
		log.Warn("session save failed", "user_id", userID, "error", err)
	}
}
