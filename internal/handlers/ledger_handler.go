package handlers

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
)

// LedgerHandler serves the per-customer transaction routes. Every route first
// resolves {customerId} against the caller so foreign ids read as 404.
type LedgerHandler struct {
	customers CustomerService
	ledger    LedgerService
	sessions  SessionStore
	validator *services.ValidationHelper
	now       func() time.Time
	log       *slog.Logger
}

func NewLedgerHandler(customers CustomerService, ledger LedgerService, sessions SessionStore) *LedgerHandler {
	return &LedgerHandler{
		customers: customers,
		ledger:    ledger,
		sessions:  sessions,
		validator: services.NewValidationHelper(),
		now:       time.Now,
		log:       logger.Component("LEDGER"),
	}
}

// TransactionRequest is the body of add and edit. Amounts may be JSON
// numbers or strings.
type TransactionRequest struct {
	Type           string          `json:"type" validate:"required,oneof=Received Given" example:"Received"`
	TotalAmount    decimal.Decimal `json:"total_amount" swaggertype:"string" example:"500.00"`
	AmountReceived decimal.Decimal `json:"amount_received" swaggertype:"string" example:"450.00"`
	Note           string          `json:"note" validate:"max=1000"`
}

func (req TransactionRequest) input() services.TransactionInput {
	return services.TransactionInput{
		Kind:           models.Kind(req.Type),
		TotalAmount:    req.TotalAmount,
		AmountReceived: req.AmountReceived,
		Note:           req.Note,
	}
}

type TransactionListResponse struct {
	Transactions  []models.Transaction `json:"transactions"`
	Count         int                  `json:"count"`
	Summary       models.Summary       `json:"summary"`
	Months        []string             `json:"months"`
	SelectedMonth string               `json:"selectedMonth" example:"2024-03"`
}

type TodayResponse struct {
	Transactions []models.TodayEntry `json:"transactions"`
	Count        int                 `json:"count"`
}

type MonthsResponse struct {
	Months []string `json:"months"`
}

type CreatedResponse struct {
	ID int64 `json:"id" example:"42"`
}

// customer resolves {customerId} for the authenticated user and writes the
// error response itself when it cannot.
func (h *LedgerHandler) customer(w http.ResponseWriter, r *http.Request) (int64, *models.Customer, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return 0, nil, false
	}

	customerID, ok := pathID(r, "customerId")
	if !ok {
		services.SendErrorResponse(w, "Invalid customer id", http.StatusBadRequest, nil)
		return 0, nil, false
	}

	customer, err := h.customers.Get(r.Context(), userID, customerID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return 0, nil, false
	}
	return userID, customer, true
}

// transaction loads {txId} and checks that it belongs to customerID.
func (h *LedgerHandler) transaction(w http.ResponseWriter, r *http.Request, customerID int64) (*models.Transaction, bool) {
	txID, ok := pathID(r, "txId")
	if !ok {
		services.SendErrorResponse(w, "Invalid transaction id", http.StatusBadRequest, nil)
		return nil, false
	}

	tx, err := h.ledger.Get(r.Context(), txID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return nil, false
	}
	if tx.CustomerID != customerID {
		sendServiceError(w, h.log, services.ErrNotFound)
		return nil, false
	}
	return tx, true
}

func (h *LedgerHandler) decodeTransaction(w http.ResponseWriter, r *http.Request) (services.TransactionInput, bool) {
	var req TransactionRequest
	if err := services.DecodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return services.TransactionInput{}, false
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return services.TransactionInput{}, false
	}
	return req.input(), true
}

func (h *LedgerHandler) filtered(w http.ResponseWriter, r *http.Request, customerID int64) ([]models.Transaction, bool) {
	transactions, err := h.ledger.List(r.Context(), customerID, r.URL.Query().Get("month"))
	if err != nil {
		sendServiceError(w, h.log, err)
		return nil, false
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, true
}

// List returns the customer's ledger for one month or all time
// @Summary List transactions
// @Description Newest first. Without a month parameter the current month is selected when it has entries, otherwise All.
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param month query string false "YYYY-MM, All or All Months"
// @Success 200 {object} TransactionListResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions [get]
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	months, err := h.ledger.AvailableMonths(r.Context(), customer.ID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if months == nil {
		months = []string{}
	}

	month := h.ledger.DefaultMonth(months)
	if values, present := r.URL.Query()["month"]; present && len(values) > 0 {
		month = values[0]
	}

	transactions, err := h.ledger.List(r.Context(), customer.ID, month)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	if prefix, _ := services.NormalizeMonth(month); prefix == "" {
		month = services.AllMonths
	}

	services.SendJSON(w, http.StatusOK, TransactionListResponse{
		Transactions:  transactions,
		Count:         len(transactions),
		Summary:       services.Summarize(transactions),
		Months:        months,
		SelectedMonth: month,
	})
}

// Today lists the entries recorded today
// @Summary Today's transactions
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Success 200 {object} TodayResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions/today [get]
func (h *LedgerHandler) Today(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	entries, err := h.ledger.ListToday(r.Context(), customer.ID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if entries == nil {
		entries = []models.TodayEntry{}
	}

	services.SendJSON(w, http.StatusOK, TodayResponse{Transactions: entries, Count: len(entries)})
}

// Months lists the months that have entries
// @Summary Available months
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Success 200 {object} MonthsResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/months [get]
func (h *LedgerHandler) Months(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	months, err := h.ledger.AvailableMonths(r.Context(), customer.ID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if months == nil {
		months = []string{}
	}

	services.SendJSON(w, http.StatusOK, MonthsResponse{Months: months})
}

// Summary totals the ledger for one month or all time
// @Summary Ledger summary
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param month query string false "YYYY-MM, All or All Months"
// @Success 200 {object} models.Summary
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/summary [get]
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	transactions, ok := h.filtered(w, r, customer.ID)
	if !ok {
		return
	}

	services.SendJSON(w, http.StatusOK, services.Summarize(transactions))
}

// Export downloads the ledger as CSV
// @Summary Export CSV
// @Tags Ledger
// @Produce text/csv
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param month query string false "YYYY-MM, All or All Months"
// @Success 200 {file} file
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/export [get]
func (h *LedgerHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	transactions, ok := h.filtered(w, r, customer.ID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := services.ExportCSV(&buf, transactions); err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	filename := services.ExportFilename(customer.Name, h.now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Create records a transaction
// @Summary Add transaction
// @Description Stamped with the server time. amount_left is total_amount minus amount_received.
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param request body TransactionRequest true "Transaction"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions [post]
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	in, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}

	id, err := h.ledger.Add(r.Context(), customer.ID, in)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	updateSession(r.Context(), h.sessions, h.log, userID, (*session.State).CancelForm)
	services.SendJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// Get returns one transaction, e.g. to prefill the edit form
// @Summary Get transaction
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param txId path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions/{txId} [get]
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	tx, ok := h.transaction(w, r, customer.ID)
	if !ok {
		return
	}

	services.SendJSON(w, http.StatusOK, tx)
}

// Update overwrites kind, amounts and note
// @Summary Edit transaction
// @Description The timestamp is kept. amount_left is recomputed.
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param txId path int true "Transaction ID"
// @Param request body TransactionRequest true "Transaction"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions/{txId} [put]
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	tx, ok := h.transaction(w, r, customer.ID)
	if !ok {
		return
	}

	in, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}

	if err := h.ledger.Update(r.Context(), tx.ID, in); err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	updateSession(r.Context(), h.sessions, h.log, userID, (*session.State).CancelForm)
	services.SendJSON(w, http.StatusOK, MessageResponse{Message: "Transaction updated"})
}

// Delete removes a transaction; this is the confirmation step of a pending delete
// @Summary Delete transaction
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param customerId path int true "Customer ID"
// @Param txId path int true "Transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /customers/{customerId}/transactions/{txId} [delete]
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, customer, ok := h.customer(w, r)
	if !ok {
		return
	}

	tx, ok := h.transaction(w, r, customer.ID)
	if !ok {
		return
	}

	if err := h.ledger.Delete(r.Context(), tx.ID); err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	updateSession(r.Context(), h.sessions, h.log, userID, func(s *session.State) {
		s.CancelDelete(tx.ID)
		if s.EditTransactionID != nil && *s.EditTransactionID == tx.ID {
			s.CancelForm()
		}
	})
	services.SendJSON(w, http.StatusOK, MessageResponse{Message: "Transaction deleted"})
}
