package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
)

type CustomerHandler struct {
	customers CustomerService
	sessions  SessionStore
	validator *services.ValidationHelper
	log       *slog.Logger
}

func NewCustomerHandler(customers CustomerService, sessions SessionStore) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		sessions:  sessions,
		validator: services.NewValidationHelper(),
		log:       logger.Component("CUSTOMERS"),
	}
}

type CustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CustomerListResponse struct {
	Customers []models.Customer `json:"customers"`
	Count     int               `json:"count"`
}

// List returns the caller's customers
// @Summary List customers
// @Description Customers owned by the authenticated user, sorted by name
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CustomerListResponse
// @Failure 401 {object} services.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	customers, err := h.customers.List(r.Context(), userID)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	services.SendJSON(w, http.StatusOK, CustomerListResponse{Customers: customers, Count: len(customers)})
}

// Create adds a customer and selects it
// @Summary Add customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} services.ErrorResponse
// @Failure 401 {object} services.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var req CustomerRequest
	if err := services.DecodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	id, err := h.customers.Add(r.Context(), userID, req.Name)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}

	updateSession(r.Context(), h.sessions, h.log, userID, func(s *session.State) {
		s.ShowAddCustomer = false
		s.SelectCustomer(id)
	})

	h.log.Info("customer added", "customer_id", id, "user_id", userID)
	customer, err := h.customers.Get(r.Context(), userID, id)
	if err != nil {
		sendServiceError(w, h.log, err)
		return
	}
	services.SendJSON(w, http.StatusCreated, customer)
}
