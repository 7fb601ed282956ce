// Package session holds the per-user interaction state that sits between the
// client and the ledger: the selected customer, which form is open and which
// deletions are awaiting confirmation. The ledger services never read it.
package session

import (
	"errors"
	"slices"
)

var ErrMissingTarget = errors.New("action requires an id")

// State is one user's interaction state.
type State struct {
	SelectedCustomerID *int64  `json:"selected_customer_id,omitempty"`
	ShowAddCustomer    bool    `json:"show_add_customer"`
	ShowAddForm        bool    `json:"show_add_form"`
	EditTransactionID  *int64  `json:"edit_transaction_id,omitempty"`
	ConfirmDelete      []int64 `json:"confirm_delete,omitempty"`
}

// SelectCustomer switches the customer and closes any open transaction form.
func (s *State) SelectCustomer(id int64) {
	s.SelectedCustomerID = &id
	s.CancelForm()
	s.ConfirmDelete = nil
}

func (s *State) ClearCustomer() {
	s.SelectedCustomerID = nil
	s.CancelForm()
	s.ConfirmDelete = nil
}

// BeginAdd opens the transaction form in add mode.
func (s *State) BeginAdd() {
	s.ShowAddForm = true
	s.EditTransactionID = nil
}

// BeginEdit opens the transaction form in edit mode for id.
func (s *State) BeginEdit(id int64) {
	s.ShowAddForm = false
	s.EditTransactionID = &id
}

func (s *State) CancelForm() {
	s.ShowAddForm = false
	s.EditTransactionID = nil
}

// FormMode is "add", "edit" or "" when no form is open.
func (s *State) FormMode() string {
	switch {
	case s.EditTransactionID != nil:
		return "edit"
	case s.ShowAddForm:
		return "add"
	default:
		return ""
	}
}

func (s *State) RequestDelete(id int64) {
	if !slices.Contains(s.ConfirmDelete, id) {
		s.ConfirmDelete = append(s.ConfirmDelete, id)
	}
}

func (s *State) CancelDelete(id int64) {
	s.ConfirmDelete = slices.DeleteFunc(s.ConfirmDelete, func(v int64) bool { return v == id })
	if len(s.ConfirmDelete) == 0 {
		s.ConfirmDelete = nil
	}
}

func (s *State) PendingDelete(id int64) bool {
	return slices.Contains(s.ConfirmDelete, id)
}

// Action names accepted by Apply.
const (
	ActionSelectCustomer  = "select_customer"
	ActionClearCustomer   = "clear_customer"
	ActionShowAddCustomer = "show_add_customer"
	ActionHideAddCustomer = "hide_add_customer"
	ActionBeginAdd        = "begin_add"
	ActionBeginEdit       = "begin_edit"
	ActionCancelForm      = "cancel_form"
	ActionRequestDelete   = "request_delete"
	ActionCancelDelete    = "cancel_delete"
)

// Action is one client-initiated state transition.
type Action struct {
	Type          string `json:"type" validate:"required,oneof=select_customer clear_customer show_add_customer hide_add_customer begin_add begin_edit cancel_form request_delete cancel_delete"`
	CustomerID    *int64 `json:"customer_id,omitempty"`
	TransactionID *int64 `json:"transaction_id,omitempty"`
}

// Apply performs a. Ownership of the referenced ids is the caller's concern.
func (s *State) Apply(a Action) error {
	switch a.Type {
	case ActionSelectCustomer:
		if a.CustomerID == nil {
			return ErrMissingTarget
		}
		s.SelectCustomer(*a.CustomerID)
	case ActionClearCustomer:
		s.ClearCustomer()
	case ActionShowAddCustomer:
		s.ShowAddCustomer = true
	case ActionHideAddCustomer:
		s.ShowAddCustomer = false
	case ActionBeginAdd:
		s.BeginAdd()
	case ActionBeginEdit:
		if a.TransactionID == nil {
			return ErrMissingTarget
		}
		s.BeginEdit(*a.TransactionID)
	case ActionCancelForm:
		s.CancelForm()
	case ActionRequestDelete:
		if a.TransactionID == nil {
			return ErrMissingTarget
		}
		s.RequestDelete(*a.TransactionID)
	case ActionCancelDelete:
		if a.TransactionID == nil {
			return ErrMissingTarget
		}
		s.CancelDelete(*a.TransactionID)
	default:
		return errors.New("unknown action " + a.Type)
	}
	return nil
}
