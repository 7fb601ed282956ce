package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerbook/backend/internal/middleware"
)

// API bundles the handlers and guards mounted under /api/v1.
type API struct {
	Auth      *AuthHandler
	Customers *CustomerHandler
	Ledger    *LedgerHandler
	Session   *SessionHandler

	Tokens      middleware.TokenParser
	Revocations middleware.RevocationChecker
	// LoginLimit guards POST /auth/login; nil disables it.
	LoginLimit func(http.Handler) http.Handler
}

// Mount registers every API route on r.
func (a *API) Mount(r chi.Router) {
	loginLimit := a.LoginLimit
	if loginLimit == nil {
		loginLimit = func(next http.Handler) http.Handler { return next }
	}

	// Public endpoints (no auth required)
	r.Post("/auth/register", a.Auth.Register)
	r.With(loginLimit).Post("/auth/login", a.Auth.Login)

	// Protected endpoints (auth required)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(a.Tokens, a.Revocations))

		r.Post("/auth/logout", a.Auth.Logout)
		r.Get("/auth/account", a.Auth.Account)

		r.Get("/customers", a.Customers.List)
		r.Post("/customers", a.Customers.Create)

		r.Route("/customers/{customerId}", func(r chi.Router) {
			r.Get("/transactions", a.Ledger.List)
			r.Post("/transactions", a.Ledger.Create)
			r.Get("/transactions/today", a.Ledger.Today)
			r.Get("/transactions/{txId}", a.Ledger.Get)
			r.Put("/transactions/{txId}", a.Ledger.Update)
			r.Delete("/transactions/{txId}", a.Ledger.Delete)
			r.Get("/months", a.Ledger.Months)
			r.Get("/summary", a.Ledger.Summary)
			r.Get("/export", a.Ledger.Export)
		})

		r.Get("/session", a.Session.Get)
		r.Post("/session/actions", a.Session.Apply)
	})
}
