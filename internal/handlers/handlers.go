// Package handlers contains the gin request handlers. Each handler performs
// one logical operation against the store and writes the response itself;
// failures are handled locally, nothing bubbles to a central error handler.
package handlers

import (
	"spicestore-backend/internal/config"
	"spicestore-backend/internal/mailer"
	"spicestore-backend/internal/store"
)

// Handler bundles the injected service handles shared by all endpoints.
type Handler struct {
	store  store.Store
	mailer mailer.Sender
	cfg    *config.Config
}

func New(st store.Store, m mailer.Sender, cfg *config.Config) *Handler {
	return &Handler{store: st, mailer: m, cfg: cfg}
}
