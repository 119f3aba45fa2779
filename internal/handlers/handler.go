package handlers

import (
	"github.com/quickmed/accounts-api/internal/store"
)

// Handler holds the dependencies every endpoint needs.
type Handler struct {
	Store  *store.Store
	Secret string
}

func NewHandler(st *store.Store, secret string) *Handler {
	return &Handler{Store: st, Secret: secret}
}
