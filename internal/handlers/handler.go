// Package handlers contains the gin request handlers. They stay thin:
// bind input, resolve the caller identity, delegate to the quote service
// or the users store, translate the outcome.
package handlers

import (
	"database/sql"

	"github.com/caowens/lifted-api/internal/auth"
	"github.com/caowens/lifted-api/internal/middleware"
	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies the request handlers need. Everything
// is injected at construction; handlers hold no ambient state.
type Handler struct {
	db     *sql.DB
	quotes *quotes.Service
	tokens *auth.TokenManager
	logger *log.Logger
}

// New builds the handler set.
func New(db *sql.DB, quoteService *quotes.Service, tokens *auth.TokenManager, logger *log.Logger) *Handler {
	return &Handler{
		db:     db,
		quotes: quoteService,
		tokens: tokens,
		logger: logger,
	}
}

// callerID returns the authenticated caller as an optional identity:
// nil for anonymous requests on optional-auth routes.
func callerID(c *gin.Context) *int {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return nil
	}
	return &userID
}
