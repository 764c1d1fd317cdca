package handlers

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/caowens/lifted-api/internal/auth"
	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const testJWTSecret = "lifted_test_jwt_secret_key_1234567890"

func newTestTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager(testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return tokens
}

// newTestRouter builds the full router over a sqlmock database, wired the
// same way the server wires it in production.
func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := log.New(io.Discard)
	tokens := newTestTokens(t)
	handler := New(db, quotes.NewService(quotes.NewStore(db), logger), tokens, logger)

	return Router(handler, tokens, logger), mock
}

func bearerToken(t *testing.T, userID int) string {
	t.Helper()
	token, err := newTestTokens(t).Generate(userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return "Bearer " + token
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectHTTP200(t *testing.T, status int) {
	t.Helper()
	mustStatus(t, status, http.StatusOK)
}

func quoteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "text", "author", "tags", "owner_id", "created_at", "updated_at"})
}
