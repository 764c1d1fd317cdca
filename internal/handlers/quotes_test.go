package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListQuotesEnvelope(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM quotes WHERE owner_id IS NULL`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	now := time.Now()
	mock.ExpectQuery(`FROM quotes WHERE owner_id IS NULL ORDER BY id ASC`).
		WithArgs(2, 0).
		WillReturnRows(quoteRows().
			AddRow(1, "first", "A", "{}", nil, now, now).
			AddRow(2, "second", "B", "{tag}", nil, now, now))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?page=1&limit=2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
			Quotes     []struct {
				Text string `json:"text"`
			} `json:"quotes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success envelope")
	}
	if out.Data.Total != 3 || out.Data.TotalPages != 2 {
		t.Fatalf("expected total=3 totalPages=2, got %d/%d", out.Data.Total, out.Data.TotalPages)
	}
	if len(out.Data.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(out.Data.Quotes))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRandomQuotePrivateScopeAnonymous(t *testing.T) {
	router, mock := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random?scope=private", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusUnauthorized)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRandomQuoteInvalidScope(t *testing.T) {
	router, mock := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random?scope=everything", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRandomQuoteEmptyMatchIsOK(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM quotes WHERE owner_id = \$1 ORDER BY random\(\) LIMIT 1`).
		WithArgs(12).
		WillReturnRows(quoteRows())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random?scope=private", nil)
	req.Header.Set("Authorization", bearerToken(t, 12))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["message"] != "No quote available" {
		t.Fatalf("expected no-quote message, got %#v", out["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetQuoteNotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM quotes WHERE id = \$1`).
		WithArgs(999).
		WillReturnRows(quoteRows())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetPrivateQuoteAsNonOwner(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(`FROM quotes WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(quoteRows().AddRow(10, "secret", "A", "{}", 1, now, now))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/10", nil)
	req.Header.Set("Authorization", bearerToken(t, 2))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusForbidden)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateQuoteRequiresAuth(t *testing.T) {
	router, mock := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"text": "Be yourself", "author": "Oscar Wilde"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusUnauthorized)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateQuoteEmptyTextIsValidationError(t *testing.T) {
	router, mock := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"text": "   ", "author": "Oscar Wilde"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, 5))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateQuoteSuccess(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO quotes (text, author, tags, owner_id)`)).
		WithArgs("Be yourself", "Oscar Wilde", sqlmock.AnyArg(), 5).
		WillReturnRows(quoteRows().AddRow(42, "Be yourself", "Oscar Wilde", "{wisdom}", 5, now, now))

	body, _ := json.Marshal(map[string]any{
		"text":   "Be yourself",
		"author": "Oscar Wilde",
		"tags":   []string{"wisdom"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, 5))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusCreated)

	var out struct {
		Data struct {
			ID      int  `json:"id"`
			OwnerID *int `json:"owner_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Data.ID != 42 {
		t.Fatalf("expected id=42, got %d", out.Data.ID)
	}
	if out.Data.OwnerID == nil || *out.Data.OwnerID != 5 {
		t.Fatalf("expected owner_id=5, got %#v", out.Data.OwnerID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestEditQuoteByNonOwner(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(`FROM quotes WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(quoteRows().AddRow(10, "Be yourself", "A", "{}", 1, now, now))

	body, _ := json.Marshal(map[string]any{"text": "hijacked"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/quotes/10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, 2))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusForbidden)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteQuoteByNonOwner(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(`FROM quotes WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(quoteRows().AddRow(10, "Be yourself", "A", "{}", 1, now, now))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/10", nil)
	req.Header.Set("Authorization", bearerToken(t, 2))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusForbidden)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteQuoteByOwner(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(`FROM quotes WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(quoteRows().AddRow(10, "bye", "A", "{}", 2, now, now))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM quotes WHERE id = $1 AND owner_id = $2`)).
		WithArgs(10, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/10", nil)
	req.Header.Set("Authorization", bearerToken(t, 2))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["message"] != "Quote deleted successfully" {
		t.Fatalf("expected delete acknowledgment, got %#v", out["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
