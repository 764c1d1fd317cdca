package quotes

import (
	"strings"

	"github.com/caowens/lifted-api/internal/models"
	"github.com/charmbracelet/log"
)

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100

	maxTextLength   = 1000
	maxAuthorLength = 100
)

// ListResult is one page of quotes plus pagination bookkeeping.
type ListResult struct {
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
	Quotes     []models.Quote `json:"quotes"`
}

// Patch carries the fields of an edit request. Nil fields are left
// untouched on the target quote.
type Patch struct {
	Text   *string  `json:"text"`
	Author *string  `json:"author"`
	Tags   []string `json:"tags"`
}

// Service implements the quote operations by composing the visibility
// resolver, the ownership guard, and the store.
type Service struct {
	store  *Store
	logger *log.Logger
}

// NewService builds a quote service around the given store.
func NewService(store *Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns one page of quotes visible under the requested scope.
// A page past the end of the collection yields an empty page, not an
// error.
func (s *Service) List(scope string, page, limit int, callerID *int) (*ListResult, error) {
	filter, err := ResolveScope(scope, callerID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total, err := s.store.Count(filter)
	if err != nil {
		s.logger.Error("counting quotes", "scope", filter.Scope, "err", err)
		return nil, err
	}

	items, err := s.store.List(filter, limit, (page-1)*limit)
	if err != nil {
		s.logger.Error("listing quotes", "scope", filter.Scope, "err", err)
		return nil, err
	}

	return &ListResult{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		Quotes:     items,
	}, nil
}

// Random draws one uniformly random quote visible under the requested
// scope. An empty match is a valid outcome: the quote is nil and the
// error is nil.
func (s *Service) Random(scope string, callerID *int) (*models.Quote, error) {
	filter, err := ResolveScope(scope, callerID)
	if err != nil {
		return nil, err
	}

	q, err := s.store.Random(filter)
	if err != nil {
		s.logger.Error("picking random quote", "scope", filter.Scope, "err", err)
		return nil, err
	}
	return q, nil
}

// Get fetches a quote by id, enforcing read access. A private quote that
// the caller does not own surfaces as ErrForbidden, distinct from
// ErrNotFound.
func (s *Service) Get(id int, callerID *int) (*models.Quote, error) {
	q, err := s.store.GetByID(id)
	if err != nil {
		s.logger.Error("fetching quote", "id", id, "err", err)
		return nil, err
	}

	if err := Authorize(q, callerID, AccessRead); err != nil {
		return nil, err
	}
	return q, nil
}

// Create persists a new private quote owned by the caller.
func (s *Service) Create(text, author string, tags []string, callerID int) (*models.Quote, error) {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)

	if err := validateText(text); err != nil {
		return nil, err
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}

	q, err := s.store.Create(text, author, tags, callerID)
	if err != nil {
		s.logger.Error("creating quote", "owner", callerID, "err", err)
		return nil, err
	}
	return q, nil
}

// Edit applies the present patch fields to a quote the caller owns. The
// mutation itself is conditional on ownership, so the earlier guard check
// only classifies the failure; it is not the enforcement point.
func (s *Service) Edit(id int, patch Patch, callerID int) (*models.Quote, error) {
	existing, err := s.store.GetByID(id)
	if err != nil {
		s.logger.Error("fetching quote for edit", "id", id, "err", err)
		return nil, err
	}
	if err := Authorize(existing, &callerID, AccessWrite); err != nil {
		return nil, err
	}

	text := existing.Text
	if patch.Text != nil {
		text = strings.TrimSpace(*patch.Text)
	}
	author := existing.Author
	if patch.Author != nil {
		author = strings.TrimSpace(*patch.Author)
	}
	tags := []string(existing.Tags)
	if patch.Tags != nil {
		tags = patch.Tags
	}

	if err := validateText(text); err != nil {
		return nil, err
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(id, callerID, text, author, tags)
	if err != nil {
		s.logger.Error("updating quote", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		// The quote vanished between the pre-check and the write.
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a quote the caller owns.
func (s *Service) Delete(id int, callerID int) error {
	existing, err := s.store.GetByID(id)
	if err != nil {
		s.logger.Error("fetching quote for delete", "id", id, "err", err)
		return err
	}
	if err := Authorize(existing, &callerID, AccessWrite); err != nil {
		return err
	}

	deleted, err := s.store.Delete(id, callerID)
	if err != nil {
		s.logger.Error("deleting quote", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateText(text string) error {
	if text == "" {
		return newValidationError("text", "quote text is required")
	}
	if len(text) > maxTextLength {
		return newValidationError("text", "quote text is too long")
	}
	return nil
}

func validateAuthor(author string) error {
	if author == "" {
		return newValidationError("author", "author is required")
	}
	if len(author) > maxAuthorLength {
		return newValidationError("author", "author is too long")
	}
	return nil
}
