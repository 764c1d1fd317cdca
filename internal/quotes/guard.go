package quotes

import "github.com/caowens/lifted-api/internal/models"

// AccessMode distinguishes read access from mutating access in the
// ownership guard.
type AccessMode int

const (
	// AccessRead covers get-by-id and any other non-mutating access.
	AccessRead AccessMode = iota
	// AccessWrite covers edit and delete.
	AccessWrite
)

// Authorize decides whether the caller may access the quote. A nil quote
// yields ErrNotFound before any ownership consideration, so callers cannot
// probe for existence through permission errors.
//
// Public quotes are readable by anyone, including anonymous callers, but
// never writable: they are seeded fixture data. Private quotes are
// accessible only to their owner, in either mode.
func Authorize(q *models.Quote, callerID *int, mode AccessMode) error {
	if q == nil {
		return ErrNotFound
	}

	if q.IsPublic() {
		if mode == AccessRead {
			return nil
		}
		return ErrForbidden
	}

	if callerID != nil && *callerID == *q.OwnerID {
		return nil
	}
	return ErrForbidden
}
