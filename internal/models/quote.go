package models

import (
	"time"

	"github.com/lib/pq"
)

// Quote is a single stored quotation. A nil OwnerID marks the quote as
// public fixture data readable by anyone; a non-nil OwnerID makes it
// private to that user.
type Quote struct {
	ID        int            `json:"id" db:"id"`
	Text      string         `json:"text" db:"text"`
	Author    string         `json:"author" db:"author"`
	Tags      pq.StringArray `json:"tags" db:"tags"`
	OwnerID   *int           `json:"owner_id,omitempty" db:"owner_id"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// IsPublic reports whether the quote has no owner.
func (q *Quote) IsPublic() bool {
	return q.OwnerID == nil
}
