package quotes

import (
	"database/sql"
	"fmt"

	"github.com/caowens/lifted-api/internal/models"
	"github.com/lib/pq"
)

const quoteColumns = `id, text, author, tags, owner_id, created_at, updated_at`

// Store persists quotes in Postgres. All ownership-conditional mutations
// are single statements keyed by both id and owner_id, so the ownership
// check and the write cannot race against each other.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// whereClause renders the filter as a SQL predicate with placeholders
// starting at $1. Listing and random pick share this, which keeps their
// visibility semantics identical.
func (f Filter) whereClause() (string, []any) {
	switch f.Scope {
	case ScopePrivate:
		return "owner_id = $1", []any{f.CallerID}
	case ScopeAll:
		return "(owner_id IS NULL OR owner_id = $1)", []any{f.CallerID}
	default:
		return "owner_id IS NULL", nil
	}
}

func scanQuote(row interface{ Scan(...any) error }) (*models.Quote, error) {
	var q models.Quote
	var ownerID sql.NullInt64

	err := row.Scan(&q.ID, &q.Text, &q.Author, &q.Tags, &ownerID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if ownerID.Valid {
		id := int(ownerID.Int64)
		q.OwnerID = &id
	}
	if q.Tags == nil {
		q.Tags = pq.StringArray{}
	}
	return &q, nil
}

// List returns one page of quotes matching the filter in insertion order.
func (s *Store) List(f Filter, limit, offset int) ([]models.Quote, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(
		`SELECT %s FROM quotes WHERE %s ORDER BY id ASC LIMIT $%d OFFSET $%d`,
		quoteColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *q)
	}
	return result, rows.Err()
}

// Count returns the number of quotes matching the filter.
func (s *Store) Count(f Filter) (int, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(`SELECT COUNT(*) FROM quotes WHERE %s`, where)

	var total int
	if err := s.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Random draws one uniformly random quote matching the filter. A nil quote
// with a nil error means nothing matched.
func (s *Store) Random(f Filter) (*models.Quote, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(
		`SELECT %s FROM quotes WHERE %s ORDER BY random() LIMIT 1`,
		quoteColumns, where,
	)

	q, err := scanQuote(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetByID fetches a quote regardless of visibility. A nil quote with a nil
// error means it does not exist.
func (s *Store) GetByID(id int) (*models.Quote, error) {
	query := fmt.Sprintf(`SELECT %s FROM quotes WHERE id = $1`, quoteColumns)

	q, err := scanQuote(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new private quote owned by ownerID.
func (s *Store) Create(text, author string, tags []string, ownerID int) (*models.Quote, error) {
	query := fmt.Sprintf(
		`INSERT INTO quotes (text, author, tags, owner_id) VALUES ($1, $2, $3, $4) RETURNING %s`,
		quoteColumns,
	)
	return scanQuote(s.db.QueryRow(query, text, author, pq.StringArray(tags), ownerID))
}

// Update rewrites a quote's content, conditional on ownership. A nil quote
// with a nil error means no row matched both the id and the owner, i.e.
// the quote disappeared or changed hands between the pre-check and the
// write.
func (s *Store) Update(id, ownerID int, text, author string, tags []string) (*models.Quote, error) {
	query := fmt.Sprintf(
		`UPDATE quotes
		 SET text = $1, author = $2, tags = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4 AND owner_id = $5
		 RETURNING %s`,
		quoteColumns,
	)

	q, err := scanQuote(s.db.QueryRow(query, text, author, pq.StringArray(tags), id, ownerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes a quote, conditional on ownership. It reports whether a
// row was actually deleted.
func (s *Store) Delete(id, ownerID int) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM quotes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// InsertPublicIfAbsent inserts a public quote unless a public quote with
// the same text already exists. It reports whether a row was inserted,
// which makes bulk seeding idempotent per unique text.
func (s *Store) InsertPublicIfAbsent(text, author string, tags []string) (bool, error) {
	result, err := s.db.Exec(
		`INSERT INTO quotes (text, author, tags, owner_id)
		 SELECT $1, $2, $3, NULL
		 WHERE NOT EXISTS (
		     SELECT 1 FROM quotes WHERE text = $1 AND owner_id IS NULL
		 )`,
		text, author, pq.StringArray(tags),
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
