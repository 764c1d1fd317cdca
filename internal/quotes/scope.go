package quotes

import "strings"

// Scope selects which visibility class of quotes an operation considers.
type Scope string

const (
	// ScopePublic matches ownerless quotes only. Never needs a caller.
	ScopePublic Scope = "public"
	// ScopePrivate matches quotes owned by the caller.
	ScopePrivate Scope = "private"
	// ScopeAll matches public quotes plus the caller's own.
	ScopeAll Scope = "all"
)

// Filter is a resolved visibility predicate. The zero CallerID is only
// meaningful for ScopePublic, where no identity is involved.
type Filter struct {
	Scope    Scope
	CallerID int
}

// ResolveScope maps a raw scope parameter and an optional caller identity
// to a store filter. It is a pure function: the same Filter drives both
// listing and random pick so the two can never disagree on visibility.
//
// An omitted scope defaults to public. Private and all require a caller
// and fail with ErrAuthRequired without one. Unknown literals fail with
// ErrInvalidScope.
func ResolveScope(raw string, callerID *int) (Filter, error) {
	scope := Scope(strings.TrimSpace(raw))
	if scope == "" {
		scope = ScopePublic
	}

	switch scope {
	case ScopePublic:
		return Filter{Scope: ScopePublic}, nil
	case ScopePrivate, ScopeAll:
		if callerID == nil {
			return Filter{}, ErrAuthRequired
		}
		return Filter{Scope: scope, CallerID: *callerID}, nil
	default:
		return Filter{}, ErrInvalidScope
	}
}
