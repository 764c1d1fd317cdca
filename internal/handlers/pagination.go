package handlers

import (
	"strconv"
	"strings"
)

// parsePageParams parses page-based pagination query parameters. Absent or
// malformed values fall back to the service defaults; the service itself
// enforces the limit ceiling.
func parsePageParams(rawPage, rawLimit string, defaultPage, defaultLimit int) (int, int) {
	page := defaultPage
	if parsed, err := strconv.Atoi(strings.TrimSpace(rawPage)); err == nil && parsed > 0 {
		page = parsed
	}

	limit := defaultLimit
	if parsed, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && parsed > 0 {
		limit = parsed
	}

	return page, limit
}
