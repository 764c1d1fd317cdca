package handlers

import (
	"net/http"
	"strconv"

	"github.com/caowens/lifted-api/internal/quotes"
	"github.com/gin-gonic/gin"
)

// ListQuotes handles GET /quotes with page, limit and scope parameters.
func (h *Handler) ListQuotes(c *gin.Context) {
	page, limit := parsePageParams(
		c.Query("page"),
		c.Query("limit"),
		quotes.DefaultPage,
		quotes.DefaultLimit,
	)

	result, err := h.quotes.List(c.Query("scope"), page, limit, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, result)
}

// RandomQuote handles GET /quotes/random. An empty match under the
// requested scope is a valid outcome, not an error.
func (h *Handler) RandomQuote(c *gin.Context) {
	quote, err := h.quotes.Random(c.Query("scope"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if quote == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    nil,
			"message": "No quote available",
		})
		return
	}

	respondData(c, http.StatusOK, quote)
}

// GetQuote handles GET /quotes/:id. A private quote the caller does not
// own yields 403, distinct from 404 for a missing one.
func (h *Handler) GetQuote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	quote, err := h.quotes.Get(id, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, quote)
}

// CreateQuote handles POST /quotes. The route carries mandatory auth, so
// a caller is always present here.
func (h *Handler) CreateQuote(c *gin.Context) {
	caller := callerID(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Text   string   `json:"text"`
		Author string   `json:"author"`
		Tags   []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quote, err := h.quotes.Create(req.Text, req.Author, req.Tags, *caller)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, quote)
}

// EditQuote handles PUT /quotes/:id. Only fields present in the body are
// applied; a repeated identical patch yields the same record.
func (h *Handler) EditQuote(c *gin.Context) {
	caller := callerID(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	var patch quotes.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quote, err := h.quotes.Edit(id, patch, *caller)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, quote)
}

// DeleteQuote handles DELETE /quotes/:id. The response is an
// acknowledgment, not the deleted record.
func (h *Handler) DeleteQuote(c *gin.Context) {
	caller := callerID(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	if err := h.quotes.Delete(id, *caller); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Quote deleted successfully")
}
