package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/textretrieval/go-text-retrieval/internal/errors"
	"github.com/textretrieval/go-text-retrieval/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Type  string `json:"type" binding:"required"` // "boolean" or "proximity"
}

// SearchHandler evaluates one query. Malformed proximity queries and
// unknown query types come back as 400s; the evaluators themselves never
// fail on query content.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	queryType, ok := ParseQueryType(req.Type)
	if !ok {
		SendError(c, http.StatusBadRequest, ErrorCodeUnknownQueryType,
			"Unknown query type '"+req.Type+"' (expected 'boolean' or 'proximity')")
		return
	}

	result, err := api.engine.Search(req.Query, queryType)
	if err != nil {
		if errors.Is(err, internalErrors.ErrMalformedQuery) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseQueryType maps the request's type selector onto a services
// QueryType, case-insensitively.
func ParseQueryType(raw string) (services.QueryType, bool) {
	switch services.QueryType(strings.ToLower(raw)) {
	case services.QueryTypeBoolean:
		return services.QueryTypeBoolean, true
	case services.QueryTypeProximity:
		return services.QueryTypeProximity, true
	default:
		return "", false
	}
}
