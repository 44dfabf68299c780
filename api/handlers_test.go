package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textretrieval/go-text-retrieval/internal/engine"
	testhelpers "github.com/textretrieval/go-text-retrieval/internal/testing"
	"github.com/textretrieval/go-text-retrieval/services"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng, err := engine.New(testhelpers.CreateDefaultTestConfig(t))
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, eng, eng.Metrics())
	return router
}

func postSearch(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchHandler_Boolean(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "data AND mining", "type": "boolean"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.QueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []int{1, 2}, result.DocIDs)
	assert.Equal(t, services.QueryTypeBoolean, result.Type)
	assert.NotEmpty(t, result.QueryID)
}

func TestSearchHandler_Proximity(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "data mining / 0", "type": "proximity"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.QueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []int{1, 2}, result.DocIDs)
}

func TestSearchHandler_MalformedProximity(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "data mining 3", "type": "proximity"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrorCodeInvalidQuery, apiErr.Code)
}

func TestSearchHandler_UnknownType(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "data", "type": "fuzzy"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrorCodeUnknownQueryType, apiErr.Code)
}

func TestSearchHandler_TypeIsCaseInsensitive(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "gold", "type": "Boolean"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchHandler_InvalidJSON(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrorCodeInvalidJSON, apiErr.Code)
}

func TestSearchHandler_MissingFields(t *testing.T) {
	router := setupTestRouter(t)

	w := postSearch(t, router, `{"query": "data"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestStatsHandler(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats services.IndexStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, len(testhelpers.DefaultTestDocuments), stats.Documents)
	assert.Greater(t, stats.Terms, 0)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "index_documents")
}

func TestParseQueryType(t *testing.T) {
	cases := []struct {
		raw  string
		want services.QueryType
		ok   bool
	}{
		{"boolean", services.QueryTypeBoolean, true},
		{"BOOLEAN", services.QueryTypeBoolean, true},
		{"proximity", services.QueryTypeProximity, true},
		{"Proximity", services.QueryTypeProximity, true},
		{"fuzzy", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseQueryType(tc.raw)
		assert.Equal(t, tc.ok, ok, "ParseQueryType(%q)", tc.raw)
		assert.Equal(t, tc.want, got, "ParseQueryType(%q)", tc.raw)
	}
}
