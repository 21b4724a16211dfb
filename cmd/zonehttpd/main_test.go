package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonefile-tools/masterfile"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter(masterfile.New(), 1<<20)
}

func TestParseEndpoint(t *testing.T) {
	router := testRouter()

	body := `$TTL 3600
www.example.com. IN A 192.0.2.1
`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zone/example.com./parse", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var resp struct {
		Name        string `json:"name"`
		DefaultTTL  uint32 `json:"default_ttl"`
		RecordCount int    `json:"record_count"`
		Records     []struct {
			Name  string `json:"name"`
			TTL   uint32 `json:"ttl"`
			Class string `json:"class"`
			Type  string `json:"type"`
			Rdata string `json:"rdata"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "example.com.", resp.Name)
	assert.Equal(t, uint32(3600), resp.DefaultTTL)
	require.Equal(t, 1, resp.RecordCount)
	assert.Equal(t, "www.example.com.", resp.Records[0].Name)
	assert.Equal(t, "A", resp.Records[0].Type)
	assert.Equal(t, "192.0.2.1", resp.Records[0].Rdata)
}

func TestParseEndpointRejectsGarbage(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zone/example.com./parse", strings.NewReader("*** garbage ***\n"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed record")
}

func TestParseEndpointBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newRouter(masterfile.New(), 16)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zone/example.com./parse",
		strings.NewReader("www.example.com. IN A 192.0.2.1\n"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthz(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
