package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profilekit/core"
	"profilekit/database"
	"profilekit/models"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(core.NewProfileService(database.NewMemoryStore(), nil), Options{})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const httpBody = `{"name":"H","enabled":true,"urls":["/a"],"request_headers":[{"name":"User-Agent","value":"x"}]}`

func TestCreateProfileReturnsLocation(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/profiles", `{"name":"P","description":"d","enabled":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/profiles/1", rec.Header().Get("Location"))

	var p models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, models.ProfileKindBase, p.Kind)
	assert.Nil(t, p.HttpSettings)

	rec = do(t, h, http.MethodGet, "/profiles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "P", gjson.GetBytes(rec.Body.Bytes(), "name").String())
}

func TestHttpProfileVisibleThroughBothViews(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/profiles/http", httpBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/profiles/http/1", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/profiles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.Equal(t, "Http", gjson.GetBytes(body, "kind").String())
	assert.Equal(t, "/a", gjson.GetBytes(body, "urls.0").String())

	rec = do(t, h, http.MethodGet, "/profiles/http/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-Agent", gjson.GetBytes(rec.Body.Bytes(), "request_headers.0.name").String())
}

func TestNotFoundMessages(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/profiles/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "NotFound - Profile with id: 999", resp.Message)
	assert.Equal(t, core.CodeNotFound, resp.Error)

	rec = do(t, h, http.MethodGet, "/profiles/http/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound - HttpProfile with id: 999", decodeError(t, rec).Message)
}

func TestHttpViewOfBaseProfileConflicts(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/profiles", `{"name":"B"}`).Code)

	rec := do(t, h, http.MethodGet, "/profiles/http/1", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, core.CodeNarrowingFailure, decodeError(t, rec).Error)

	rec = do(t, h, http.MethodPut, "/profiles/http", `{"id":1,"urls":["/b"]}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, core.CodeNarrowingFailure, decodeError(t, rec).Error)
}

func TestValidationFailuresCarryDetails(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/profiles/http", `{"name":"H","urls":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, core.CodeValidationFailure, resp.Error)
	assert.Contains(t, resp.Details, "urls")

	rec = do(t, h, http.MethodPost, "/profiles", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "name")
}

func TestCreateProfileLenientBody(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/profiles", `{"name":"x","kind":"base","cookies":null}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.Bytes()
	assert.Equal(t, "Base", gjson.GetBytes(body, "kind").String())
	assert.False(t, gjson.GetBytes(body, "cookies").Exists())

	rec = do(t, h, http.MethodPost, "/profiles", `{"id":9007199254740992,"name":"big"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "too_large", decodeError(t, rec).Details["id"])
}

func TestMalformedInput(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/profiles/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/profiles", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.CodeValidationFailure, decodeError(t, rec).Error)
}

func TestSuppliedIDConflict(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/profiles", `{"id":5,"name":"A"}`).Code)

	rec := do(t, h, http.MethodPost, "/profiles", `{"id":5,"name":"B"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, core.CodeIDConflict, decodeError(t, rec).Error)
}

func TestEditHttpKeepsBaseFields(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/profiles/http", httpBody).Code)

	rec := do(t, h, http.MethodPut, "/profiles/http", `{"id":1,"name":"ignored","urls":["/b"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.Equal(t, "H", gjson.GetBytes(body, "name").String())
	assert.Equal(t, `["/b"]`, gjson.GetBytes(body, "urls").Raw)
	assert.Equal(t, int64(0), gjson.GetBytes(body, "request_headers.#").Int())

	rec = do(t, h, http.MethodPut, "/profiles", `{"id":1,"name":"H2","enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.Bytes()
	assert.Equal(t, "H2", gjson.GetBytes(body, "name").String())
	assert.Equal(t, `["/b"]`, gjson.GetBytes(body, "urls").Raw)
}

func TestDeleteThroughEitherView(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/profiles", `{"name":"B"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/profiles/http", httpBody).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/profiles/http/1", "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/profiles/2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/profiles/2", "").Code)

	rec := do(t, h, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListHttpSkipsBaseProfiles(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/profiles", `{"name":"B"}`)
	do(t, h, http.MethodPost, "/profiles/http", httpBody)

	rec := do(t, h, http.MethodGet, "/profiles/http", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.Equal(t, int64(1), gjson.GetBytes(body, "#").Int())
	assert.Equal(t, int64(2), gjson.GetBytes(body, "0.id").Int())
}

type failingStore struct {
	*database.MemoryStore
}

func (failingStore) ListProfiles() ([]models.Profile, error) {
	return nil, errors.New("database is locked")
}

func TestInfrastructureErrorIsHidden(t *testing.T) {
	h := NewRouter(core.NewProfileService(failingStore{database.NewMemoryStore()}, nil), Options{})

	rec := do(t, h, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Internal server error", resp.Message)
	assert.NotContains(t, rec.Body.String(), "locked")
}

func TestBrotliResponseEncoding(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/profiles/http", httpBody)

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	plain, err := io.ReadAll(brotli.NewReader(rec.Body))
	require.NoError(t, err)
	assert.Equal(t, "H", gjson.GetBytes(plain, "0.name").String())
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-id-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id-1", rec.Header().Get(requestIDHeader))
}

func TestSystemAndDocsRoutes(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, gjson.GetBytes(rec.Body.Bytes(), "version").String())

	rec = do(t, h, http.MethodGet, "/swagger.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.Equal(t, "2.0", gjson.GetBytes(body, "swagger").String())
	assert.Equal(t, "/api", gjson.GetBytes(body, "basePath").String())
	assert.True(t, gjson.GetBytes(body, "paths./profiles/http.get").Exists())
	assert.True(t, gjson.GetBytes(body, `definitions.models\.Profile.properties.urls`).Exists())

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/nope", "").Code)
}
