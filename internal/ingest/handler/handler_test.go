package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datablock/internal/ingest"
	ingeststore "datablock/internal/ingest/store"
	"datablock/internal/platform/database"
	"datablock/internal/platform/metrics"
)

func newIngestRouter(t *testing.T) (http.Handler, *sqlx.DB) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewForTest()
	loader := ingest.NewLoader(ingeststore.New(db), log, m)

	h := New(loader, log, m)
	r := chi.NewRouter()
	h.Register(r)
	return r, db
}

func postIngest(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIngestSingleDocument(t *testing.T) {
	router, db := newIngestRouter(t)

	rec := postIngest(t, router, `{
		"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
		"organization": {"duns": "123456789", "primaryName": "Acme Corp"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"documents":1`)

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM companies"))
	assert.Equal(t, 1, n)
}

func TestIngestBatch(t *testing.T) {
	router, db := newIngestRouter(t)

	rec := postIngest(t, router, `[
		{"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
		 "organization": {"duns": "111111111", "primaryName": "First"}},
		{"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
		 "organization": {"duns": "222222222", "primaryName": "Second"}}
	]`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"documents":2`)

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM companies"))
	assert.Equal(t, 2, n)
}

func TestIngestRejectsMissingDUNS(t *testing.T) {
	router, db := newIngestRouter(t)

	rec := postIngest(t, router, `{
		"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
		"organization": {"primaryName": "No Identifier Inc"}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation")

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM companies"))
	assert.Zero(t, n)
}

func TestIngestRejectsMalformedBody(t *testing.T) {
	router, _ := newIngestRouter(t)

	rec := postIngest(t, router, `{"organization":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestRejectsEmptyBatch(t *testing.T) {
	router, _ := newIngestRouter(t)

	rec := postIngest(t, router, `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
