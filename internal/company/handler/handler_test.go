package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyservice "datablock/internal/company/service"
	companystore "datablock/internal/company/store"
	"datablock/internal/ingest"
	ingeststore "datablock/internal/ingest/store"
	"datablock/internal/platform/database"
	"datablock/internal/platform/metrics"
)

const seedDoc = `{
  "inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
  "organization": {
    "duns": "123456789",
    "primaryName": "Acme Corp",
    "countryISOAlpha2Code": "US",
    "industryCodes": [{"code": "7372", "typeDnBCode": 399}]
  }
}`

func newCompanyRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewForTest()

	loader := ingest.NewLoader(ingeststore.New(db), log, m)
	doc, err := ingest.DecodeDocument(strings.NewReader(seedDoc))
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background(), doc))

	svc := companyservice.New(companystore.New(db))
	h := New(svc, log, m)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestGetCompany(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies/123456789", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Company struct {
			DUNS        string  `json:"duns"`
			PrimaryName *string `json:"primaryName"`
		} `json:"company"`
		Profile struct {
			HasCompanyInfo      bool  `json:"hasCompanyInfo"`
			FinancialStatements int64 `json:"financialStatements"`
		} `json:"dataProfile"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "123456789", resp.Company.DUNS)
	require.NotNil(t, resp.Company.PrimaryName)
	assert.Equal(t, "Acme Corp", *resp.Company.PrimaryName)
	assert.True(t, resp.Profile.HasCompanyInfo)
	assert.Zero(t, resp.Profile.FinancialStatements)
}

func TestGetCompanyNotFound(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies/999999999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCompanyBadDUNS(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies/12345", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCompanies(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies?country=us", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Companies []struct {
			DUNS string `json:"duns"`
		} `json:"companies"`
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "123456789", resp.Companies[0].DUNS)
}

func TestListCompaniesNoMatch(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies?country=DE", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestListCompaniesBadCountry(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/companies?country=USA", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
