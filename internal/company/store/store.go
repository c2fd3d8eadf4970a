// Package store provides read access to companies and their loaded data
// domains. Writes happen only through the ingest pipeline.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"datablock/internal/ingest/models"
	"datablock/internal/platform/database"
	domainerrors "datablock/pkg/domain-errors"
)

type Store struct {
	db     *sqlx.DB
	flavor sqlbuilder.Flavor
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, flavor: database.Flavor(db)}
}

// FindByDUNS returns the company registered under the given DUNS.
func (s *Store) FindByDUNS(ctx context.Context, duns string) (*models.Company, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("*").From(models.TableCompanies).Where(sb.Equal("duns", duns))
	query, args := sb.Build()

	var c models.Company
	if err := s.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerrors.Newf(domainerrors.CodeNotFound, "no company with duns %s", duns)
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to query company")
	}
	return &c, nil
}

// ListFilter narrows List results.
type ListFilter struct {
	Country string
	Limit   int
	Offset  int
}

// List returns companies ordered by primary name, optionally filtered by
// ISO alpha-2 country code.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]models.Company, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("*").From(models.TableCompanies)
	if filter.Country != "" {
		sb.Where(sb.Equal("country_iso_alpha2_code", filter.Country))
	}
	sb.OrderBy("primary_name").Limit(filter.Limit).Offset(filter.Offset)
	query, args := sb.Build()

	companies := []models.Company{}
	if err := s.db.SelectContext(ctx, &companies, query, args...); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to list companies")
	}
	return companies, nil
}

// DataProfile summarizes which data domains have been loaded for a company.
type DataProfile struct {
	HasCompanyInfo      bool  `json:"hasCompanyInfo"`
	FinancialStatements int64 `json:"financialStatements"`
	LegalFilings        int64 `json:"legalFilings"`
	Contracts           int64 `json:"contracts"`
	ActiveExclusions    int64 `json:"activeExclusions"`
	SignificantEvents   int64 `json:"significantEvents"`
}

func (s *Store) DataProfile(ctx context.Context, companyID int64) (*DataProfile, error) {
	var p DataProfile

	info, err := s.countByCompany(ctx, models.TableCompanyInfo, companyID)
	if err != nil {
		return nil, err
	}
	p.HasCompanyInfo = info > 0

	if p.FinancialStatements, err = s.countByCompany(ctx, models.TableFinancialStatements, companyID); err != nil {
		return nil, err
	}
	for _, family := range models.LegalEventFamilies {
		n, err := s.countByCompany(ctx, family.FilingTable, companyID)
		if err != nil {
			return nil, err
		}
		p.LegalFilings += n
	}
	if p.Contracts, err = s.countByCompany(ctx, models.TableContracts, companyID); err != nil {
		return nil, err
	}
	if p.ActiveExclusions, err = s.countByCompany(ctx, models.TableActiveExclusions, companyID); err != nil {
		return nil, err
	}
	if p.SignificantEvents, err = s.countByCompany(ctx, models.TableSignificantEvents, companyID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) countByCompany(ctx context.Context, table string, companyID int64) (int64, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)").From(table).Where(sb.Equal("company_id", companyID))
	query, args := sb.Build()

	var n int64
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to count "+table)
	}
	return n, nil
}
