// Package service exposes the company read operations behind input
// validation, keeping handlers free of business rules.
package service

import (
	"context"
	"strings"

	companystore "datablock/internal/company/store"
	"datablock/internal/ingest/models"
	domainerrors "datablock/pkg/domain-errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Store is the read surface the service needs.
type Store interface {
	FindByDUNS(ctx context.Context, duns string) (*models.Company, error)
	List(ctx context.Context, filter companystore.ListFilter) ([]models.Company, error)
	DataProfile(ctx context.Context, companyID int64) (*companystore.DataProfile, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// CompanyWithProfile pairs a company with a summary of its loaded domains.
type CompanyWithProfile struct {
	Company *models.Company           `json:"company"`
	Profile *companystore.DataProfile `json:"dataProfile"`
}

// GetByDUNS returns the company plus its data profile.
func (s *Service) GetByDUNS(ctx context.Context, duns string) (*CompanyWithProfile, error) {
	duns = strings.TrimSpace(duns)
	if err := validateDUNS(duns); err != nil {
		return nil, err
	}

	company, err := s.store.FindByDUNS(ctx, duns)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.DataProfile(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	return &CompanyWithProfile{Company: company, Profile: profile}, nil
}

// List returns companies, optionally filtered by country.
func (s *Service) List(ctx context.Context, country string, limit, offset int) ([]models.Company, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country != "" && len(country) != 2 {
		return nil, domainerrors.New(domainerrors.CodeBadRequest, "country must be an ISO alpha-2 code")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, companystore.ListFilter{Country: country, Limit: limit, Offset: offset})
}

func validateDUNS(duns string) error {
	if len(duns) != 9 {
		return domainerrors.New(domainerrors.CodeBadRequest, "duns must be 9 characters")
	}
	for _, r := range duns {
		if r < '0' || r > '9' {
			return domainerrors.New(domainerrors.CodeBadRequest, "duns must be numeric")
		}
	}
	return nil
}
