package ingest

import (
	"context"
	"time"

	"datablock/internal/ingest/models"
	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
	domainerrors "datablock/pkg/domain-errors"
)

// resolveCompany finds or creates the company row for an organization
// payload. A missing or empty duns is the one hard-stop condition in the
// pipeline and aborts the whole batch. On an existing company the display
// fields are refreshed when the payload carries replacements.
func resolveCompany(ctx context.Context, tx *store.Tx, org map[string]any) (*models.Company, error) {
	duns := payload.String(org["duns"])
	if duns == nil || *duns == "" {
		return nil, domainerrors.New(domainerrors.CodeValidation, "organization payload has no duns")
	}

	now := time.Now().UTC()

	c, err := tx.FindCompanyByDUNS(ctx, *duns)
	if err != nil {
		return nil, err
	}

	if c == nil {
		c = &models.Company{
			DUNS:        *duns,
			PrimaryName: payload.String(org["primaryName"]),
			CountryISO:  payload.String(org["countryISOAlpha2Code"]),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.InsertCompany(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	if name := payload.String(org["primaryName"]); name != nil {
		c.PrimaryName = name
	}
	if iso := payload.String(org["countryISOAlpha2Code"]); iso != nil {
		c.CountryISO = iso
	}
	c.UpdatedAt = now
	if err := tx.UpdateCompanyDisplay(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
