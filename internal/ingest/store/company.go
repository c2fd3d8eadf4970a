package store

import (
	"context"
	"fmt"

	"datablock/internal/ingest/models"
)

// FindCompanyByDUNS returns the company row for duns, or nil when no such
// company exists yet.
func (t *Tx) FindCompanyByDUNS(ctx context.Context, duns string) (*models.Company, error) {
	sb := t.flavor.NewSelectBuilder()
	sb.Select("id", "duns", "primary_name", "country_iso_alpha2_code", "created_at", "updated_at")
	sb.From(models.TableCompanies)
	sb.Where(sb.Equal("duns", duns))
	q, args := sb.Build()

	var c models.Company
	err := t.tx.GetContext(ctx, &c, q, args...)
	if IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company %s: %w", duns, err)
	}
	return &c, nil
}

// InsertCompany creates the company row and fills in its generated key.
func (t *Tx) InsertCompany(ctx context.Context, c *models.Company) error {
	id, err := t.InsertReturningID(ctx, models.TableCompanies, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// UpdateCompanyDisplay overwrites the two mutable display fields and the
// updated timestamp. Everything else on the row is immutable.
func (t *Tx) UpdateCompanyDisplay(ctx context.Context, c *models.Company) error {
	ub := t.flavor.NewUpdateBuilder()
	ub.Update(models.TableCompanies)
	ub.Set(
		ub.Assign("primary_name", c.PrimaryName),
		ub.Assign("country_iso_alpha2_code", c.CountryISO),
		ub.Assign("updated_at", c.UpdatedAt),
	)
	ub.Where(ub.Equal("id", c.ID))
	q, args := ub.Build()

	if _, err := t.tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("update company %s: %w", c.DUNS, err)
	}
	return nil
}
