package ingest

import (
	"context"

	"datablock/internal/ingest/models"
	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
)

// mapLegalEvents replaces the five legal event sub-collections for a company
// and refreshes the flags summary. The five types are one write scope: all
// are deleted together, then each is rebuilt from whatever the payload
// carries. A type is materialized only when its sub-object has a "filings"
// key, which is how "no data" and "confirmed zero filings" stay distinct.
func mapLegalEvents(ctx context.Context, tx *store.Tx, companyID int64, legal map[string]any) error {
	for _, fam := range models.LegalEventFamilies {
		if err := tx.DeleteChildren(ctx, fam.RolePlayerTable, "filing_id", fam.FilingTable, companyID); err != nil {
			return err
		}
		if err := tx.DeleteByCompany(ctx, fam.FilingTable, companyID); err != nil {
			return err
		}
	}
	for _, fam := range models.LegalEventFamilies {
		if err := tx.DeleteByCompany(ctx, fam.GroupTable, companyID); err != nil {
			return err
		}
	}

	summary := models.LegalEventsSummary{CompanyID: companyID}
	payload.DecodeRow(&summary, legal)
	if err := tx.UpsertByCompany(ctx, models.TableLegalEventsSummary, companyID, summary); err != nil {
		return err
	}

	for _, fam := range models.LegalEventFamilies {
		if err := mapLegalEventFamily(ctx, tx, companyID, fam, payload.Map(legal, fam.Key)); err != nil {
			return err
		}
	}
	return nil
}

func mapLegalEventFamily(ctx context.Context, tx *store.Tx, companyID int64, fam models.LegalEventFamily, sub map[string]any) error {
	if sub == nil {
		return nil
	}
	if _, ok := sub["filings"]; !ok {
		return nil
	}

	group := models.EventGroup{CompanyID: companyID}
	payload.DecodeRow(&group, sub)
	groupID, err := tx.InsertReturningID(ctx, fam.GroupTable, group)
	if err != nil {
		return err
	}

	for _, raw := range payload.List(sub, "filings") {
		fm, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		filing := models.Filing{GroupID: groupID, CompanyID: companyID}
		payload.DecodeRow(&filing, fm)
		filingID, err := tx.InsertReturningID(ctx, fam.FilingTable, filing)
		if err != nil {
			return err
		}

		for _, rawRP := range payload.List(fm, "rolePlayers") {
			rpm, ok := rawRP.(map[string]any)
			if !ok {
				continue
			}
			rp := models.RolePlayer{FilingID: filingID}
			payload.DecodeRow(&rp, rpm)
			if err := tx.Insert(ctx, fam.RolePlayerTable, rp); err != nil {
				return err
			}
		}
	}
	return nil
}
