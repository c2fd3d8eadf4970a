package ingest

import (
	"context"

	"datablock/internal/ingest/models"
	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
)

// mapAwards replaces the contracts collection for a company and refreshes
// the awards summary. Each contract owns its actions and characteristics.
func mapAwards(ctx context.Context, tx *store.Tx, companyID int64, awards map[string]any) error {
	if err := tx.DeleteChildren(ctx, models.TableContractActions, "contract_id", models.TableContracts, companyID); err != nil {
		return err
	}
	if err := tx.DeleteChildren(ctx, models.TableContractCharacteristics, "contract_id", models.TableContracts, companyID); err != nil {
		return err
	}
	if err := tx.DeleteByCompany(ctx, models.TableContracts, companyID); err != nil {
		return err
	}

	summary := models.AwardsSummary{CompanyID: companyID}
	payload.DecodeRow(&summary, awards)
	if err := tx.UpsertByCompany(ctx, models.TableAwardsSummary, companyID, summary); err != nil {
		return err
	}

	for _, raw := range payload.List(awards, "contracts") {
		cm, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		contract := models.Contract{CompanyID: companyID}
		payload.DecodeRow(&contract, cm)
		contractID, err := tx.InsertReturningID(ctx, models.TableContracts, contract)
		if err != nil {
			return err
		}

		for _, rawAction := range payload.List(cm, "actions") {
			am, ok := rawAction.(map[string]any)
			if !ok {
				continue
			}
			action := models.ContractAction{ContractID: contractID}
			payload.DecodeRow(&action, am)
			if err := tx.Insert(ctx, models.TableContractActions, action); err != nil {
				return err
			}
		}

		for _, rawChar := range payload.List(cm, "characteristics") {
			chm, ok := rawChar.(map[string]any)
			if !ok {
				continue
			}
			char := models.ContractCharacteristic{ContractID: contractID}
			payload.DecodeRow(&char, chm)
			if err := tx.Insert(ctx, models.TableContractCharacteristics, char); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapExclusions replaces the active exclusions collection and refreshes its
// summary. The inactive exclusions table exists in the schema but upstream
// never delivers entries for it, so only counts are recorded.
func mapExclusions(ctx context.Context, tx *store.Tx, companyID int64, exclusions map[string]any) error {
	if err := tx.DeleteByCompany(ctx, models.TableActiveExclusions, companyID); err != nil {
		return err
	}

	summary := models.ExclusionsSummary{CompanyID: companyID}
	payload.DecodeRow(&summary, exclusions)
	if err := tx.UpsertByCompany(ctx, models.TableExclusionsSummary, companyID, summary); err != nil {
		return err
	}

	for _, raw := range payload.List(exclusions, "activeExclusions") {
		em, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		excl := models.ActiveExclusion{CompanyID: companyID}
		payload.DecodeRow(&excl, em)
		if err := tx.Insert(ctx, models.TableActiveExclusions, excl); err != nil {
			return err
		}
	}
	return nil
}

// mapSignificantEvents replaces the events collection, each event with its
// text entries, and refreshes the ten-flag summary.
func mapSignificantEvents(ctx context.Context, tx *store.Tx, companyID int64, events map[string]any) error {
	if err := tx.DeleteChildren(ctx, models.TableSignificantEventTexts, "significant_event_id", models.TableSignificantEvents, companyID); err != nil {
		return err
	}
	if err := tx.DeleteByCompany(ctx, models.TableSignificantEvents, companyID); err != nil {
		return err
	}

	summary := models.SignificantEventsSummary{CompanyID: companyID}
	payload.DecodeRow(&summary, events)
	if err := tx.UpsertByCompany(ctx, models.TableSignificantEventsSummary, companyID, summary); err != nil {
		return err
	}

	for _, raw := range payload.List(events, "events") {
		em, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		event := models.SignificantEvent{CompanyID: companyID}
		payload.DecodeRow(&event, em)
		eventID, err := tx.InsertReturningID(ctx, models.TableSignificantEvents, event)
		if err != nil {
			return err
		}

		for _, rawText := range payload.List(em, "textEntry") {
			tm, ok := rawText.(map[string]any)
			if !ok {
				continue
			}
			entry := models.SignificantEventText{EventID: eventID}
			payload.DecodeRow(&entry, tm)
			if err := tx.Insert(ctx, models.TableSignificantEventTexts, entry); err != nil {
				return err
			}
		}
	}
	return nil
}
