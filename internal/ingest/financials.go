package ingest

import (
	"context"

	"datablock/internal/ingest/models"
	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
)

// mapFinancials replaces every financial statement the company owns, then
// inserts the latest fiscal statement (when present) and the trailing
// "other" statements. Statements own their overview, line items, and ratios.
func mapFinancials(ctx context.Context, tx *store.Tx, companyID int64, org map[string]any) error {
	for _, child := range []string{
		models.TableBalanceSheetItems,
		models.TableProfitLossItems,
		models.TableCashFlowItems,
		models.TableFinancialRatios,
		models.TableFinancialOverview,
	} {
		if err := tx.DeleteChildren(ctx, child, "statement_id", models.TableFinancialStatements, companyID); err != nil {
			return err
		}
	}
	if err := tx.DeleteByCompany(ctx, models.TableFinancialStatements, companyID); err != nil {
		return err
	}

	if latest := payload.Map(org, "latestFiscalFinancials"); len(latest) > 0 {
		if err := insertStatement(ctx, tx, companyID, latest, models.StatementTypeFiscalLatest); err != nil {
			return err
		}
	}

	for _, raw := range payload.List(org, "otherFinancials") {
		fin, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if err := insertStatement(ctx, tx, companyID, fin, models.StatementTypeOther); err != nil {
			return err
		}
	}
	return nil
}

func insertStatement(ctx context.Context, tx *store.Tx, companyID int64, fin map[string]any, stmtType string) error {
	stmt := models.FinancialStatement{CompanyID: companyID, StatementType: stmtType}
	payload.DecodeRow(&stmt, fin)
	stmtID, err := tx.InsertReturningID(ctx, models.TableFinancialStatements, stmt)
	if err != nil {
		return err
	}

	if ov := payload.Map(fin, "overview"); ov != nil {
		overview := models.FinancialOverview{StatementID: stmtID}
		payload.DecodeRow(&overview, ov)
		if err := tx.Insert(ctx, models.TableFinancialOverview, overview); err != nil {
			return err
		}
	}

	if err := insertBalanceSheet(ctx, tx, stmtID, payload.Map(fin, "balanceSheet")); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, stmtID, models.TableProfitLossItems, nil, payload.List(fin, "profitAndLossStatement", "statementItems")); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, stmtID, models.TableCashFlowItems, nil, payload.List(fin, "cashFlowStatement", "statementItems")); err != nil {
		return err
	}

	for _, raw := range payload.List(fin, "financialRatios", "statementItems") {
		im, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ratio := models.FinancialRatio{StatementID: stmtID}
		payload.DecodeRow(&ratio, im)
		if err := tx.Insert(ctx, models.TableFinancialRatios, ratio); err != nil {
			return err
		}
	}
	return nil
}

// insertBalanceSheet flattens the three balance sheet item groups into one
// table, tagged by section.
func insertBalanceSheet(ctx context.Context, tx *store.Tx, stmtID int64, bs map[string]any) error {
	if bs == nil {
		return nil
	}

	sections := []struct {
		name  string
		items []any
	}{
		{models.SectionAssets, payload.List(bs, "assets", "statementItems")},
		{models.SectionLiabilities, payload.List(bs, "liabilities", "statementItems")},
		{models.SectionOther, payload.List(bs, "statementItems")},
	}

	for _, sec := range sections {
		section := sec.name
		if err := insertItems(ctx, tx, stmtID, models.TableBalanceSheetItems, &section, sec.items); err != nil {
			return err
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx *store.Tx, stmtID int64, table string, section *string, items []any) error {
	for _, raw := range items {
		im, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		item := models.StatementItem{StatementID: stmtID, Section: section}
		payload.DecodeRow(&item, im)
		if err := tx.Insert(ctx, table, item); err != nil {
			return err
		}
	}
	return nil
}
