package ingest

import (
	"context"

	"datablock/internal/ingest/models"
	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
)

// companyInfoChildren maps each child collection's table to the payload key
// it is rebuilt from and a constructor for its row type.
var companyInfoChildren = []struct {
	table string
	key   string
	row   func(infoID int64) any
}{
	{models.TableIndustryCodes, "industryCodes", func(id int64) any { return &models.IndustryCode{CompanyInfoID: id} }},
	{models.TableTradeStyleNames, "tradeStyleNames", func(id int64) any { return &models.TradeStyleName{CompanyInfoID: id} }},
	{models.TableWebsiteAddresses, "websiteAddress", func(id int64) any { return &models.WebsiteAddress{CompanyInfoID: id} }},
	{models.TableTelephoneNumbers, "telephone", func(id int64) any { return &models.TelephoneNumber{CompanyInfoID: id} }},
	{models.TableEmailAddresses, "email", func(id int64) any { return &models.EmailAddress{CompanyInfoID: id} }},
	{models.TableRegistrationNumbers, "registrationNumbers", func(id int64) any { return &models.RegistrationNumber{CompanyInfoID: id} }},
	{models.TableStockExchanges, "stockExchanges", func(id int64) any { return &models.StockExchange{CompanyInfoID: id} }},
	{models.TableBanks, "banks", func(id int64) any { return &models.Bank{CompanyInfoID: id} }},
	{models.TableCompanyActivities, "activities", func(id int64) any { return &models.CompanyActivity{CompanyInfoID: id} }},
	{models.TableEmployeeFigures, "numberOfEmployees", func(id int64) any { return &models.EmployeeFigure{CompanyInfoID: id} }},
	{models.TableUNSPSCCodes, "unspscCodes", func(id int64) any { return &models.UNSPSCCode{CompanyInfoID: id} }},
}

// multilingualNameSources are the three name collections folded into one
// table, distinguished by name_type.
var multilingualNameSources = []struct {
	key      string
	nameType string
}{
	{"multilingualPrimaryNames", models.NameTypePrimary},
	{"multilingualRegisteredNames", models.NameTypeRegistered},
	{"multilingualTradeStyleNames", models.NameTypeTradeStyle},
}

// mapCompanyInfo rebuilds the identity/profile aggregate and all of its
// detail collections. Upstream always sends a complete snapshot, so the
// whole aggregate is deleted and recreated instead of diffed.
func mapCompanyInfo(ctx context.Context, tx *store.Tx, companyID int64, org map[string]any) error {
	for _, child := range companyInfoChildren {
		if err := tx.DeleteChildren(ctx, child.table, "company_info_id", models.TableCompanyInfo, companyID); err != nil {
			return err
		}
	}
	if err := tx.DeleteChildren(ctx, models.TableMultilingualNames, "company_info_id", models.TableCompanyInfo, companyID); err != nil {
		return err
	}
	if err := tx.DeleteByCompany(ctx, models.TableCompanyInfo, companyID); err != nil {
		return err
	}

	info := models.CompanyInfo{CompanyID: companyID}
	payload.DecodeRow(&info, org)
	infoID, err := tx.InsertReturningID(ctx, models.TableCompanyInfo, info)
	if err != nil {
		return err
	}

	for _, child := range companyInfoChildren {
		for _, raw := range payload.List(org, child.key) {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			row := child.row(infoID)
			payload.DecodeRow(row, m)
			if err := tx.Insert(ctx, child.table, row); err != nil {
				return err
			}
		}
	}

	for _, src := range multilingualNameSources {
		nameType := src.nameType
		for _, raw := range payload.List(org, src.key) {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name := models.MultilingualName{CompanyInfoID: infoID, NameType: &nameType}
			payload.DecodeRow(&name, m)
			if err := tx.Insert(ctx, models.TableMultilingualNames, name); err != nil {
				return err
			}
		}
	}
	return nil
}
