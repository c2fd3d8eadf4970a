package models

import "datablock/internal/ingest/payload"

// Statement type tags. "fiscal_latest" marks the single statement taken from
// the latestFiscalFinancials object, "other" everything else.
const (
	StatementTypeFiscalLatest = "fiscal_latest"
	StatementTypeOther        = "other"
)

// FinancialStatement is the header row for one reported financial period.
type FinancialStatement struct {
	ID                   int64        `db:"id"`
	CompanyID            int64        `db:"company_id"`
	StatementType        string       `db:"statement_type"`
	ToDate               payload.Date `db:"financial_statement_to_date" payload:"financialStatementToDate"`
	FromDate             payload.Date `db:"financial_statement_from_date" payload:"financialStatementFromDate"`
	Duration             *string      `db:"financial_statement_duration" payload:"financialStatementDuration"`
	FilingDate           payload.Date `db:"filing_date" payload:"filingDate"`
	ReceivedDate         payload.Date `db:"received_date" payload:"receivedTimestamp"`
	ApprovalDate         payload.Date `db:"approval_date" payload:"approvalDate"`
	Currency             *string      `db:"currency" payload:"currency"`
	Units                *string      `db:"units" payload:"units"`
	DataProviderDesc     *string      `db:"data_provider_description" payload:"dataProvider.description"`
	DataProviderDNBCode  *int64       `db:"data_provider_dnb_code" payload:"dataProvider.dnbCode"`
	TemplateDescription  *string      `db:"statement_template_description" payload:"statementTemplate.description"`
	TemplateDNBCode      *int64       `db:"statement_template_dnb_code" payload:"statementTemplate.dnbCode"`
	InfoScopeDescription *string      `db:"information_scope_description" payload:"informationScope.description"`
	InfoScopeDNBCode     *int64       `db:"information_scope_dnb_code" payload:"informationScope.dnbCode"`
	ReliabilityDesc      *string      `db:"reliability_description" payload:"reliability.description"`
	ReliabilityDNBCode   *int64       `db:"reliability_dnb_code" payload:"reliability.dnbCode"`
	IsFiscal             *bool        `db:"is_fiscal" payload:"isFiscal"`
	IsInterim            *bool        `db:"is_interim" payload:"isInterim"`
	IsAudited            *bool        `db:"is_audited" payload:"isAudited"`
	IsAuditUnknown       *bool        `db:"is_audit_unknown" payload:"isAuditUnknown"`
	IsFinal              *bool        `db:"is_final" payload:"isFinal"`
	IsOpening            *bool        `db:"is_opening" payload:"isOpening"`
	IsProforma           *bool        `db:"is_proforma" payload:"isProforma"`
	IsSigned             *bool        `db:"is_signed" payload:"isSigned"`
	IsQualified          *bool        `db:"is_qualified" payload:"isQualified"`
	IsRestated           *bool        `db:"is_restated" payload:"isRestated"`
	IsTrialBalance       *bool        `db:"is_trial_balance" payload:"isTrialBalance"`
	IsUnbalanced         *bool        `db:"is_unbalanced" payload:"isUnbalanced"`
	AccountantName       *string      `db:"accountant_name" payload:"accountantName"`
	NotAuditedReason     *string      `db:"not_audited_reason" payload:"notAuditedReason"`
}

const TableFinancialStatements = "financial_statements"

// FinancialOverview is the one-row broad summary owned by a statement.
type FinancialOverview struct {
	ID          int64 `db:"id"`
	StatementID int64 `db:"statement_id"`

	CashAndLiquidAssets      payload.Decimal `db:"cash_and_liquid_assets" payload:"cashAndLiquidAssets"`
	MarketableSecurities     payload.Decimal `db:"marketable_securities" payload:"marketableSecurities"`
	AccountsReceivable       payload.Decimal `db:"accounts_receivable" payload:"accountsReceivable"`
	DueFromGroupShortTerm    payload.Decimal `db:"due_from_group_short_term" payload:"dueFromGroupShortTerm"`
	OtherReceivables         payload.Decimal `db:"other_receivables" payload:"otherReceivables"`
	TotalReceivables         payload.Decimal `db:"total_receivables" payload:"totalReceivables"`
	Inventory                payload.Decimal `db:"inventory" payload:"inventory"`
	PrepaidDeferredShortTerm payload.Decimal `db:"prepaid_deferred_short_term" payload:"prepaidDeferredShortTerm"`
	OtherCurrentAssets       payload.Decimal `db:"other_current_assets" payload:"otherCurrentAssets"`
	TotalCurrentAssets       payload.Decimal `db:"total_current_assets" payload:"totalCurrentAssets"`

	TangibleFixedAssets     payload.Decimal `db:"tangible_fixed_assets" payload:"tangibleFixedAssets"`
	DueFromGroupLongTerm    payload.Decimal `db:"due_from_group_long_term" payload:"dueFromGroupLongTerm"`
	InvestmentsLongTerm     payload.Decimal `db:"investments_long_term" payload:"investmentsLongTerm"`
	IntangibleAssets        payload.Decimal `db:"intangible_assets" payload:"intangibleAssets"`
	OtherLongTermAssets     payload.Decimal `db:"other_long_term_assets" payload:"otherLongTermAssets"`
	TotalLongTermAssets     payload.Decimal `db:"total_long_term_assets" payload:"totalLongTermAssets"`
	OtherUnclassifiedAssets payload.Decimal `db:"other_unclassified_assets" payload:"otherUnclassifiedAssets"`
	TotalAssets             payload.Decimal `db:"total_assets" payload:"totalAssets"`

	AccountsPayable         payload.Decimal `db:"accounts_payable" payload:"accountsPayable"`
	AccrualsOtherPayables   payload.Decimal `db:"accruals_other_payables" payload:"accrualsOtherPayables"`
	ShortTermDebt           payload.Decimal `db:"short_term_debt" payload:"shortTermDebt"`
	DueToGroupShortTerm     payload.Decimal `db:"due_to_group_short_term" payload:"dueToGroupShortTerm"`
	TaxesShortTerm          payload.Decimal `db:"taxes_short_term" payload:"taxesShortTerm"`
	OtherCurrentLiabilities payload.Decimal `db:"other_current_liabilities" payload:"otherCurrentLiabilities"`
	TotalCurrentLiabilities payload.Decimal `db:"total_current_liabilities" payload:"totalCurrentLiabilities"`

	LongTermDebt                 payload.Decimal `db:"long_term_debt" payload:"longTermDebt"`
	DueToGroupLongTerm           payload.Decimal `db:"due_to_group_long_term" payload:"dueToGroupLongTerm"`
	DeferredCreditIncome         payload.Decimal `db:"deferred_credit_income" payload:"deferredCreditIncome"`
	DeferredTaxesLongTerm        payload.Decimal `db:"deferred_taxes_long_term" payload:"deferredTaxesLongTerm"`
	OtherLongTermLiabilities     payload.Decimal `db:"other_long_term_liabilities" payload:"otherLongTermLiabilities"`
	TotalLongTermLiabilities     payload.Decimal `db:"total_long_term_liabilities" payload:"totalLongTermLiabilities"`
	Provisions                   payload.Decimal `db:"provisions" payload:"provisions"`
	OtherUnclassifiedLiabilities payload.Decimal `db:"other_unclassified_liabilities" payload:"otherUnclassifiedLiabilities"`
	TotalLiabilities             payload.Decimal `db:"total_liabilities" payload:"totalLiabilities"`

	CapitalStock              payload.Decimal `db:"capital_stock" payload:"capitalStock"`
	CapitalSurplus            payload.Decimal `db:"capital_surplus" payload:"capitalSurplus"`
	RetainedEarnings          payload.Decimal `db:"retained_earnings" payload:"retainedEarnings"`
	CapitalReserves           payload.Decimal `db:"capital_reserves" payload:"capitalReserves"`
	OtherUnrestrictedReserves payload.Decimal `db:"other_unrestricted_reserves" payload:"otherUnrestrictedReserves"`
	RestrictedEquity          payload.Decimal `db:"restricted_equity" payload:"restrictedEquity"`
	OtherEquity               payload.Decimal `db:"other_equity" payload:"otherEquity"`
	MinorityInterest          payload.Decimal `db:"minority_interest" payload:"minorityInterest"`
	NetWorth                  payload.Decimal `db:"net_worth" payload:"netWorth"`
	TotalLiabilitiesEquity    payload.Decimal `db:"total_liabilities_equity" payload:"totalLiabilitiesEquity"`

	SalesRevenue      payload.Decimal `db:"sales_revenue" payload:"salesRevenue"`
	CostOfSales       payload.Decimal `db:"cost_of_sales" payload:"costOfSales"`
	GrossProfit       payload.Decimal `db:"gross_profit" payload:"grossProfit"`
	OperatingProfit   payload.Decimal `db:"operating_profit" payload:"operatingProfit"`
	ProfitBeforeTaxes payload.Decimal `db:"profit_before_taxes" payload:"profitBeforeTaxes"`
	ProfitAfterTax    payload.Decimal `db:"profit_after_tax" payload:"profitAfterTax"`
	Dividends         payload.Decimal `db:"dividends" payload:"dividends"`

	TotalIndebtedness payload.Decimal `db:"total_indebtedness" payload:"totalIndebtedness"`
	WorkingCapital    payload.Decimal `db:"working_capital" payload:"workingCapital"`
	NetCurrentAssets  payload.Decimal `db:"net_current_assets" payload:"netCurrentAssets"`
	TangibleNetWorth  payload.Decimal `db:"tangible_net_worth" payload:"tangibleNetWorth"`

	CurrentRatio                   payload.Decimal `db:"current_ratio" payload:"currentRatio"`
	QuickRatio                     payload.Decimal `db:"quick_ratio" payload:"quickRatio"`
	CurrentLiabilitiesOverNetWorth payload.Decimal `db:"current_liabilities_over_net_worth" payload:"currentLiabilitiesOverNetWorth"`
	TotalLiabilitiesOverNetWorth   payload.Decimal `db:"total_liabilities_over_net_worth" payload:"totalLiabilitiesOverNetWorth"`
}

const TableFinancialOverview = "financial_overview"

// Balance sheet sections.
const (
	SectionAssets      = "assets"
	SectionLiabilities = "liabilities"
	SectionOther       = "other"
)

// StatementItem is one line item of a balance sheet, profit and loss, or
// cash flow statement. The three tables share this shape; Section is only
// meaningful for balance sheet rows.
type StatementItem struct {
	ID              int64           `db:"id"`
	StatementID     int64           `db:"statement_id"`
	Section         *string         `db:"section"`
	ItemDescription *string         `db:"item_description" payload:"itemKey.description"`
	ItemDNBCode     *int64          `db:"item_dnb_code" payload:"itemKey.dnbCode"`
	Value           payload.Decimal `db:"value" payload:"value"`
	Priority        *int64          `db:"priority" payload:"priority"`
	ItemGroupLevel  *int64          `db:"item_group_level" payload:"itemGroupLevel"`
}

const (
	TableBalanceSheetItems = "balance_sheet_items"
	TableProfitLossItems   = "profit_loss_items"
	TableCashFlowItems     = "cash_flow_items"
)

// FinancialRatio is one computed ratio with its industry ranking.
type FinancialRatio struct {
	ID                   int64           `db:"id"`
	StatementID          int64           `db:"statement_id"`
	RatioDescription     *string         `db:"ratio_description" payload:"itemKey.description"`
	RatioDNBCode         *int64          `db:"ratio_dnb_code" payload:"itemKey.dnbCode"`
	Value                payload.Decimal `db:"value" payload:"value"`
	RelativeIndustryRank payload.Decimal `db:"relative_industry_rank" payload:"relativeIndustryRank"`
	Priority             *int64          `db:"priority" payload:"priority"`
	ItemGroupLevel       *int64          `db:"item_group_level" payload:"itemGroupLevel"`
}

const TableFinancialRatios = "financial_ratios"
