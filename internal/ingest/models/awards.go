package models

import "datablock/internal/ingest/payload"

// AwardsSummary tracks counts, amounts, and most-recent dates across
// contracts, loans, grants, and debts. One row per company.
type AwardsSummary struct {
	ID                      int64           `db:"id"`
	CompanyID               int64           `db:"company_id"`
	HasContracts            *bool           `db:"has_contracts" payload:"hasContracts"`
	HasLoans                *bool           `db:"has_loans" payload:"hasLoans"`
	HasDebts                *bool           `db:"has_debts" payload:"hasDebts"`
	HasGrants               *bool           `db:"has_grants" payload:"hasGrants"`
	HasOpenContracts        *bool           `db:"has_open_contracts" payload:"hasOpenContracts"`
	HasOpenLoans            *bool           `db:"has_open_loans" payload:"hasOpenLoans"`
	HasOpenDebts            *bool           `db:"has_open_debts" payload:"hasOpenDebts"`
	HasOpenGrants           *bool           `db:"has_open_grants" payload:"hasOpenGrants"`
	ObligatedContractsValue payload.Decimal `db:"obligated_contracts_amt_val" payload:"obligatedContractsAmount.value"`
	ObligatedContractsCurr  *string         `db:"obligated_contracts_amt_curr" payload:"obligatedContractsAmount.currency"`
	CurrentContractsValue   payload.Decimal `db:"current_contracts_amt_val" payload:"currentContractsAmount.value"`
	CurrentContractsCurr    *string         `db:"current_contracts_amt_curr" payload:"currentContractsAmount.currency"`
	TotalOpenContractsCount *int64          `db:"total_open_contracts_count" payload:"totalOpenContractsCount"`
	TotalOpenContractsValue payload.Decimal `db:"total_open_contracts_amt_val" payload:"totalOpenContractsAmount.value"`
	TotalOpenContractsCurr  *string         `db:"total_open_contracts_amt_curr" payload:"totalOpenContractsAmount.currency"`
	TotalContractsValue     payload.Decimal `db:"total_contracts_amt_val" payload:"totalContractsAmount.value"`
	TotalContractsCurr      *string         `db:"total_contracts_amt_curr" payload:"totalContractsAmount.currency"`
	MostRecentContractDate  payload.Date    `db:"most_recent_contract_date" payload:"mostRecentContractDate"`
	MostRecentLoanDate      payload.Date    `db:"most_recent_loan_date" payload:"mostRecentLoanDate"`
	MostRecentDebtDate      payload.Date    `db:"most_recent_debt_date" payload:"mostRecentDebtDate"`
	MostRecentGrantDate     payload.Date    `db:"most_recent_grant_date" payload:"mostRecentGrantDate"`
}

const TableAwardsSummary = "awards_summary"

// Contract is one government contract award.
type Contract struct {
	ID                       int64           `db:"id"`
	CompanyID                int64           `db:"company_id"`
	AwardID                  *string         `db:"award_id" payload:"awardID"`
	AwardDescription         *string         `db:"award_description" payload:"awardDescription"`
	AwardModificationNumber  *string         `db:"award_modification_number" payload:"awardModificationNumber"`
	ContractRef              *string         `db:"contract_ref" payload:"contractID"`
	ContractTypeCode         *string         `db:"contract_type_code" payload:"contractType.code"`
	ContractTypeDescription  *string         `db:"contract_type_description" payload:"contractType.description"`
	ContractPriceTypeCode    *string         `db:"contract_price_type_code" payload:"contractPriceType.code"`
	ContractPriceTypeDesc    *string         `db:"contract_price_type_desc" payload:"contractPriceType.description"`
	BaseAllOptionsValue      payload.Decimal `db:"base_all_options_amt_value" payload:"baseAndAllOptionsAmount.value"`
	BaseAllOptionsCurrency   *string         `db:"base_all_options_amt_currency" payload:"baseAndAllOptionsAmount.currency"`
	CurrentTotalValue        payload.Decimal `db:"current_total_amt_value" payload:"currentTotalAmount.value"`
	CurrentTotalCurrency     *string         `db:"current_total_amt_currency" payload:"currentTotalAmount.currency"`
	FundingAgencyCode        *string         `db:"funding_agency_code" payload:"fundingAgency.code"`
	FundingAgencyDescription *string         `db:"funding_agency_description" payload:"fundingAgency.description"`
	AwardingOfficeCode       *string         `db:"awarding_office_code" payload:"awardingOffice.code"`
	AwardingOfficeDesc       *string         `db:"awarding_office_description" payload:"awardingOffice.description"`
}

const TableContracts = "contracts"

// ContractAction is one funding action under a contract.
type ContractAction struct {
	ID                  int64           `db:"id"`
	ContractID          int64           `db:"contract_id"`
	ActionDate          payload.Date    `db:"action_date" payload:"actionDate"`
	ActionFiscalYear    *string         `db:"action_fiscal_year" payload:"actionFiscalYear"`
	ActionsCount        *int64          `db:"actions_count" payload:"actionsCount"`
	EffectiveDate       payload.Date    `db:"effective_date" payload:"effectiveDate"`
	ExpirationDate      payload.Date    `db:"expiration_date" payload:"expirationDate"`
	FederalFundingValue payload.Decimal `db:"federal_funding_amt_value" payload:"federalFundingAmount.value"`
	FederalFundingCurr  *string         `db:"federal_funding_amt_currency" payload:"federalFundingAmount.currency"`
}

const TableContractActions = "contract_actions"

// ContractCharacteristic is a coded attribute of a contract.
type ContractCharacteristic struct {
	ID          int64   `db:"id"`
	ContractID  int64   `db:"contract_id"`
	Description *string `db:"description" payload:"description"`
	DNBCode     *int64  `db:"dnb_code" payload:"dnbCode"`
}

const TableContractCharacteristics = "contract_characteristics"

// ExclusionsSummary tracks debarment/exclusion flags and counts.
type ExclusionsSummary struct {
	ID                      int64        `db:"id"`
	CompanyID               int64        `db:"company_id"`
	HasActiveExclusions     *bool        `db:"has_active_exclusions" payload:"hasActiveExclusions"`
	HasInactiveExclusions   *bool        `db:"has_inactive_exclusions" payload:"hasInactiveExclusions"`
	ActiveExclusionsCount   *int64       `db:"active_exclusions_count" payload:"activeExclusionsCount"`
	InactiveExclusionsCount *int64       `db:"inactive_exclusions_count" payload:"inactiveExclusionsCount"`
	MostRecentActiveDate    payload.Date `db:"most_recent_active_exclusion_date" payload:"mostRecentActiveExclusionDate"`
	MostRecentInactiveDate  payload.Date `db:"most_recent_inactive_exclusion_date" payload:"mostRecentInactiveExclusionDate"`
}

const TableExclusionsSummary = "exclusions_summary"

// ActiveExclusion is one active exclusion record from the SAM register.
type ActiveExclusion struct {
	ID                        int64        `db:"id"`
	CompanyID                 int64        `db:"company_id"`
	SAMRecordNumber           *string      `db:"sam_record_number" payload:"samRecordNumber"`
	CageCode                  *string      `db:"cage_code" payload:"cageCode"`
	ClassificationTypeDesc    *string      `db:"classification_type_desc" payload:"classificationType.description"`
	ClassificationTypeDNBCode *int64       `db:"classification_type_dnb_code" payload:"classificationType.dnbCode"`
	ProgramTypeDesc           *string      `db:"program_type_desc" payload:"programType.description"`
	AgencyName                *string      `db:"agency_name" payload:"agencyName"`
	EffectiveDate             payload.Date `db:"effective_date" payload:"effectiveDate"`
	ExpirationDate            payload.Date `db:"expiration_date" payload:"expirationDate"`
	SAMRecordUpdateDate       payload.Date `db:"sam_record_update_date" payload:"samRecordUpdateDate"`
	AgencyComments            *string      `db:"agency_comments" payload:"agencyComments"`
}

const TableActiveExclusions = "active_exclusions"

// SignificantEventsSummary is the ten-flag overview of operational and
// disastrous events. One row per company.
type SignificantEventsSummary struct {
	ID                      int64 `db:"id"`
	CompanyID               int64 `db:"company_id"`
	HasSignificantEvents    *bool `db:"has_significant_events" payload:"hasSignificantEvents"`
	HasOperationalEvents    *bool `db:"has_operational_events" payload:"hasOperationalEvents"`
	HasDisastrousEvents     *bool `db:"has_disastrous_events" payload:"hasDisastrousEvents"`
	HasBurglaryOccured      *bool `db:"has_burglary_occured" payload:"hasBurglaryOccured"`
	HasFireOccurred         *bool `db:"has_fire_occurred" payload:"hasFireOccurred"`
	HasBusinessDiscontinued *bool `db:"has_business_discontinued" payload:"hasBusinessDiscontinued"`
	HasNameChange           *bool `db:"has_name_change" payload:"hasNameChange"`
	HasPartnerChange        *bool `db:"has_partner_change" payload:"hasPartnerChange"`
	HasCEOChange            *bool `db:"has_ceo_change" payload:"hasCEOChange"`
	HasControlChange        *bool `db:"has_control_change" payload:"hasControlChange"`
}

const TableSignificantEventsSummary = "significant_events_summary"

// SignificantEvent is one operational or disastrous event.
type SignificantEvent struct {
	ID                   int64           `db:"id"`
	CompanyID            int64           `db:"company_id"`
	EventDate            payload.Date    `db:"event_date" payload:"eventDate"`
	EventTypeDescription *string         `db:"event_type_description" payload:"eventType.description"`
	EventTypeDNBCode     *int64          `db:"event_type_dnb_code" payload:"eventType.dnbCode"`
	StartDate            payload.Date    `db:"start_date" payload:"startDate"`
	ImpactDetails        *string         `db:"impact_details" payload:"impactDetails"`
	ImpactAmountValue    payload.Decimal `db:"impact_amount_value" payload:"impactAmount.value"`
	ImpactAmountCurrency *string         `db:"impact_amount_currency" payload:"impactAmount.currency"`
	ImpactedPremisesType *string         `db:"impacted_premises_type" payload:"impactedPremisesType"`
	DamagedAssetsClass   *string         `db:"damaged_assets_class" payload:"damagedAssetsClass"`
	ImpactedChildren     *int64          `db:"impacted_children" payload:"impactedChildren"`
	InsuranceClaimValue  payload.Decimal `db:"insurance_claim_settlement_amount_value" payload:"insuranceClaimSettlementAmount.value"`
	InsuranceClaimCurr   *string         `db:"insurance_claim_settlement_amount_currency" payload:"insuranceClaimSettlementAmount.currency"`
	DataProviderDesc     *string         `db:"data_provider_description" payload:"dataProvider.description"`
	DataProviderDNBCode  *int64          `db:"data_provider_dnb_code" payload:"dataProvider.dnbCode"`
}

const TableSignificantEvents = "significant_events"

// SignificantEventText is one narrative entry attached to an event.
type SignificantEventText struct {
	ID              int64   `db:"id"`
	EventID         int64   `db:"significant_event_id"`
	Text            *string `db:"text" payload:"text"`
	Priority        *int64  `db:"priority" payload:"priority"`
	TypeDescription *string `db:"type_description" payload:"typeDescription"`
	TypeDNBCode     *int64  `db:"type_dnb_code" payload:"typeDnBCode"`
}

const TableSignificantEventTexts = "significant_event_text_entries"
