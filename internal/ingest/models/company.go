// Package models defines the row types for the ingestion schema. Each struct
// maps one table: `db` tags name columns, `payload` tags name the dot path in
// the upstream document the field is decoded from.
package models

import (
	"time"

	"datablock/internal/ingest/payload"
)

// Company is the root entity every data block hangs off, keyed by the
// nine digit DUNS identifier.
type Company struct {
	ID          int64     `db:"id" json:"id"`
	DUNS        string    `db:"duns" json:"duns"`
	PrimaryName *string   `db:"primary_name" json:"primaryName"`
	CountryISO  *string   `db:"country_iso_alpha2_code" json:"countryISOAlpha2Code"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

const TableCompanies = "companies"

// LegalEventsSummary carries the per-company legal event flags. One row per
// company, updated in place on reload.
type LegalEventsSummary struct {
	ID                         int64 `db:"id"`
	CompanyID                  int64 `db:"company_id"`
	HasLegalEvents             *bool `db:"has_legal_events" payload:"hasLegalEvents"`
	HasOpenLegalEvents         *bool `db:"has_open_legal_events" payload:"hasOpenLegalEvents"`
	HasSuits                   *bool `db:"has_suits" payload:"hasSuits"`
	HasOpenSuits               *bool `db:"has_open_suits" payload:"hasOpenSuits"`
	HasLiens                   *bool `db:"has_liens" payload:"hasLiens"`
	HasOpenLiens               *bool `db:"has_open_liens" payload:"hasOpenLiens"`
	HasBankruptcy              *bool `db:"has_bankruptcy" payload:"hasBankruptcy"`
	HasOpenBankruptcy          *bool `db:"has_open_bankruptcy" payload:"hasOpenBankruptcy"`
	HasJudgments               *bool `db:"has_judgments" payload:"hasJudgments"`
	HasOpenJudgments           *bool `db:"has_open_judgments" payload:"hasOpenJudgments"`
	HasFinancialEmbarrassment  *bool `db:"has_financial_embarrassment" payload:"hasFinancialEmbarrassment"`
	HasOpenFinEmbarrassment    *bool `db:"has_open_financial_embarrassment" payload:"hasOpenFinancialEmbarrassment"`
	HasCriminalProceedings     *bool `db:"has_criminal_proceedings" payload:"hasCriminalProceedings"`
	HasOpenCriminalProceedings *bool `db:"has_open_criminal_proceedings" payload:"hasOpenCriminalProceedings"`
	HasClaims                  *bool `db:"has_claims" payload:"hasClaims"`
	HasOpenClaims              *bool `db:"has_open_claims" payload:"hasOpenClaims"`
	HasDebarments              *bool `db:"has_debarments" payload:"hasDebarments"`
	HasOpenDebarments          *bool `db:"has_open_debarments" payload:"hasOpenDebarments"`
	HasInsolvency              *bool `db:"has_insolvency" payload:"hasInsolvency"`
	HasLiquidation             *bool `db:"has_liquidation" payload:"hasLiquidation"`
	HasSuspensionOfPayments    *bool `db:"has_suspension_of_payments" payload:"hasSuspensionOfPayments"`
	HasOtherLegalEvents        *bool `db:"has_other_legal_events" payload:"hasOtherLegalEvents"`
}

const TableLegalEventsSummary = "legal_events_summary"

// LegalEventFamily names one of the five legal event types and the tables
// its rows live in. All five share the same row shapes.
type LegalEventFamily struct {
	Key             string // sub-object key under legalEvents
	GroupTable      string
	FilingTable     string
	RolePlayerTable string
}

var LegalEventFamilies = []LegalEventFamily{
	{Key: "liens", GroupTable: "liens", FilingTable: "lien_filings", RolePlayerTable: "lien_filing_role_players"},
	{Key: "judgments", GroupTable: "judgments", FilingTable: "judgment_filings", RolePlayerTable: "judgment_filing_role_players"},
	{Key: "suits", GroupTable: "suits", FilingTable: "suit_filings", RolePlayerTable: "suit_filing_role_players"},
	{Key: "bankruptcy", GroupTable: "bankruptcies", FilingTable: "bankruptcy_filings", RolePlayerTable: "bankruptcy_filing_role_players"},
	{Key: "claims", GroupTable: "claims", FilingTable: "claim_filings", RolePlayerTable: "claim_filing_role_players"},
}

// EventGroup is the per-type header row (one per company per legal event
// type). Types that lack some of the fields upstream simply leave them null.
type EventGroup struct {
	ID                   int64            `db:"id"`
	CompanyID            int64            `db:"company_id"`
	MostRecentFilingDate payload.Date     `db:"most_recent_filing_date" payload:"mostRecentFilingDate"`
	OpenCount            *int64           `db:"open_count" payload:"openCount"`
	OpenAmountValue      payload.Decimal  `db:"open_amount_value" payload:"openAmount.value"`
	OpenAmountCurrency   *string          `db:"open_amount_currency" payload:"openAmount.currency"`
	PeriodSummary        payload.JSONText `db:"period_summary_json" payload:"periodSummary"`
}

// Filing is one legal event filing under an EventGroup.
type Filing struct {
	ID                      int64           `db:"id"`
	GroupID                 int64           `db:"group_id"`
	CompanyID               int64           `db:"company_id"`
	IsStopD                 *bool           `db:"is_stop_d" payload:"isStopD"`
	FilingTypeDescription   *string         `db:"filing_type_description" payload:"filingType.description"`
	FilingTypeDNBCode       *int64          `db:"filing_type_dnb_code" payload:"filingType.dnbCode"`
	FilingClassDescription  *string         `db:"filing_class_description" payload:"filingClass.description"`
	FilingClassDNBCode      *int64          `db:"filing_class_dnb_code" payload:"filingClass.dnbCode"`
	FilingDate              payload.Date    `db:"filing_date" payload:"filingDate"`
	ReceivedDate            payload.Date    `db:"received_date" payload:"receivedDate"`
	PublishedDate           payload.Date    `db:"published_date" payload:"publishedDate"`
	StartDate               payload.Date    `db:"start_date" payload:"startDate"`
	EndDate                 payload.Date    `db:"end_date" payload:"endDate"`
	LegalHearingDate        payload.Date    `db:"legal_hearing_date" payload:"legalHearingDate"`
	JurisdictionTypeDesc    *string         `db:"jurisdiction_type_desc" payload:"jurisdictionType.description"`
	JurisdictionTypeDNBCode *int64          `db:"jurisdiction_type_dnb_code" payload:"jurisdictionType.dnbCode"`
	FilingReference         *string         `db:"filing_reference" payload:"filingReference"`
	FilingAmountValue       payload.Decimal `db:"filing_amount_value" payload:"filingAmount.value"`
	FilingAmountCurrency    *string         `db:"filing_amount_currency" payload:"filingAmount.currency"`
	AwardedAmountValue      payload.Decimal `db:"awarded_amount_value" payload:"awardedAmount.value"`
	AwardedAmountCurrency   *string         `db:"awarded_amount_currency" payload:"awardedAmount.currency"`
	OriginalFilingDate      payload.Date    `db:"original_filing_date" payload:"originalFilingDate"`
	FilingChapter           *string         `db:"filing_chapter" payload:"filingChapter"`
	StatusDescription       *string         `db:"status_description" payload:"status.description"`
	StatusDNBCode           *int64          `db:"status_dnb_code" payload:"status.dnbCode"`
	StatusDate              payload.Date    `db:"status_date" payload:"statusDate"`
	CourtName               *string         `db:"court_name" payload:"courtName"`
	CourtTypeDescription    *string         `db:"court_type_description" payload:"courtType.description"`
	Priority                *int64          `db:"priority" payload:"priority"`
}

// RolePlayer is a party named in a filing (debtor, creditor, plaintiff...).
type RolePlayer struct {
	ID                   int64           `db:"id"`
	FilingID             int64           `db:"filing_id"`
	RolePlayerTypeDesc   *string         `db:"role_player_type_desc" payload:"rolePlayerType.description"`
	RolePlayerTypeCode   *int64          `db:"role_player_type_dnb_code" payload:"rolePlayerType.dnbCode"`
	Name                 *string         `db:"name" payload:"name"`
	EmployerName         *string         `db:"employer_name" payload:"employerName"`
	DUNS                 *string         `db:"duns" payload:"duns"`
	FilingAmountValue    payload.Decimal `db:"filing_amount_value" payload:"filingAmount.value"`
	FilingAmountCurrency *string         `db:"filing_amount_currency" payload:"filingAmount.currency"`
	AddressLine1         *string         `db:"address_line1" payload:"address.streetAddress.line1"`
	AddressLine2         *string         `db:"address_line2" payload:"address.streetAddress.line2"`
	City                 *string         `db:"city" payload:"address.addressLocality.name"`
	RegionName           *string         `db:"region_name" payload:"address.addressRegion.name"`
	RegionAbbr           *string         `db:"region_abbr" payload:"address.addressRegion.abbreviatedName"`
	PostalCode           *string         `db:"postal_code" payload:"address.postalCode"`
	CountryName          *string         `db:"country_name" payload:"address.addressCountry.name"`
	CountryISO           *string         `db:"country_iso_alpha2_code" payload:"address.addressCountry.isoAlpha2Code"`
	Telephone            *string         `db:"telephone" payload:"telephone"`
	OperatingStatus      *string         `db:"operating_status" payload:"operatingStatus"`
}
