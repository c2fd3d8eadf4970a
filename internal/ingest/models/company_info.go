package models

import "datablock/internal/ingest/payload"

// CompanyInfo is the identity/profile aggregate for a company. Unlike the
// event summaries it is rebuilt wholesale on every reload, children included,
// because upstream always sends a complete current snapshot.
type CompanyInfo struct {
	ID        int64 `db:"id"`
	CompanyID int64 `db:"company_id"`

	PrimaryName    *string `db:"primary_name" payload:"primaryName"`
	RegisteredName *string `db:"registered_name" payload:"registeredName"`
	CountryISO     *string `db:"country_iso_alpha2_code" payload:"countryISOAlpha2Code"`

	IsFortune1000Listed          *bool `db:"is_fortune_1000_listed" payload:"isFortune1000Listed"`
	IsForbesLargestPrivate       *bool `db:"is_forbes_largest_private_listed" payload:"isForbesLargestPrivateCompaniesListed"`
	IsNonClassifiedEstablishment *bool `db:"is_non_classified_establishment" payload:"isNonClassifiedEstablishment"`
	IsStandalone                 *bool `db:"is_standalone" payload:"isStandalone"`
	IsAgent                      *bool `db:"is_agent" payload:"isAgent"`
	IsImporter                   *bool `db:"is_importer" payload:"isImporter"`
	IsExporter                   *bool `db:"is_exporter" payload:"isExporter"`
	IsSmallBusiness              *bool `db:"is_small_business" payload:"isSmallBusiness"`

	BusinessEntityTypeDesc    *string      `db:"business_entity_type_desc" payload:"businessEntityType.description"`
	BusinessEntityTypeDNBCode *int64       `db:"business_entity_type_dnb_code" payload:"businessEntityType.dnbCode"`
	LegalFormDescription      *string      `db:"legal_form_description" payload:"legalForm.description"`
	LegalFormDNBCode          *int64       `db:"legal_form_dnb_code" payload:"legalForm.dnbCode"`
	LegalFormStartDate        payload.Date `db:"legal_form_start_date" payload:"legalForm.startDate"`

	StartDate            *string      `db:"start_date" payload:"startDate"`
	IncorporatedDate     payload.Date `db:"incorporated_date" payload:"incorporatedDate"`
	ControlOwnershipDate payload.Date `db:"control_ownership_date" payload:"controlOwnershipDate"`
	FirstReportDate      payload.Date `db:"first_report_date" payload:"firstReportDate"`
	FiscalYearEnd        *string      `db:"fiscal_year_end" payload:"fiscalYearEnd"`

	OperatingStatusDescription *string      `db:"operating_status_description" payload:"dunsControlStatus.operatingStatus.description"`
	OperatingStatusDNBCode     *int64       `db:"operating_status_dnb_code" payload:"dunsControlStatus.operatingStatus.dnbCode"`
	OperatingStatusStartDate   payload.Date `db:"operating_status_start_date" payload:"dunsControlStatus.operatingStatus.startDate"`

	IsMarketable            *bool        `db:"is_marketable" payload:"dunsControlStatus.isMarketable"`
	IsMailUndeliverable     *bool        `db:"is_mail_undeliverable" payload:"dunsControlStatus.isMailUndeliverable"`
	IsTelephoneDisconnected *bool        `db:"is_telephone_disconnected" payload:"dunsControlStatus.isTelephoneDisconnected"`
	IsDelisted              *bool        `db:"is_delisted" payload:"dunsControlStatus.isDelisted"`
	IsSelfRequestedDUNS     *bool        `db:"is_self_requested_duns" payload:"dunsControlStatus.isSelfRequestedDUNS"`
	SelfRequestDate         payload.Date `db:"self_request_date" payload:"dunsControlStatus.selfRequestDate"`

	RecordClassDescription *string `db:"record_class_description" payload:"dunsControlStatus.recordClass.description"`
	RecordClassDNBCode     *int64  `db:"record_class_dnb_code" payload:"dunsControlStatus.recordClass.dnbCode"`

	ControlOwnershipTypeDesc    *string `db:"control_ownership_type_desc" payload:"controlOwnershipType.description"`
	ControlOwnershipTypeDNBCode *int64  `db:"control_ownership_type_dnb_code" payload:"controlOwnershipType.dnbCode"`

	PrimaryAddressLine1             *string         `db:"primary_address_line1" payload:"primaryAddress.streetAddress.line1"`
	PrimaryAddressLine2             *string         `db:"primary_address_line2" payload:"primaryAddress.streetAddress.line2"`
	PrimaryAddressLocality          *string         `db:"primary_address_locality" payload:"primaryAddress.addressLocality.name"`
	PrimaryAddressRegion            *string         `db:"primary_address_region" payload:"primaryAddress.addressRegion.name"`
	PrimaryAddressRegionAbbr        *string         `db:"primary_address_region_abbr" payload:"primaryAddress.addressRegion.abbreviatedName"`
	PrimaryAddressPostalCode        *string         `db:"primary_address_postal_code" payload:"primaryAddress.postalCode"`
	PrimaryAddressCountry           *string         `db:"primary_address_country" payload:"primaryAddress.addressCountry.name"`
	PrimaryAddressCountryISO        *string         `db:"primary_address_country_iso" payload:"primaryAddress.addressCountry.isoAlpha2Code"`
	PrimaryAddressContinentalRegion *string         `db:"primary_address_continental_region" payload:"primaryAddress.continentalRegion.name"`
	PrimaryAddressLatitude          payload.Decimal `db:"primary_address_latitude" payload:"primaryAddress.latitude"`
	PrimaryAddressLongitude         payload.Decimal `db:"primary_address_longitude" payload:"primaryAddress.longitude"`
	PrimaryAddressIsManufacturing   *bool           `db:"primary_address_is_manufacturing" payload:"primaryAddress.isManufacturingLocation"`
	PrimaryAddressIsRegistered      *bool           `db:"primary_address_is_registered" payload:"primaryAddress.isRegisteredAddress"`

	MailingAddressLine1      *string `db:"mailing_address_line1" payload:"mailingAddress.streetAddress.line1"`
	MailingAddressLine2      *string `db:"mailing_address_line2" payload:"mailingAddress.streetAddress.line2"`
	MailingAddressLocality   *string `db:"mailing_address_locality" payload:"mailingAddress.addressLocality.name"`
	MailingAddressRegion     *string `db:"mailing_address_region" payload:"mailingAddress.addressRegion.name"`
	MailingAddressPostalCode *string `db:"mailing_address_postal_code" payload:"mailingAddress.postalCode"`
	MailingAddressCountry    *string `db:"mailing_address_country" payload:"mailingAddress.addressCountry.name"`
	MailingAddressCountryISO *string `db:"mailing_address_country_iso" payload:"mailingAddress.addressCountry.isoAlpha2Code"`

	RegisteredAddressLine1      *string `db:"registered_address_line1" payload:"registeredAddress.streetAddress.line1"`
	RegisteredAddressLine2      *string `db:"registered_address_line2" payload:"registeredAddress.streetAddress.line2"`
	RegisteredAddressLocality   *string `db:"registered_address_locality" payload:"registeredAddress.addressLocality.name"`
	RegisteredAddressRegion     *string `db:"registered_address_region" payload:"registeredAddress.addressRegion.name"`
	RegisteredAddressPostalCode *string `db:"registered_address_postal_code" payload:"registeredAddress.postalCode"`
	RegisteredAddressCountry    *string `db:"registered_address_country" payload:"registeredAddress.addressCountry.name"`
	RegisteredAddressCountryISO *string `db:"registered_address_country_iso" payload:"registeredAddress.addressCountry.isoAlpha2Code"`

	PreferredLanguageDesc    *string `db:"preferred_language_desc" payload:"preferredLanguage.description"`
	PreferredLanguageDNBCode *int64  `db:"preferred_language_dnb_code" payload:"preferredLanguage.dnbCode"`
	DefaultCurrency          *string `db:"default_currency" payload:"defaultCurrency"`
	LegalEntityIdentifier    *string `db:"legal_entity_identifier" payload:"legalEntityIdentifier"`

	OrganizationSizeCategoryDesc    *string `db:"organization_size_category_desc" payload:"organizationSizeCategory.description"`
	OrganizationSizeCategoryDNBCode *int64  `db:"organization_size_category_dnb_code" payload:"organizationSizeCategory.dnbCode"`
}

const TableCompanyInfo = "company_info"

// IndustryCode is one industry classification (SIC, NAICS, ...).
type IndustryCode struct {
	ID              int64   `db:"id"`
	CompanyInfoID   int64   `db:"company_info_id"`
	Code            *string `db:"code" payload:"code"`
	Description     *string `db:"description" payload:"description"`
	TypeDescription *string `db:"type_description" payload:"typeDescription"`
	TypeDNBCode     *int64  `db:"type_dnb_code" payload:"typeDnBCode"`
	Priority        *int64  `db:"priority" payload:"priority"`
}

// TradeStyleName is a DBA / alternate trading name.
type TradeStyleName struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	Name          *string `db:"name" payload:"name"`
	Priority      *int64  `db:"priority" payload:"priority"`
}

// MultilingualName is a company name in a specific language and script.
// NameType records which upstream collection it came from.
type MultilingualName struct {
	ID                   int64   `db:"id"`
	CompanyInfoID        int64   `db:"company_info_id"`
	Name                 *string `db:"name" payload:"name"`
	NameType             *string `db:"name_type"`
	LanguageDescription  *string `db:"language_description" payload:"language.description"`
	LanguageDNBCode      *int64  `db:"language_dnb_code" payload:"language.dnbCode"`
	WritingScriptDesc    *string `db:"writing_script_desc" payload:"writingScript.description"`
	WritingScriptDNBCode *int64  `db:"writing_script_dnb_code" payload:"writingScript.dnbCode"`
}

// Multilingual name collections and the name_type value stored for each.
const (
	NameTypePrimary    = "primary"
	NameTypeRegistered = "registered"
	NameTypeTradeStyle = "tradestyle"
)

// WebsiteAddress is a company web presence entry.
type WebsiteAddress struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	URL           *string `db:"url" payload:"url"`
	DomainName    *string `db:"domain_name" payload:"domainName"`
}

// TelephoneNumber is one phone contact.
type TelephoneNumber struct {
	ID                       int64   `db:"id"`
	CompanyInfoID            int64   `db:"company_info_id"`
	TelephoneNumber          *string `db:"telephone_number" payload:"telephoneNumber"`
	InternationalDialingCode *string `db:"international_dialing_code" payload:"internationalDialingCode"`
	IsUnreachable            *bool   `db:"is_unreachable" payload:"isUnreachable"`
}

// EmailAddress is one email contact.
type EmailAddress struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	Email         *string `db:"email" payload:"address"`
}

// RegistrationNumber is a business registration (tax ID, chamber number...).
type RegistrationNumber struct {
	ID                   int64   `db:"id"`
	CompanyInfoID        int64   `db:"company_info_id"`
	RegistrationNumber   *string `db:"registration_number" payload:"registrationNumber"`
	TypeDescription      *string `db:"type_description" payload:"typeDescription"`
	TypeDNBCode          *int64  `db:"type_dnb_code" payload:"typeDnBCode"`
	IsPreferred          *bool   `db:"is_preferred" payload:"isPreferredRegistrationNumber"`
	RegistrationLocation *string `db:"registration_location" payload:"registrationLocation"`
}

// StockExchange is one exchange listing.
type StockExchange struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	ExchangeName  *string `db:"stock_exchange_name" payload:"stockExchangeName"`
	ExchangeCode  *string `db:"stock_exchange_code" payload:"stockExchangeCode"`
	TickerSymbol  *string `db:"ticker_symbol" payload:"tickerSymbol"`
	CountryISO    *string `db:"country_iso_alpha2_code" payload:"countryISOAlpha2Code"`
}

// Bank is one banking relationship.
type Bank struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	BankName      *string `db:"bank_name" payload:"name"`
	BankDUNS      *string `db:"bank_duns" payload:"duns"`
}

// CompanyActivity is a free-text business activity description.
type CompanyActivity struct {
	ID                  int64   `db:"id"`
	CompanyInfoID       int64   `db:"company_info_id"`
	Description         *string `db:"description" payload:"description"`
	LanguageDescription *string `db:"language_description" payload:"language.description"`
	LanguageDNBCode     *int64  `db:"language_dnb_code" payload:"language.dnbCode"`
}

// EmployeeFigure is one employee-count observation with its scope and
// reliability qualifiers.
type EmployeeFigure struct {
	ID                   int64        `db:"id"`
	CompanyInfoID        int64        `db:"company_info_id"`
	Value                *int64       `db:"value" payload:"value"`
	MinimumValue         *int64       `db:"minimum_value" payload:"minimumValue"`
	MaximumValue         *int64       `db:"maximum_value" payload:"maximumValue"`
	FiguresDate          payload.Date `db:"employee_figures_date" payload:"employeeFiguresDate"`
	InfoScopeDescription *string      `db:"information_scope_description" payload:"informationScopeDescription"`
	InfoScopeDNBCode     *int64       `db:"information_scope_dnb_code" payload:"informationScopeDnBCode"`
	ReliabilityDesc      *string      `db:"reliability_description" payload:"reliabilityDescription"`
	ReliabilityDNBCode   *int64       `db:"reliability_dnb_code" payload:"reliabilityDnBCode"`
}

// UNSPSCCode is a UN standard products and services classification.
type UNSPSCCode struct {
	ID            int64   `db:"id"`
	CompanyInfoID int64   `db:"company_info_id"`
	Code          *string `db:"code" payload:"code"`
	Description   *string `db:"description" payload:"description"`
	Priority      *int64  `db:"priority" payload:"priority"`
}

// Company info child tables, deleted and rebuilt with their parent.
const (
	TableIndustryCodes       = "industry_codes"
	TableTradeStyleNames     = "trade_style_names"
	TableMultilingualNames   = "multilingual_names"
	TableWebsiteAddresses    = "website_addresses"
	TableTelephoneNumbers    = "telephone_numbers"
	TableEmailAddresses      = "email_addresses"
	TableRegistrationNumbers = "registration_numbers"
	TableStockExchanges      = "stock_exchanges"
	TableBanks               = "banks"
	TableCompanyActivities   = "company_activities"
	TableEmployeeFigures     = "employee_figures"
	TableUNSPSCCodes         = "unspsc_codes"
)
