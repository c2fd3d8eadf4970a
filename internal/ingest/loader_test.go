package ingest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
	"datablock/internal/platform/database"
	"datablock/internal/platform/metrics"
	domainerrors "datablock/pkg/domain-errors"
)

const companyInfoDoc = `{
  "inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"], "duns": "123456789"},
  "organization": {
    "duns": "123456789",
    "primaryName": "Acme Corp",
    "countryISOAlpha2Code": "US",
    "isStandalone": true,
    "isSmallBusiness": false,
    "incorporatedDate": "1998-07-04",
    "fiscalYearEnd": "December",
    "businessEntityType": {"description": "Corporation", "dnbCode": 451},
    "primaryAddress": {
      "streetAddress": {"line1": "1 Main St"},
      "addressLocality": {"name": "Springfield"},
      "addressRegion": {"name": "Illinois", "abbreviatedName": "IL"},
      "postalCode": "62701",
      "addressCountry": {"isoAlpha2Code": "US"}
    },
    "industryCodes": [
      {"code": "7372", "description": "Prepackaged software", "typeDescription": "US SIC V4", "typeDnBCode": 399, "priority": 1},
      {"code": "511210", "description": "Software publishers", "typeDescription": "NAICS", "typeDnBCode": 30832, "priority": 1}
    ],
    "tradeStyleNames": [{"name": "Acme", "priority": 1}],
    "telephone": [{"telephoneNumber": "2175550100", "internationalDialingCode": "1"}],
    "numberOfEmployees": [{"value": 250, "informationScopeDescription": "Consolidated", "informationScopeDnBCode": 9067}],
    "multilingualPrimaryNames": [{"name": "Acme Corp", "language": {"description": "English", "dnbCode": 39}}]
  }
}`

const eventFilingsDoc = `{
  "inquiryDetail": {"blockIDs": ["eventfilings_L3_v1"], "duns": "123456789"},
  "organization": {
    "duns": "123456789",
    "primaryName": "Acme Corp",
    "countryISOAlpha2Code": "US",
    "legalEvents": {
      "hasLegalEvents": true,
      "hasLiens": true,
      "hasSuits": false,
      "liens": {
        "mostRecentFilingDate": "2023-05-10",
        "openCount": 2,
        "openAmount": {"value": 1200.50, "currency": "USD"},
        "periodSummary": [{"year": 2023, "filingsCount": 2}],
        "filings": [
          {
            "isStopD": false,
            "filingType": {"description": "State tax lien", "dnbCode": 1143},
            "filingDate": "2023-05-10",
            "filingAmount": {"value": 700.25, "currency": "USD"},
            "status": {"description": "Open", "dnbCode": 17716},
            "statusDate": "2023-05-12",
            "rolePlayers": [
              {
                "rolePlayerType": {"description": "Debtor", "dnbCode": 5442},
                "name": "Acme Corp",
                "duns": "123456789",
                "address": {
                  "streetAddress": {"line1": "1 Main St"},
                  "addressLocality": {"name": "Springfield"},
                  "addressRegion": {"name": "Illinois", "abbreviatedName": "IL"},
                  "postalCode": "62701",
                  "addressCountry": {"isoAlpha2Code": "US"}
                }
              }
            ]
          },
          {
            "filingType": {"description": "Federal tax lien", "dnbCode": 1141},
            "filingDate": "2022-11",
            "rolePlayers": []
          }
        ]
      },
      "suits": {"filings": []}
    },
    "awards": {
      "hasContracts": true,
      "totalOpenContractsCount": 1,
      "obligatedContractsAmount": {"value": 50000, "currency": "USD"},
      "mostRecentContractDate": "2024-01-15",
      "contracts": [
        {
          "awardID": "CONT-0001",
          "contractType": {"code": "A", "description": "BPA Call"},
          "baseAndAllOptionsAmount": {"value": 50000, "currency": "USD"},
          "fundingAgency": {"code": "7012", "description": "Defense Logistics Agency"},
          "actions": [
            {"actionDate": "2024-01-15", "actionFiscalYear": "2024", "federalFundingAmount": {"value": 25000, "currency": "USD"}}
          ],
          "characteristics": [{"description": "Small business set-aside", "dnbCode": 30}]
        }
      ]
    },
    "exclusions": {
      "hasActiveExclusions": true,
      "activeExclusionsCount": 1,
      "activeExclusions": [
        {"samRecordNumber": "S4MR3C0RD", "cageCode": "1ABC2", "classificationType": {"description": "Firm"}, "agencyName": "EPA", "effectiveDate": "2023-09-01"}
      ]
    },
    "significantEvents": {
      "hasSignificantEvents": true,
      "hasFireOccurred": true,
      "events": [
        {
          "eventDate": "2023-08-20",
          "eventType": {"description": "Fire", "dnbCode": 11},
          "impactAmount": {"value": 75000.00, "currency": "USD"},
          "textEntry": [{"text": "Fire damaged the main warehouse.", "priority": 1}]
        }
      ]
    }
  }
}`

const financialDoc = `{
  "inquiryDetail": {"blockIDs": ["companyfinancial_L1_v1"], "duns": "123456789"},
  "organization": {
    "duns": "123456789",
    "primaryName": "Acme Corp",
    "latestFiscalFinancials": {
      "financialStatementToDate": "2023-12-31",
      "financialStatementDuration": "P12M",
      "currency": "USD",
      "units": "SingleUnits",
      "isFiscal": true,
      "isAudited": true,
      "informationScope": {"description": "Consolidated", "dnbCode": 9067},
      "overview": {
        "salesRevenue": 1000000.55,
        "totalAssets": 500000,
        "netWorth": 200000,
        "currentRatio": 1.8765
      },
      "balanceSheet": {
        "assets": {
          "statementItems": [
            {"itemKey": {"description": "Cash", "dnbCode": 310}, "value": 1500.75, "priority": 1, "itemGroupLevel": 10}
          ]
        },
        "liabilities": {
          "statementItems": [
            {"itemKey": {"description": "Accounts Payable", "dnbCode": 410}, "value": 900.00, "priority": 1, "itemGroupLevel": 10}
          ]
        }
      },
      "profitAndLossStatement": {
        "statementItems": [
          {"itemKey": {"description": "Net Sales", "dnbCode": 510}, "value": 1000000.55, "priority": 1, "itemGroupLevel": 10}
        ]
      },
      "financialRatios": {
        "statementItems": [
          {"itemKey": {"description": "Current Ratio", "dnbCode": 2834}, "value": 1.8765, "relativeIndustryRank": 2, "priority": 1}
        ]
      }
    },
    "otherFinancials": [
      {"financialStatementToDate": "2022-12-31", "currency": "USD"}
    ]
  }
}`

type LoaderSuite struct {
	suite.Suite
	ctx    context.Context
	db     *sqlx.DB
	loader *Loader
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) SetupTest() {
	db, err := database.Open(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))

	s.ctx = context.Background()
	s.db = db
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.loader = NewLoader(store.New(db), log, metrics.NewForTest())
}

func (s *LoaderSuite) TearDownTest() {
	s.db.Close()
}

func (s *LoaderSuite) doc(raw string) Document {
	d, err := DecodeDocument(strings.NewReader(raw))
	s.Require().NoError(err)
	return d
}

func (s *LoaderSuite) count(table string) int {
	var n int
	s.Require().NoError(s.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (s *LoaderSuite) TestCompanyInfoDocument() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(companyInfoDoc)))

	s.Equal(1, s.count("companies"))
	s.Equal(1, s.count("company_info"))
	s.Equal(2, s.count("industry_codes"))
	s.Equal(1, s.count("trade_style_names"))
	s.Equal(1, s.count("telephone_numbers"))
	s.Equal(1, s.count("employee_figures"))
	s.Equal(1, s.count("multilingual_names"))

	// Other domains stay untouched.
	s.Zero(s.count("financial_statements"))
	s.Zero(s.count("liens"))
	s.Zero(s.count("legal_events_summary"))

	var name, city string
	s.Require().NoError(s.db.Get(&name, "SELECT primary_name FROM companies WHERE duns = '123456789'"))
	s.Equal("Acme Corp", name)
	s.Require().NoError(s.db.Get(&city, "SELECT primary_address_locality FROM company_info"))
	s.Equal("Springfield", city)
}

func (s *LoaderSuite) TestMissingDUNSAbortsBatch() {
	err := s.loader.Load(s.ctx, s.doc(`{
		"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]},
		"organization": {"primaryName": "No Identifier Inc"}
	}`))

	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeValidation))
	s.Zero(s.count("companies"))
}

func (s *LoaderSuite) TestBatchAtomicity() {
	bad := s.doc(`{
		"inquiryDetail": {"blockIDs": ["eventfilings_L3_v1"]},
		"organization": {"duns": ""}
	}`)

	err := s.loader.Load(s.ctx, s.doc(companyInfoDoc), s.doc(eventFilingsDoc), bad)
	s.Require().Error(err)

	// Nothing from the earlier, clean documents survives.
	s.Zero(s.count("companies"))
	s.Zero(s.count("company_info"))
	s.Zero(s.count("lien_filings"))
}

func (s *LoaderSuite) TestUnknownBlockIsSkipped() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(`{
		"inquiryDetail": {"blockIDs": ["ownershipinsights_L1_v1"]},
		"organization": {"duns": "123456789"}
	}`)))
	s.Zero(s.count("companies"))

	s.Require().NoError(s.loader.Load(s.ctx, s.doc(`{"organization": {"duns": "123456789"}}`)))
	s.Zero(s.count("companies"))
}

func (s *LoaderSuite) TestLegalEvents() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))

	s.Equal(1, s.count("legal_events_summary"))
	s.Equal(1, s.count("liens"))
	s.Equal(2, s.count("lien_filings"))
	s.Equal(1, s.count("lien_filing_role_players"))

	// Present with empty filings: header row, zero children.
	s.Equal(1, s.count("suits"))
	s.Zero(s.count("suit_filings"))

	// Entirely absent: no row at all.
	s.Zero(s.count("judgments"))
	s.Zero(s.count("bankruptcies"))
	s.Zero(s.count("claims"))

	var amount string
	s.Require().NoError(s.db.Get(&amount, "SELECT open_amount_value FROM liens"))
	s.Equal("1200.50", amount)

	var filingDate payload.Date
	s.Require().NoError(s.db.Get(&filingDate,
		"SELECT filing_date FROM lien_filings WHERE filing_type_dnb_code = 1141"))
	s.Require().True(filingDate.Valid)
	s.Equal("2022-11-01", filingDate.Time.Format("2006-01-02"), "year-month dates snap to the first")
}

func (s *LoaderSuite) TestAwardsExclusionsAndSignificantEvents() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))

	s.Equal(1, s.count("awards_summary"))
	s.Equal(1, s.count("contracts"))
	s.Equal(1, s.count("contract_actions"))
	s.Equal(1, s.count("contract_characteristics"))

	s.Equal(1, s.count("exclusions_summary"))
	s.Equal(1, s.count("active_exclusions"))
	s.Zero(s.count("inactive_exclusions"))

	s.Equal(1, s.count("significant_events_summary"))
	s.Equal(1, s.count("significant_events"))
	s.Equal(1, s.count("significant_event_text_entries"))

	var agency string
	s.Require().NoError(s.db.Get(&agency, "SELECT funding_agency_description FROM contracts"))
	s.Equal("Defense Logistics Agency", agency)
}

func (s *LoaderSuite) TestFinancials() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(financialDoc)))

	s.Equal(2, s.count("financial_statements"))
	s.Equal(1, s.count("financial_overview"))
	s.Equal(2, s.count("balance_sheet_items"))
	s.Equal(1, s.count("profit_loss_items"))
	s.Zero(s.count("cash_flow_items"))
	s.Equal(1, s.count("financial_ratios"))

	var n int
	s.Require().NoError(s.db.Get(&n,
		"SELECT COUNT(*) FROM financial_statements WHERE statement_type = 'fiscal_latest'"))
	s.Equal(1, n)

	var revenue string
	s.Require().NoError(s.db.Get(&revenue, "SELECT sales_revenue FROM financial_overview"))
	s.Equal("1000000.55", revenue, "amounts round-trip without float drift")

	var section string
	s.Require().NoError(s.db.Get(&section,
		"SELECT section FROM balance_sheet_items WHERE item_dnb_code = 410"))
	s.Equal("liabilities", section)
}

func (s *LoaderSuite) TestIdempotentReload() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))

	s.Equal(1, s.count("companies"))
	s.Equal(1, s.count("legal_events_summary"))
	s.Equal(1, s.count("liens"))
	s.Equal(2, s.count("lien_filings"))
	s.Equal(1, s.count("lien_filing_role_players"))
	s.Equal(1, s.count("contracts"))
	s.Equal(1, s.count("active_exclusions"))
	s.Equal(1, s.count("significant_events"))
}

func (s *LoaderSuite) TestExistingCompanyIsUpdatedNotDuplicated() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(companyInfoDoc)))

	renamed := strings.Replace(companyInfoDoc, "Acme Corp", "Acme Holdings", 1)
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(renamed)))

	s.Equal(1, s.count("companies"))
	var name string
	s.Require().NoError(s.db.Get(&name, "SELECT primary_name FROM companies WHERE duns = '123456789'"))
	s.Equal("Acme Holdings", name)
}

func (s *LoaderSuite) TestNullNameKeepsExistingName() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(companyInfoDoc)))

	// A reload carrying an explicit null never erases display fields the
	// store already holds.
	nulled := strings.Replace(companyInfoDoc, `"primaryName": "Acme Corp"`, `"primaryName": null`, 1)
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(nulled)))

	s.Equal(1, s.count("companies"))
	var name string
	s.Require().NoError(s.db.Get(&name, "SELECT primary_name FROM companies WHERE duns = '123456789'"))
	s.Equal("Acme Corp", name)
}

func (s *LoaderSuite) TestDomainIsolation() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(financialDoc)))
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))

	// Reloading events never touches the financial rows, and vice versa.
	s.Equal(2, s.count("financial_statements"))
	s.Equal(2, s.count("balance_sheet_items"))

	s.Require().NoError(s.loader.Load(s.ctx, s.doc(financialDoc)))
	s.Equal(2, s.count("lien_filings"))
	s.Equal(1, s.count("contracts"))
}

func (s *LoaderSuite) TestEventDocumentWithoutSubObjectsLeavesDomainsAlone() {
	s.Require().NoError(s.loader.Load(s.ctx, s.doc(eventFilingsDoc)))

	// A later events document carrying only legal events must not clear
	// awards, exclusions, or significant events.
	onlyLegal := s.doc(`{
		"inquiryDetail": {"blockIDs": ["eventfilings_L3_v1"]},
		"organization": {
			"duns": "123456789",
			"legalEvents": {"hasLegalEvents": false, "liens": {"filings": []}}
		}
	}`)
	s.Require().NoError(s.loader.Load(s.ctx, onlyLegal))

	s.Equal(1, s.count("liens"))
	s.Zero(s.count("lien_filings"))
	s.Equal(1, s.count("contracts"))
	s.Equal(1, s.count("active_exclusions"))
	s.Equal(1, s.count("significant_events"))
}
