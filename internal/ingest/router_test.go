package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Block
	}{
		{
			name: "company info",
			raw:  `{"inquiryDetail": {"blockIDs": ["companyinfo_L2_v1"]}}`,
			want: BlockCompanyInfo,
		},
		{
			name: "financials",
			raw:  `{"inquiryDetail": {"blockIDs": ["companyfinancial_L1_v1"]}}`,
			want: BlockFinancials,
		},
		{
			name: "event filings",
			raw:  `{"inquiryDetail": {"blockIDs": ["eventfilings_L3_v1"]}}`,
			want: BlockEventFilings,
		},
		{
			name: "mixed case",
			raw:  `{"inquiryDetail": {"blockIDs": ["CompanyInfo_L2_V1"]}}`,
			want: BlockCompanyInfo,
		},
		{
			name: "only the first identifier counts",
			raw:  `{"inquiryDetail": {"blockIDs": ["ownershipinsights_L1_v1", "companyinfo_L2_v1"]}}`,
			want: BlockUnknown,
		},
		{
			name: "unrecognized",
			raw:  `{"inquiryDetail": {"blockIDs": ["hierarchyconnections_L1_v1"]}}`,
			want: BlockUnknown,
		},
		{
			name: "empty list",
			raw:  `{"inquiryDetail": {"blockIDs": []}}`,
			want: BlockUnknown,
		},
		{
			name: "missing inquiry detail",
			raw:  `{"organization": {"duns": "123456789"}}`,
			want: BlockUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument(strings.NewReader(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Route(doc))
		})
	}
}

func TestBlockString(t *testing.T) {
	assert.Equal(t, "companyinfo", BlockCompanyInfo.String())
	assert.Equal(t, "companyfinancial", BlockFinancials.String())
	assert.Equal(t, "eventfilings", BlockEventFilings.String())
	assert.Equal(t, "unknown", BlockUnknown.String())
}

func TestDecodeDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{"organization":`))
	require.Error(t, err)
}
