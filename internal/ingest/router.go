package ingest

import "strings"

// Block identifies which domain mapper handles a document.
type Block int

const (
	BlockUnknown Block = iota
	BlockCompanyInfo
	BlockFinancials
	BlockEventFilings
)

func (b Block) String() string {
	switch b {
	case BlockCompanyInfo:
		return "companyinfo"
	case BlockFinancials:
		return "companyfinancial"
	case BlockEventFilings:
		return "eventfilings"
	default:
		return "unknown"
	}
}

// Route picks the mapper domain for a document from its declared block
// identifiers. Only the first identifier counts, matched case-insensitively
// by substring; documents with no or unrecognized identifiers route to
// BlockUnknown and are skipped, not failed.
func Route(doc Document) Block {
	ids := doc.BlockIDs()
	if len(ids) == 0 {
		return BlockUnknown
	}

	id := strings.ToLower(ids[0])
	switch {
	case strings.Contains(id, "companyinfo"):
		return BlockCompanyInfo
	case strings.Contains(id, "companyfinancial"):
		return BlockFinancials
	case strings.Contains(id, "eventfiling"):
		return BlockEventFilings
	default:
		return BlockUnknown
	}
}
