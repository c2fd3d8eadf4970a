// Package ingest turns parsed data block documents into relational rows.
// One batch of documents is one transaction: every document is routed to the
// mapper for its block, which replaces that domain's rows for the owning
// company as a whole.
package ingest

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"datablock/internal/ingest/payload"
	domainerrors "datablock/pkg/domain-errors"
)

// Document is one parsed data block response.
type Document map[string]any

// DecodeDocument parses a raw document. Numbers keep their literal form so
// monetary values survive the trip untouched.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeBadRequest, "decode document")
	}
	return d, nil
}

// DecodeDocuments parses a body holding either a single document or a JSON
// array of documents.
func DecodeDocuments(r io.Reader) ([]Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeBadRequest, "read documents")
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var docs []Document
		if err := dec.Decode(&docs); err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeBadRequest, "decode documents")
		}
		return docs, nil
	}

	d, err := DecodeDocument(bytes.NewReader(trimmed))
	if err != nil {
		return nil, err
	}
	return []Document{d}, nil
}

// ReadDocument loads and parses a document file.
func ReadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeBadRequest, "open document")
	}
	defer f.Close()
	return DecodeDocument(f)
}

// Organization returns the document's organization payload, which owns the
// identifier and every domain sub-object.
func (d Document) Organization() map[string]any {
	return payload.Map(map[string]any(d), "organization")
}

// BlockIDs returns the block identifiers declared in the inquiry metadata.
func (d Document) BlockIDs() []string {
	var ids []string
	for _, v := range payload.List(map[string]any(d), "inquiryDetail", "blockIDs") {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}
