package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"datablock/internal/ingest/payload"
	"datablock/internal/ingest/store"
	"datablock/internal/platform/metrics"
)

// Loader ingests batches of documents. A batch is atomic: every document is
// mapped inside one transaction, and any failure rolls the whole batch back.
type Loader struct {
	store   *store.Store
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewLoader(st *store.Store, log *slog.Logger, m *metrics.Metrics) *Loader {
	return &Loader{store: st, log: log, metrics: m}
}

// Load ingests docs as one atomic batch.
func (l *Loader) Load(ctx context.Context, docs ...Document) error {
	batchLog := l.log.With("batch_id", uuid.NewString())
	start := time.Now()

	err := l.store.RunInTx(ctx, func(tx *store.Tx) error {
		for i, doc := range docs {
			if err := l.loadOne(ctx, tx, batchLog, doc); err != nil {
				batchLog.Error("batch aborted", "document", i, "error", err)
				return err
			}
		}
		return nil
	})

	l.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		l.metrics.BatchesRolledBack.Inc()
		return err
	}

	l.metrics.BatchesCommitted.Inc()
	batchLog.Info("batch committed", "documents", len(docs), "elapsed", time.Since(start))
	return nil
}

// LoadFiles parses the given JSON files and ingests them as one batch.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) error {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		doc, err := ReadDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	return l.Load(ctx, docs...)
}

func (l *Loader) loadOne(ctx context.Context, tx *store.Tx, log *slog.Logger, doc Document) error {
	block := Route(doc)
	if block == BlockUnknown {
		log.Warn("skipping document with unrecognized block", "block_ids", doc.BlockIDs())
		l.metrics.DocumentsSkipped.Inc()
		return nil
	}

	org := doc.Organization()
	company, err := resolveCompany(ctx, tx, org)
	if err != nil {
		return err
	}

	switch block {
	case BlockCompanyInfo:
		err = mapCompanyInfo(ctx, tx, company.ID, org)
	case BlockFinancials:
		err = mapFinancials(ctx, tx, company.ID, org)
	case BlockEventFilings:
		err = l.mapEventFilings(ctx, tx, company.ID, org)
	}
	if err != nil {
		return err
	}

	l.metrics.DocumentsIngested.WithLabelValues(block.String()).Inc()
	log.Info("document ingested", "duns", company.DUNS, "block", block.String())
	return nil
}

// mapEventFilings fans one events document out to its four domains. Each
// domain is mapped only when its sub-object is present and non-empty;
// domains the payload does not mention are left untouched.
func (l *Loader) mapEventFilings(ctx context.Context, tx *store.Tx, companyID int64, org map[string]any) error {
	if legal := payload.Map(org, "legalEvents"); len(legal) > 0 {
		if err := mapLegalEvents(ctx, tx, companyID, legal); err != nil {
			return err
		}
	}
	if awards := payload.Map(org, "awards"); len(awards) > 0 {
		if err := mapAwards(ctx, tx, companyID, awards); err != nil {
			return err
		}
	}
	if exclusions := payload.Map(org, "exclusions"); len(exclusions) > 0 {
		if err := mapExclusions(ctx, tx, companyID, exclusions); err != nil {
			return err
		}
	}
	if events := payload.Map(org, "significantEvents"); len(events) > 0 {
		if err := mapSignificantEvents(ctx, tx, companyID, events); err != nil {
			return err
		}
	}
	return nil
}
