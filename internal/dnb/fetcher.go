package dnb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	domainerrors "datablock/pkg/domain-errors"
	platformstrings "datablock/pkg/platform/strings"
)

// fetchConcurrency bounds how many DUNS are fetched in parallel. The rate
// limiter still governs the actual request rate.
const fetchConcurrency = 4

// Fetcher pulls data blocks for DUNS numbers and archives the raw responses
// on disk so they can be ingested later or replayed.
type Fetcher struct {
	client    *Client
	outputDir string
	logger    *slog.Logger
}

func NewFetcher(client *Client, outputDir string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:    client,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Fetch retrieves one inquiry and writes the raw response to the archive
// directory, returning the file path.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (string, error) {
	_, raw, err := f.client.GetDataBlocks(ctx, req)
	if err != nil {
		return "", err
	}
	return f.save(req.DUNS, req.BlockIDs, raw)
}

// FetchMany retrieves the same blocks for several DUNS numbers concurrently.
// Duplicate DUNS are fetched once. The first failure cancels the remaining
// fetches; files already written stay on disk.
func (f *Fetcher) FetchMany(ctx context.Context, dunsNumbers []string, blockIDs []string) ([]string, error) {
	dunsNumbers = platformstrings.DedupeAndTrim(dunsNumbers)
	blockIDs = platformstrings.DedupeAndTrim(blockIDs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	var mu sync.Mutex
	paths := make([]string, 0, len(dunsNumbers))

	for _, duns := range dunsNumbers {
		g.Go(func() error {
			path, err := f.Fetch(ctx, Request{DUNS: duns, BlockIDs: blockIDs})
			if err != nil {
				return fmt.Errorf("duns %s: %w", duns, err)
			}
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()

			f.logger.Info("fetched data blocks", "duns", duns, "path", path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return paths, err
	}
	return paths, nil
}

// save writes a raw response as <duns>_<blocks>_<timestamp>.json in the
// archive directory.
func (f *Fetcher) save(duns string, blockIDs []string, raw []byte) (string, error) {
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "create archive directory")
	}

	names := make([]string, 0, len(blockIDs))
	for _, id := range blockIDs {
		name, _, _ := strings.Cut(id, "_")
		names = append(names, name)
	}
	filename := fmt.Sprintf("%s_%s_%s.json",
		duns, strings.Join(names, "_"), time.Now().Format("20060102_150405"))
	path := filepath.Join(f.outputDir, filename)

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "write archive file")
	}
	return path, nil
}
