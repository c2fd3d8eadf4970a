// Package dnb is the client for the D&B Direct+ data blocks API. It owns
// token acquisition, request throttling, and persisting raw responses for
// later ingestion.
package dnb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"datablock/internal/ingest"
	"datablock/internal/platform/config"
	"datablock/internal/platform/metrics"
	domainerrors "datablock/pkg/domain-errors"
)

// Block identifiers for the supported data blocks.
const (
	BlockIDCompanyInfo  = "companyinfo_L2_v1"
	BlockIDEventFilings = "eventfilings_L3_v1"
	BlockIDFinancials   = "companyfinancial_L1_v1"
)

// tokenSkew renews the bearer token this long before its reported expiry.
const tokenSkew = time.Minute

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	maxRetries int
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Metrics

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.APIConfig, logger *slog.Logger, m *metrics.Metrics) *Client {
	perSecond := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.Key,
		apiSecret:  cfg.Secret,
		maxRetries: cfg.MaxRetries,
		limiter:    rate.NewLimiter(perSecond, 1),
		logger:     logger,
		metrics:    m,
	}
}

// Request describes one data block fetch.
type Request struct {
	DUNS     string
	BlockIDs []string
	// TradeUp redirects the inquiry to the headquarters record; valid
	// values are "hq" and "domhq".
	TradeUp string
	// CustomerReference is echoed back in billing reports, up to 240 chars.
	CustomerReference string
}

func (r Request) validate() error {
	if len(r.DUNS) != 9 {
		return domainerrors.New(domainerrors.CodeBadRequest, "duns must be 9 characters")
	}
	if len(r.BlockIDs) == 0 {
		return domainerrors.New(domainerrors.CodeBadRequest, "at least one block ID is required")
	}
	if r.TradeUp != "" && r.TradeUp != "hq" && r.TradeUp != "domhq" {
		return domainerrors.New(domainerrors.CodeBadRequest, `tradeUp must be "hq" or "domhq"`)
	}
	if len(r.CustomerReference) > 240 {
		return domainerrors.New(domainerrors.CodeBadRequest, "customerReference must be 240 characters or less")
	}
	return nil
}

// GetDataBlocks fetches the requested blocks for one DUNS. The raw response
// bytes come back alongside the parsed document so callers can archive them
// byte for byte.
func (c *Client) GetDataBlocks(ctx context.Context, req Request) (ingest.Document, []byte, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, domainerrors.Wrap(err, domainerrors.CodeTimeout, "rate limiter wait cancelled")
	}

	raw, err := c.fetch(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	doc, err := ingest.DecodeDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "malformed data block response")
	}
	return doc, raw, nil
}

// GetCompanyInfo fetches the company information block.
func (c *Client) GetCompanyInfo(ctx context.Context, duns string) (ingest.Document, []byte, error) {
	return c.GetDataBlocks(ctx, Request{DUNS: duns, BlockIDs: []string{BlockIDCompanyInfo}})
}

// GetEventsFilings fetches the events and filings block.
func (c *Client) GetEventsFilings(ctx context.Context, duns string) (ingest.Document, []byte, error) {
	return c.GetDataBlocks(ctx, Request{DUNS: duns, BlockIDs: []string{BlockIDEventFilings}})
}

// GetFinancials fetches the company financials block.
func (c *Client) GetFinancials(ctx context.Context, duns string) (ingest.Document, []byte, error) {
	return c.GetDataBlocks(ctx, Request{DUNS: duns, BlockIDs: []string{BlockIDFinancials}})
}

// GetAllBlocks fetches all three supported blocks in a single inquiry.
func (c *Client) GetAllBlocks(ctx context.Context, duns string) (ingest.Document, []byte, error) {
	return c.GetDataBlocks(ctx, Request{
		DUNS:     duns,
		BlockIDs: []string{BlockIDCompanyInfo, BlockIDEventFilings, BlockIDFinancials},
	})
}

func (c *Client) fetch(ctx context.Context, req Request) ([]byte, error) {
	params := url.Values{}
	params.Set("blockIDs", strings.Join(req.BlockIDs, ","))
	if req.TradeUp != "" {
		params.Set("tradeUp", req.TradeUp)
	}
	if req.CustomerReference != "" {
		params.Set("customerReference", req.CustomerReference)
	}
	endpoint := fmt.Sprintf("%s/v1/data/duns/%s?%s", c.baseURL, req.DUNS, params.Encode())

	var lastErr error
	reauthed := false
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, domainerrors.Wrap(ctx.Err(), domainerrors.CodeTimeout, "data block fetch cancelled")
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "build data block request")
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
		httpReq.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			lastErr = err
			c.countCall("data", "network_error")
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				c.countCall("data", "read_error")
				continue
			}
			c.countCall("data", "ok")
			return body, nil
		case resp.StatusCode == http.StatusUnauthorized && !reauthed:
			// Token may have been revoked early; force one refresh.
			reauthed = true
			c.invalidateToken()
			c.countCall("data", "unauthorized")
			attempt--
			continue
		case resp.StatusCode == http.StatusUnauthorized:
			c.countCall("data", "unauthorized")
			return nil, domainerrors.New(domainerrors.CodeUnauthorized, "data block request rejected, check API credentials")
		case resp.StatusCode == http.StatusNotFound:
			c.countCall("data", "not_found")
			return nil, domainerrors.Newf(domainerrors.CodeNotFound, "duns %s not found or not accessible", req.DUNS)
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			c.countCall("data", "server_error")
			continue
		default:
			c.countCall("data", "client_error")
			return nil, domainerrors.Newf(domainerrors.CodeInternal,
				"data block request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}
	return nil, domainerrors.Wrap(lastErr, domainerrors.CodeInternal, "data block request failed after retries")
}

// token returns a valid bearer token, authenticating when the cached one is
// missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSkew)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v3/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "build token request")
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countCall("token", "network_error")
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countCall("token", "error")
		body, _ := io.ReadAll(resp.Body)
		return "", domainerrors.Newf(domainerrors.CodeUnauthorized,
			"authentication failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var auth struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expiresIn"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		c.countCall("token", "decode_error")
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "decode token response")
	}
	if auth.AccessToken == "" {
		c.countCall("token", "error")
		return "", domainerrors.New(domainerrors.CodeUnauthorized, "token response carried no access token")
	}

	expiresIn := auth.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 86400
	}
	c.accessToken = auth.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	c.countCall("token", "ok")

	c.logger.Info("authenticated with data blocks API", "token_expiry", c.tokenExpiry)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *Client) countCall(endpoint, outcome string) {
	if c.metrics != nil {
		c.metrics.APICalls.WithLabelValues(endpoint, outcome).Inc()
	}
}
