// Package chain provides a REST client for Graviton network nodes.
package chain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/gravnet/gravctl/internal/wallet"
	graverr "github.com/gravnet/gravctl/pkg/errors"
)

// ErrNodeResponse indicates an unparseable node response.
var ErrNodeResponse = &graverr.GravError{
	Code:     "NODE_INVALID_RESPONSE",
	Message:  "invalid node response",
	ExitCode: graverr.ExitGeneral,
}

// ClientOptions configures a Client.
type ClientOptions struct {
	Endpoint string
	HRP      string
	Timeout  time.Duration
	Retry    RetryConfig
	Limiter  *RateLimiter
}

// Client talks to a Graviton node over its REST API.
type Client struct {
	endpoint   string
	hrp        string
	httpClient *http.Client
	retryCfg   RetryConfig
	limiter    *RateLimiter
}

// NewClient creates a new node client.
func NewClient(opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	retryCfg := opts.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = DefaultRetryConfig()
	}

	limiter := opts.Limiter
	if limiter == nil {
		limiter = DefaultRateLimiter()
	}

	hrp := opts.HRP
	if hrp == "" {
		hrp = wallet.DefaultHRP
	}

	return &Client{
		endpoint:   opts.Endpoint,
		hrp:        hrp,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retryCfg,
		limiter:    limiter,
	}
}

// Endpoint returns the node endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// AccountInfo fetches account state for a bech32 address. The address is
// validated locally before any request is made.
func (c *Client) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	if _, err := wallet.ParseAccountID(address, c.hrp); err != nil {
		return nil, err
	}

	path := "/v1/accounts/" + url.PathEscape(address)
	return RetryWithConfig(ctx, c.retryCfg, func() (*AccountInfo, error) {
		var info AccountInfo
		if err := c.get(ctx, path, &info); err != nil {
			return nil, err
		}
		return &info, nil
	})
}

// Balance fetches the spendable balance for a bech32 address.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	info, err := c.AccountInfo(ctx, address)
	if err != nil {
		return 0, err
	}
	return info.Balance, nil
}

// SendTokens signs a transfer with the given key and broadcasts it.
// The receiver is validated locally before any request is made.
func (c *Client) SendTokens(ctx context.Context, key *secp256k1.PrivateKey, transfer Transfer) (*BroadcastResult, error) {
	if _, err := wallet.ParseAccountID(transfer.To, c.hrp); err != nil {
		return nil, err
	}
	if transfer.Amount == 0 {
		return nil, graverr.WithSuggestion(
			graverr.Wrap(graverr.ErrInvalidAmount, "amount must be positive"),
			"specify a positive amount in "+transfer.Denom,
		)
	}

	tx, err := signTransfer(key, transfer)
	if err != nil {
		return nil, err
	}

	return RetryWithConfig(ctx, c.retryCfg, func() (*BroadcastResult, error) {
		var result BroadcastResult
		if err := c.post(ctx, "/v1/txs", tx, &result); err != nil {
			return nil, err
		}
		if result.Code != 0 {
			return nil, graverr.WithDetails(
				graverr.Wrap(graverr.ErrTxRejected, "%s", result.Log),
				map[string]string{"code": fmt.Sprintf("%d", result.Code)},
			)
		}
		return &result, nil
	})
}

// signTransfer signs the canonical JSON encoding of a transfer.
func signTransfer(key *secp256k1.PrivateKey, transfer Transfer) (*SignedTx, error) {
	payload, err := json.Marshal(transfer)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(payload)
	sig := ecdsa.Sign(key, digest[:])

	return &SignedTx{
		Transfer:  transfer,
		PubKey:    hex.EncodeToString(key.PubKey().SerializeCompressed()),
		Signature: hex.EncodeToString(sig.Serialize()),
	}, nil
}

// get performs a rate limited GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx, c.endpoint); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	return c.do(req, out)
}

// post performs a rate limited POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx, c.endpoint); err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and maps the response onto out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return graverr.Wrap(graverr.ErrNetwork, "%s %s", req.Method, req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return graverr.Wrap(graverr.ErrAccountNotFound, "%s", req.URL.Path)
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return graverr.Wrap(ErrRetryable, "node returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return graverr.WithDetails(
			graverr.Wrap(graverr.ErrNetwork, "node returned %d", resp.StatusCode),
			map[string]string{"body": string(body)},
		)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return graverr.Wrap(ErrNodeResponse, "decode %s", req.URL.Path)
	}
	return nil
}
