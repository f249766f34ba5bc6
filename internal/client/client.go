// Package client is a Go client for the solgate HTTP API.
//
// Every endpoint answers with the JSON envelope {"success": true, "data": ...} or
// {"success": false, "error": "..."}. The client unwraps the envelope and returns the data
// as the matching api response type, or a *ResponseError carrying the error message.
//
// Read-only GET requests that fail with a transport error, 429 or a 5xx status are retried
// with exponential backoff. POST requests are never retried because the server may already
// have submitted a transaction.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/solgate/solgate/internal/api"
)

// ResponseError is returned when the server answers with an error envelope
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Config configures the client
type Config struct {
	// BaseURL is the server address, e.g. http://localhost:8080
	BaseURL string

	// Timeout bounds each HTTP request. Airdrops and token transactions wait for
	// confirmation, so this should exceed the server CONFIRM_TIMEOUT.
	Timeout time.Duration

	// MaxRetries is the number of retries for GET requests (0 disables retries)
	MaxRetries uint64
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	maxRetries uint64
}

// New creates a client for the server at cfg.BaseURL
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be an http(s) URL, got %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: cfg.MaxRetries,
	}, nil
}

// GenerateKeypair calls POST /keypair
func (c *Client) GenerateKeypair(ctx context.Context) (*api.KeypairResponse, error) {
	var resp api.KeypairResponse
	if err := c.post(ctx, "/keypair", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignMessage calls POST /message/sign
func (c *Client) SignMessage(ctx context.Context, req api.SignMessageRequest) (*api.SignMessageResponse, error) {
	var resp api.SignMessageResponse
	if err := c.post(ctx, "/message/sign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyMessage calls POST /message/verify
func (c *Client) VerifyMessage(ctx context.Context, req api.VerifyMessageRequest) (*api.VerifyMessageResponse, error) {
	var resp api.VerifyMessageResponse
	if err := c.post(ctx, "/message/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateToken calls POST /token/create
func (c *Client) CreateToken(ctx context.Context, mintAuthority string, decimals uint8) (*api.CreateTokenResponse, error) {
	req := api.CreateTokenRequest{MintAuthority: mintAuthority, Decimals: &decimals}

	var resp api.CreateTokenResponse
	if err := c.post(ctx, "/token/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MintToken calls POST /token/mint. The returned instruction is not submitted by the server.
func (c *Client) MintToken(ctx context.Context, req api.MintTokenRequest) (*api.InstructionDescription, error) {
	var resp api.InstructionDescription
	if err := c.post(ctx, "/token/mint", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Balance calls GET /balance/{pubkey}
func (c *Client) Balance(ctx context.Context, pubkey string) (*api.BalanceResponse, error) {
	var resp api.BalanceResponse
	if err := c.get(ctx, "/balance/"+url.PathEscape(pubkey), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Airdrop calls GET /airdrop/{pubkey}, which requests the server's default airdrop amount.
// It is not retried: a lost response may still have produced an airdrop.
func (c *Client) Airdrop(ctx context.Context, pubkey string) (*api.AirdropResponse, error) {
	var resp api.AirdropResponse
	if err := c.do(ctx, http.MethodGet, "/airdrop/"+url.PathEscape(pubkey), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserAirdrop calls POST /user/airdrop with an amount in SOL
func (c *Client) UserAirdrop(ctx context.Context, pubkey string, amountSOL float64) (*api.UserAirdropResponse, error) {
	req := api.UserAirdropRequest{Pubkey: pubkey, Amount: amountSOL}

	var resp api.UserAirdropResponse
	if err := c.post(ctx, "/user/airdrop", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendToken calls POST /send/token
func (c *Client) SendToken(ctx context.Context, req api.SendTokenRequest) (*api.SendTokenResponse, error) {
	var resp api.SendTokenResponse
	if err := c.post(ctx, "/send/token", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body any, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, dst)
}

// get retries transport errors, 429 and 5xx responses
func (c *Client) get(ctx context.Context, path string, dst any) error {
	operation := func() error {
		err := c.do(ctx, http.MethodGet, path, nil, dst)
		if err == nil {
			return nil
		}
		var respErr *ResponseError
		if errors.As(err, &respErr) && !respErr.retryable() {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	return backoff.Retry(operation, policy)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, dst any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// #nosec G704 -- base URL is supplied by the CLI user and path parameters are escaped
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp, dst)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(resp *http.Response, dst any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// not an envelope, e.g. an error page from a proxy
		return &ResponseError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &ResponseError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
