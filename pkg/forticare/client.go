package forticare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// expireBeforeSentinel defeats the products/list expiry filter. The API has
// no "all assets" endpoint; listing must filter on serial number or expiry
// date, so a far-future date returns everything.
const expireBeforeSentinel = "2040-01-01T00:00:00+0:00"

// Client talks to the CustomerAuth and FortiCare APIs. Call Login before
// any of the asset operations; the bearer token is held on the client so
// every call carries its credentials explicitly.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	log        *zap.Logger

	accessToken  string
	refreshToken string
}

// NewClient builds a client from loaded configuration. A zero timeout
// keeps the http.Client default (no timeout), matching the original tool.
func NewClient(cfg *Config, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Login exchanges the IAM API user credentials for a bearer token via the
// OAuth password grant. No retry: any failure aborts the run.
func (c *Client) Login(ctx context.Context) error {
	payload := loginRequest{
		Username:  c.cfg.APIID,
		Password:  c.cfg.APIPassword,
		ClientID:  c.cfg.ClientID,
		GrantType: "password",
	}

	var tok Token
	if err := c.postJSON(ctx, c.cfg.CustomerAuthURL+"token/", "", payload, &tok); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("login: response contained no access_token (message: %q)", tok.Message)
	}

	c.log.Debug("login completed", zap.String("message", tok.Message))
	c.accessToken = tok.AccessToken
	c.refreshToken = tok.RefreshToken
	return nil
}

// ListAssets returns every asset registered under the account.
func (c *Client) ListAssets(ctx context.Context) ([]Asset, error) {
	payload := listAssetsRequest{ExpireBefore: expireBeforeSentinel}

	var resp listAssetsResponse
	if err := c.postJSON(ctx, c.cfg.FortiCareURL+"products/list", c.accessToken, payload, &resp); err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	c.log.Debug("asset list completed",
		zap.String("message", resp.Message),
		zap.Int("assets", len(resp.Assets)))
	return resp.Assets, nil
}

// ProductDetails fetches the full detail record for one serial number.
func (c *Client) ProductDetails(ctx context.Context, serialNumber string) (*ProductDetailsResponse, error) {
	payload := productDetailsRequest{SerialNumber: serialNumber}

	var resp ProductDetailsResponse
	if err := c.postJSON(ctx, c.cfg.FortiCareURL+"products/details", c.accessToken, payload, &resp); err != nil {
		return nil, fmt.Errorf("product details for %s: %w", serialNumber, err)
	}

	c.log.Debug("product details completed", zap.String("message", resp.Message))
	return &resp, nil
}

// WarrantySupports returns the support contracts attached to one serial
// number. A unit with no contracts on file yields a nil slice and no error;
// the caller still gets a header-only CSV.
func (c *Client) WarrantySupports(ctx context.Context, serialNumber string) ([]WarrantySupport, error) {
	details, err := c.ProductDetails(ctx, serialNumber)
	if err != nil {
		return nil, err
	}

	supports := details.AssetDetails.WarrantySupports
	if supports == nil {
		c.log.Error("no warranty supports found", zap.String("serialNumber", serialNumber))
	}
	return supports, nil
}

// postJSON sends one JSON POST and decodes the response into out. When
// bearer is non-empty it is sent as the Authorization header. Request and
// response bodies are logged at debug level with credentials masked.
func (c *Client) postJSON(ctx context.Context, url, bearer string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}
	c.log.Debug("posting request", zap.String("url", url), zap.String("payload", redactJSON(body)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request for %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", url, err)
	}
	c.log.Debug("received response",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.String("body", redactJSON(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api returned status code %d for %s", resp.StatusCode, url)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// Keys masked before a body reaches the debug log.
var sensitiveKeys = []string{"password", "access_token", "refresh_token"}

// redactJSON renders a JSON body for logging with credential-bearing
// fields masked. Bodies that do not parse as an object are not logged.
func redactJSON(body []byte) string {
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err != nil {
		return "<non-object body>"
	}
	for _, k := range sensitiveKeys {
		if _, ok := obj[k]; ok {
			obj[k] = "<redacted>"
		}
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return "<non-object body>"
	}
	return string(out)
}
