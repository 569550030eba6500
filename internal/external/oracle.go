package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"plancheck/internal/config"
	"plancheck/internal/types"
)

// checkPath is the payments endpoint that verifies a configuration and
// returns the binding price.
const checkPath = "/payments/v5/subscription/check"

// CheckRequest is the configuration submitted for an authoritative price.
type CheckRequest struct {
	Plans    types.PlanIDs  `json:"plans"`
	Cycle    types.Cycle    `json:"cycle"`
	Currency types.Currency `json:"currency"`
	Coupon   string         `json:"coupon,omitempty"`
}

// OracleClient calls the payments backend's check endpoint. The backend is
// authoritative for amounts, coupon discounts, taxes, and renewal prices;
// this service treats the response as opaque input to the breakdown.
type OracleClient struct {
	base    *BaseClient
	baseURL string
	logger  *slog.Logger
}

// NewOracleClient builds an OracleClient from configuration.
func NewOracleClient(cfg config.OracleConfig, logger *slog.Logger, opts ...BaseClientOption) *OracleClient {
	policy := DefaultRetryPolicy()
	policy.MaxRetries = cfg.MaxRetries

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &OracleClient{
		base:    NewBaseClient(httpClient, "pricing-oracle", policy, cfg.UserAgent, opts...),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Check submits the configuration and returns the server-verified result.
// Failures are *types.AppError; callers fall back to the optimistic
// catalog-derived breakdown when the check is unavailable.
func (c *OracleClient) Check(ctx context.Context, req CheckRequest) (*types.CheckResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected, "failed to encode check request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkPath, bytes.NewReader(payload))
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected, "failed to build check request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, types.NewAppError(
			types.ErrCodeUpstreamCheck,
			fmt.Sprintf("pricing check returned %d", resp.StatusCode),
			nil,
		)
	}

	var result types.CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamCheck, "failed to decode check response", err)
	}

	c.logger.Debug("pricing check verified",
		slog.Int64("amount", result.Amount),
		slog.String("mode", string(result.SubscriptionMode)),
	)
	return &result, nil
}
