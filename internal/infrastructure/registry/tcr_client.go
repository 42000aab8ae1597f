package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"percytext.backend/internal/config"
	"percytext.backend/internal/domain/entities"
	"percytext.backend/pkg/logger"
)

// Result is the uniform outcome of every registry call. Calls never return a
// Go error: transport failures and registry rejections both come back as
// Success=false with the cause in Error.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Client defines operations against the campaign registry
type Client interface {
	SubmitBrand(ctx context.Context, brand *entities.Brand) *Result
	SubmitCampaign(ctx context.Context, campaign *entities.Campaign, tcrBrandID string) *Result
	GetBrandStatus(ctx context.Context, tcrBrandID string) *Result
	GetCampaignStatus(ctx context.Context, tcrCampaignID string) *Result
}

// TCRClient talks to The Campaign Registry CSP API
type TCRClient struct {
	env  config.TCREnvironment
	http *http.Client
}

// NewTCRClient creates a registry client. Staging credentials are used unless
// useProduction is set.
func NewTCRClient(cfg config.TCRConfig, useProduction bool) *TCRClient {
	env := cfg.Staging
	if useProduction {
		env = cfg.Production
	}
	return &TCRClient{
		env:  env,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// SubmitBrand registers a brand with the registry
func (c *TCRClient) SubmitBrand(ctx context.Context, brand *entities.Brand) *Result {
	payload := map[string]interface{}{
		"displayName": brand.DisplayName,
		"companyName": brand.CompanyName,
		"ein":         brand.EIN,
		"entityType":  string(brand.EntityType),
		"vertical":    string(brand.Vertical),
		"phone":       brand.Phone,
		"email":       brand.Email,
		"country":     brand.Country,
		"street":      brand.Street,
		"city":        brand.City,
		"state":       brand.State,
		"postalCode":  brand.PostalCode,
	}
	if brand.Website.Valid {
		payload["website"] = brand.Website.String
	}
	if brand.StockSymbol.Valid {
		payload["stockSymbol"] = brand.StockSymbol.String
	}
	if brand.StockExchange.Valid {
		payload["stockExchange"] = brand.StockExchange.String
	}
	if brand.IPAddress.Valid {
		payload["ipAddress"] = brand.IPAddress.String
	}
	if brand.AltBusinessID.Valid {
		payload["altBusinessId"] = brand.AltBusinessID.String
	}
	if brand.AltBusinessIDType.Valid {
		payload["altBusinessIdType"] = brand.AltBusinessIDType.String
	}

	return c.do(ctx, http.MethodPost, "/brand/nonBlocking", payload, "Brand submitted to TCR")
}

// SubmitCampaign registers a campaign under an already-registered brand
func (c *TCRClient) SubmitCampaign(ctx context.Context, campaign *entities.Campaign, tcrBrandID string) *Result {
	payload := map[string]interface{}{
		"brandId":          tcrBrandID,
		"campaignName":     campaign.CampaignName,
		"description":      campaign.Description,
		"callToAction":     campaign.CallToAction,
		"sample1":          campaign.SampleMessage,
		"optinMessage":     campaign.OptInMessage,
		"optoutMessage":    campaign.OptOutMessage,
		"helpMessage":      campaign.HelpMessage,
		"subscriberOptin":  true,
		"subscriberOptout": true,
		"subscriberHelp":   true,
	}

	return c.do(ctx, http.MethodPost, "/campaignBuilder", payload, "Campaign submitted to TCR")
}

// GetBrandStatus fetches the registry-side state of a brand
func (c *TCRClient) GetBrandStatus(ctx context.Context, tcrBrandID string) *Result {
	return c.do(ctx, http.MethodGet, "/brand/"+tcrBrandID, nil, "Brand status retrieved")
}

// GetCampaignStatus fetches the registry-side state of a campaign
func (c *TCRClient) GetCampaignStatus(ctx context.Context, tcrCampaignID string) *Result {
	return c.do(ctx, http.MethodGet, "/campaign/"+tcrCampaignID, nil, "Campaign status retrieved")
}

func (c *TCRClient) do(ctx context.Context, method, path string, payload interface{}, successMessage string) *Result {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return failure("Failed to encode request", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.env.BaseURL+path, body)
	if err != nil {
		return failure("Failed to build request", err)
	}
	req.SetBasicAuth(c.env.APIKey, c.env.APISecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error(ctx, "TCR request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return failure("Failed to reach TCR", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("Failed to read TCR response", err)
	}

	var data map[string]interface{}
	if len(raw) > 0 {
		// non-JSON bodies are kept verbatim under "raw"
		if err := json.Unmarshal(raw, &data); err != nil {
			data = map[string]interface{}{"raw": string(raw)}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx, "TCR returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &Result{
			Success: false,
			Message: fmt.Sprintf("TCR returned status %d", resp.StatusCode),
			Error:   extractErrorMessage(data, resp.StatusCode),
			Data:    data,
		}
	}

	return &Result{
		Success: true,
		Message: successMessage,
		Data:    data,
	}
}

func failure(message string, err error) *Result {
	return &Result{
		Success: false,
		Message: message,
		Error:   err.Error(),
	}
}

func extractErrorMessage(data map[string]interface{}, status int) string {
	if data != nil {
		for _, key := range []string{"description", "message", "error"} {
			if v, ok := data[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
