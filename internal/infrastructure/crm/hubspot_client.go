package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"percytext.backend/internal/config"
	"percytext.backend/internal/domain/entities"
)

// Client defines CRM sync operations. All methods return an error on failure;
// callers decide whether the failure is fatal. Lead intake treats CRM sync as
// best effort and swallows these errors.
type Client interface {
	CreateOrUpdateContact(ctx context.Context, lead *entities.Lead) (string, error)
	CreateCompany(ctx context.Context, lead *entities.Lead) (string, error)
	CreateActivity(ctx context.Context, contactID string, activity *entities.LeadActivity) (string, error)
}

// HubSpotClient talks to the HubSpot CRM API
type HubSpotClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHubSpotClient creates a CRM client
func NewHubSpotClient(cfg config.HubSpotConfig) *HubSpotClient {
	return &HubSpotClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Total   int `json:"total"`
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

type objectResponse struct {
	ID string `json:"id"`
}

type engagementResponse struct {
	Engagement struct {
		ID int64 `json:"id"`
	} `json:"engagement"`
}

// CreateOrUpdateContact searches for a contact by email and updates it, or
// creates a new one. Returns the CRM contact id.
func (c *HubSpotClient) CreateOrUpdateContact(ctx context.Context, lead *entities.Lead) (string, error) {
	search := map[string]interface{}{
		"filterGroups": []map[string]interface{}{
			{
				"filters": []map[string]interface{}{
					{
						"propertyName": "email",
						"operator":     "EQ",
						"value":        lead.Email,
					},
				},
			},
		},
		"limit": 1,
	}

	var found searchResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", search, &found); err != nil {
		return "", fmt.Errorf("search contact: %w", err)
	}

	properties := contactProperties(lead)
	body := map[string]interface{}{"properties": properties}

	if found.Total > 0 && len(found.Results) > 0 {
		contactID := found.Results[0].ID
		if err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+contactID, body, nil); err != nil {
			return "", fmt.Errorf("update contact: %w", err)
		}
		return contactID, nil
	}

	var created objectResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", body, &created); err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}
	return created.ID, nil
}

// CreateCompany creates a CRM company from the lead's company details
func (c *HubSpotClient) CreateCompany(ctx context.Context, lead *entities.Lead) (string, error) {
	properties := map[string]string{
		"name": lead.Company.String,
	}
	if lead.Website.Valid {
		properties["domain"] = lead.Website.String
	}
	if lead.Industry.Valid {
		properties["industry"] = lead.Industry.String
	}
	if lead.CompanySize.Valid {
		properties["numberofemployees"] = lead.CompanySize.String
	}

	var created objectResponse
	body := map[string]interface{}{"properties": properties}
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/companies", body, &created); err != nil {
		return "", fmt.Errorf("create company: %w", err)
	}
	return created.ID, nil
}

// CreateActivity records an engagement against a CRM contact
func (c *HubSpotClient) CreateActivity(ctx context.Context, contactID string, activity *entities.LeadActivity) (string, error) {
	note := activity.Title
	if activity.Description.Valid {
		note += "\n\n" + activity.Description.String
	}

	body := map[string]interface{}{
		"engagement": map[string]interface{}{
			"active": true,
			"type":   "NOTE",
		},
		"associations": map[string]interface{}{
			"contactIds": []string{contactID},
		},
		"metadata": map[string]interface{}{
			"body": note,
		},
	}

	var created engagementResponse
	if err := c.do(ctx, http.MethodPost, "/engagements/v1/engagements", body, &created); err != nil {
		return "", fmt.Errorf("create engagement: %w", err)
	}
	return fmt.Sprintf("%d", created.Engagement.ID), nil
}

func (c *HubSpotClient) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("hubspot returned status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode hubspot response: %w", err)
		}
	}
	return nil
}

func contactProperties(lead *entities.Lead) map[string]string {
	properties := map[string]string{
		"email":     lead.Email,
		"firstname": lead.FirstName,
		"lastname":  lead.LastName,
	}
	if lead.Phone.Valid {
		properties["phone"] = lead.Phone.String
	}
	if lead.Company.Valid {
		properties["company"] = lead.Company.String
	}
	if lead.JobTitle.Valid {
		properties["jobtitle"] = lead.JobTitle.String
	}
	if lead.Website.Valid {
		properties["website"] = lead.Website.String
	}
	if lead.Message.Valid {
		properties["message"] = lead.Message.String
	}
	properties["lead_source"] = string(lead.Source)
	return properties
}
