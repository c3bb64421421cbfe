package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/sirupsen/logrus"
)

// WebhookResult is what came back from one webhook call
type WebhookResult struct {
	StatusCode int
	StatusText string
	OK         bool
	RawBody    string
	// Document is nil when the body was not valid JSON or was null, false,
	// zero or an empty string
	Document *models.Document
}

// WebhookService posts clip requests to the configured workflow
type WebhookService struct {
	client *http.Client
}

// NewWebhookService creates a webhook client. A nil client means
// http.DefaultClient, which has no timeout.
func NewWebhookService(client *http.Client) *WebhookService {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookService{client: client}
}

// Send issues exactly one POST with the payload as JSON. A non-2xx status is
// not an error here; only transport and body read failures are.
func (s *WebhookService) Send(ctx context.Context, endpoint string, payload models.RequestPayload) (*WebhookResult, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logrus.Errorf("HTTP request failed to webhook %s: %v", endpoint, err)
		return nil, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Errorf("Failed to read response body: %v", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &WebhookResult{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		RawBody:    string(bodyBytes),
	}

	doc, err := models.ParseDocument(bodyBytes)
	switch {
	case err != nil:
		logrus.Warn("Non-JSON response from API.")
	case doc.Falsy():
		logrus.Warnf("Empty JSON response from API: %s", bytes.TrimSpace(bodyBytes))
	default:
		result.Document = doc
	}

	if !result.OK {
		logrus.Warnf("Webhook returned status %d from %s", resp.StatusCode, endpoint)
	}
	return result, nil
}

// statusText returns the reason phrase, e.g. "Internal Server Error"
func statusText(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if text := strings.TrimPrefix(resp.Status, prefix); text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
