package payrollapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"nat.service/internal/ports/messaging"
)

// Client is the contract for the external payroll system that receives
// closed attendance sessions.
type Client interface {
	RecordCheckOut(ctx context.Context, event messaging.CheckOutEvent) error
}

// HTTPClient talks to the payroll system over HTTP.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// RecordCheckOut sends the check-out event to the payroll API.
func (c *HTTPClient) RecordCheckOut(ctx context.Context, event messaging.CheckOutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payroll payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create payroll request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call payroll api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("payroll api returned non-successful status code: %d", resp.StatusCode)
	}

	log.Ctx(ctx).Info().Str("employee_id", event.EmployeeID).Msg("check-out recorded in payroll system")
	return nil
}
