package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jgoulah/elecalc/pkg/models"
)

// HAPayload matches the Home Assistant POST /api/states/<entity_id> body
type HAPayload struct {
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

// NewHAPayload builds the sensor state for an estimate. The state is the
// weekly consumption; the rest of the estimate goes into attributes.
func NewHAPayload(est models.Estimate, currency string) HAPayload {
	attrs := map[string]any{
		"unit_of_measurement": "kWh",
		"device_class":        "energy",
		"friendly_name":       "Estimated Weekly Electricity Consumption",
		"bedrooms":            est.Profile.Bedrooms,
		"average_daily_kwh":   est.Summary.AverageDaily,
		"tariff_rate":         est.Cost.TariffRate,
		"weekly_cost":         est.Cost.WeeklyCost,
		"monthly_cost":        est.Cost.MonthlyCost,
		"currency":            currency,
	}
	for _, d := range est.Summary.Days {
		attrs[dayKey(d.Day)+"_kwh"] = d.TotalLoad
	}

	return HAPayload{
		State:      formatValue(est.Summary.TotalWeekly),
		Attributes: attrs,
	}
}

// publishHA sends the estimate to Home Assistant via HTTP API
func (p *Publisher) publishHA(ctx context.Context, est models.Estimate, currency string) error {
	apiURL := fmt.Sprintf("%s/api/states/%s", strings.TrimRight(p.haConfig.URL, "/"), p.haConfig.GetEntityID())

	body, err := json.Marshal(NewHAPayload(est, currency))
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.haConfig.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	// 200 updates an existing entity, 201 creates it
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
