package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/jgoulah/elecalc/internal/config"
	"github.com/jgoulah/elecalc/internal/logger"
	"github.com/jgoulah/elecalc/pkg/models"
)

// ErrNotConfigured is returned when neither MQTT nor Home Assistant is enabled
var ErrNotConfigured = errors.New("no publisher configured (enable mqtt or home_assistant in config)")

// Publisher sends estimates to MQTT and/or Home Assistant
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	retain      bool
	haConfig    config.HAConfig
	httpClient  *http.Client
}

// New creates a new publisher (supports both MQTT and HA HTTP API)
func New(mqttCfg config.MQTTConfig, haCfg config.HAConfig) (*Publisher, error) {
	if !mqttCfg.Enabled && !haCfg.Enabled {
		return nil, ErrNotConfigured
	}

	// Validate HA config if enabled
	if haCfg.Enabled {
		if haCfg.URL == "" {
			return nil, fmt.Errorf("Home Assistant URL is required when enabled")
		}
		if haCfg.Token == "" {
			return nil, fmt.Errorf("Home Assistant token is required when enabled")
		}
	}

	p := &Publisher{
		topicPrefix: mqttCfg.GetTopicPrefix(),
		retain:      mqttCfg.Retain,
		haConfig:    haCfg,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}

	if mqttCfg.Enabled {
		if mqttCfg.Broker == "" {
			return nil, fmt.Errorf("MQTT broker address is required when enabled")
		}

		// Configure MQTT client options
		opts := mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
		opts.SetClientID("elecalc-" + uuid.NewString()[:8])
		opts.SetAutoReconnect(true)
		opts.SetConnectRetry(false)
		opts.SetConnectTimeout(10 * time.Second)

		if mqttCfg.Username != "" {
			opts.SetUsername(mqttCfg.Username)
		}
		if mqttCfg.Password != "" {
			opts.SetPassword(mqttCfg.Password)
		}

		// Create and connect client
		client := mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
		}
		p.client = client
	}

	return p, nil
}

// Publish sends the estimate to every enabled sink. A failure in one sink
// does not stop the other.
func (p *Publisher) Publish(ctx context.Context, est models.Estimate, currency string) error {
	var errs []error

	if p.client != nil {
		if err := p.publishMQTT(ctx, est, currency); err != nil {
			errs = append(errs, fmt.Errorf("mqtt: %w", err))
		}
	}

	if p.haConfig.Enabled {
		if err := p.publishHA(ctx, est, currency); err != nil {
			errs = append(errs, fmt.Errorf("home assistant: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Topics returns the MQTT messages for an estimate keyed by full topic
func (p *Publisher) Topics(est models.Estimate, currency string) (map[string]string, error) {
	s := est.Summary
	msgs := map[string]string{
		p.topic("weekly_kwh"):        formatValue(s.TotalWeekly),
		p.topic("average_daily_kwh"): formatValue(s.AverageDaily),
		p.topic("weekly_cost"):       formatValue(est.Cost.WeeklyCost),
		p.topic("monthly_cost"):      formatValue(est.Cost.MonthlyCost),
		p.topic("tariff_rate"):       formatValue(est.Cost.TariffRate),
		p.topic("currency"):          currency,
	}
	for _, d := range s.Days {
		msgs[p.topic(fmt.Sprintf("day/%s_kwh", dayKey(d.Day)))] = formatValue(d.TotalLoad)
	}

	doc, err := json.Marshal(struct {
		models.Estimate
		Currency string `json:"currency"`
	}{est, currency})
	if err != nil {
		return nil, fmt.Errorf("encoding estimate: %w", err)
	}
	msgs[p.topic("estimate")] = string(doc)

	return msgs, nil
}

func (p *Publisher) publishMQTT(ctx context.Context, est models.Estimate, currency string) error {
	msgs, err := p.Topics(est, currency)
	if err != nil {
		return err
	}

	for topic, payload := range msgs {
		token := p.client.Publish(topic, 1, p.retain, payload)
		select {
		case <-token.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("publishing %s: %w", topic, err)
		}
		logger.Debug("published", "topic", topic, "payload", payload)
	}

	return nil
}

func (p *Publisher) topic(suffix string) string {
	return p.topicPrefix + "/" + suffix
}

func dayKey(d models.Weekday) string {
	return strings.ToLower(d.Short())
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
