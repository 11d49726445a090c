package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jgoulah/elecalc/internal/config"
	"github.com/jgoulah/elecalc/pkg/consumption"
	"github.com/jgoulah/elecalc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// fakeClient records published messages; unused mqtt.Client methods panic.
type fakeClient struct {
	mqtt.Client

	mu           sync.Mutex
	messages     map[string]string
	retained     map[string]bool
	failTopic    string
	disconnected bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{messages: map[string]string{}, retained: map[string]bool{}}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	if topic == c.failTopic {
		return &fakeToken{err: errors.New("broker rejected")}
	}
	c.messages[topic] = payload.(string)
	c.retained[topic] = retained
	return &fakeToken{}
}

func (c *fakeClient) IsConnected() bool { return !c.disconnected }

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func mondayEstimate() models.Estimate {
	var week models.Week
	week[models.Monday] = models.ApplianceUsage{AirConditioner: true, Refrigerator: true}
	return consumption.Estimate(models.ApartmentProfile{Bedrooms: 2}, week, 5.0)
}

func TestNewRequiresASink(t *testing.T) {
	_, err := New(config.MQTTConfig{}, config.HAConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewValidatesHomeAssistant(t *testing.T) {
	_, err := New(config.MQTTConfig{}, config.HAConfig{Enabled: true, Token: "t"})
	assert.Error(t, err)

	_, err = New(config.MQTTConfig{}, config.HAConfig{Enabled: true, URL: "http://ha"})
	assert.Error(t, err)

	p, err := New(config.MQTTConfig{}, config.HAConfig{Enabled: true, URL: "http://ha", Token: "t"})
	require.NoError(t, err)
	assert.Nil(t, p.client)
}

func TestNewValidatesMQTTBroker(t *testing.T) {
	_, err := New(config.MQTTConfig{Enabled: true}, config.HAConfig{})
	assert.Error(t, err)
}

func TestTopics(t *testing.T) {
	p := &Publisher{topicPrefix: "home/power"}

	msgs, err := p.Topics(mondayEstimate(), "₹")
	require.NoError(t, err)

	assert.Equal(t, "31.20", msgs["home/power/weekly_kwh"])
	assert.Equal(t, "4.46", msgs["home/power/average_daily_kwh"])
	assert.Equal(t, "156.00", msgs["home/power/weekly_cost"])
	assert.Equal(t, "675.48", msgs["home/power/monthly_cost"])
	assert.Equal(t, "5.00", msgs["home/power/tariff_rate"])
	assert.Equal(t, "₹", msgs["home/power/currency"])
	assert.Equal(t, "9.60", msgs["home/power/day/mon_kwh"])
	assert.Equal(t, "3.60", msgs["home/power/day/sun_kwh"])

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(msgs["home/power/estimate"]), &doc))
	assert.Equal(t, "₹", doc["currency"])
	assert.Contains(t, doc, "summary")
	assert.Contains(t, doc, "cost")
}

func TestPublishMQTT(t *testing.T) {
	client := newFakeClient()
	p := &Publisher{client: client, topicPrefix: "elecalc", retain: true}

	require.NoError(t, p.Publish(context.Background(), mondayEstimate(), "₹"))

	assert.Equal(t, "31.20", client.messages["elecalc/weekly_kwh"])
	assert.Len(t, client.messages, 6+models.DaysPerWeek+1)
	assert.True(t, client.retained["elecalc/weekly_kwh"])

	p.Close()
	assert.True(t, client.disconnected)
}

func TestPublishMQTTError(t *testing.T) {
	client := newFakeClient()
	client.failTopic = "elecalc/weekly_kwh"
	p := &Publisher{client: client, topicPrefix: "elecalc"}

	err := p.Publish(context.Background(), mondayEstimate(), "₹")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elecalc/weekly_kwh")
}

func TestPublishHomeAssistant(t *testing.T) {
	var gotPath, gotAuth string
	var got HAPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	p, err := New(config.MQTTConfig{}, config.HAConfig{Enabled: true, URL: srv.URL + "/", Token: "secret"})
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), mondayEstimate(), "₹"))

	assert.Equal(t, "/api/states/"+config.DefaultEntityID, gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "31.20", got.State)
	assert.Equal(t, "kWh", got.Attributes["unit_of_measurement"])
	assert.InDelta(t, 675.48, got.Attributes["monthly_cost"], 1e-9)
	assert.InDelta(t, 9.6, got.Attributes["mon_kwh"], 1e-9)
	assert.Equal(t, float64(2), got.Attributes["bedrooms"])
}

func TestPublishHomeAssistantHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, err := New(config.MQTTConfig{}, config.HAConfig{Enabled: true, URL: srv.URL, Token: "bad"})
	require.NoError(t, err)

	err = p.Publish(context.Background(), mondayEstimate(), "₹")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestPublishContinuesAfterSinkFailure(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newFakeClient()
	client.failTopic = "elecalc/estimate"
	p := &Publisher{
		client:      client,
		topicPrefix: "elecalc",
		haConfig:    config.HAConfig{Enabled: true, URL: srv.URL, Token: "t"},
		httpClient:  srv.Client(),
	}

	err := p.Publish(context.Background(), mondayEstimate(), "₹")
	require.Error(t, err)
	assert.True(t, called, "home assistant still receives the estimate")
}
