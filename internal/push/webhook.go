// Package push delivers composed alert messages to device addresses
// through an external HTTP push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
)

const maxBatchSize = 500

type gatewayRequest struct {
	Addresses []string           `json:"addresses"`
	Message   domain.PushMessage `json:"message"`
}

type gatewayResponse struct {
	Results []domain.DeliveryResult `json:"results"`
}

// WebhookSender posts message batches to the push gateway. A circuit
// breaker shields the dispatcher from a flapping gateway: while open,
// Send fails fast and the intent stays queued for a later retry.
type WebhookSender struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]domain.DeliveryResult]
	logger  *slog.Logger
}

func NewWebhookSender(url string, timeout time.Duration, logger *slog.Logger) *WebhookSender {
	settings := gobreaker.Settings{
		Name:     "push-gateway",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("push gateway breaker state change",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &WebhookSender{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]domain.DeliveryResult](settings),
		logger:  logger,
	}
}

func (s *WebhookSender) Send(ctx context.Context, addresses []string, msg domain.PushMessage) ([]domain.DeliveryResult, error) {
	const op = "push.WebhookSender.Send"

	if len(addresses) == 0 {
		return nil, nil
	}

	var all []domain.DeliveryResult
	for start := 0; start < len(addresses); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(addresses) {
			end = len(addresses)
		}

		batch := addresses[start:end]
		results, err := s.breaker.Execute(func() ([]domain.DeliveryResult, error) {
			return s.post(ctx, batch, msg)
		})
		if err != nil {
			return all, e.Wrap(op, err)
		}
		all = append(all, results...)
	}
	return all, nil
}

func (s *WebhookSender) post(ctx context.Context, addresses []string, msg domain.PushMessage) ([]domain.DeliveryResult, error) {
	body, err := json.Marshal(gatewayRequest{Addresses: addresses, Message: msg})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, snippet)
	}

	var parsed gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	return parsed.Results, nil
}

// NoopSender is used when push delivery is disabled. It reports every
// address as delivered so the pipeline still marks intents as handled.
type NoopSender struct {
	logger *slog.Logger
}

func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) Send(_ context.Context, addresses []string, msg domain.PushMessage) ([]domain.DeliveryResult, error) {
	s.logger.Info("push disabled, dropping message",
		slog.Int("addresses", len(addresses)),
		slog.String("title", msg.Title))

	results := make([]domain.DeliveryResult, 0, len(addresses))
	for _, addr := range addresses {
		results = append(results, domain.DeliveryResult{Address: addr, Success: true})
	}
	return results, nil
}
