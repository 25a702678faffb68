package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"headend/internal/domain/service"

	"github.com/pkg/errors"
)

// PubSubPushMessage mirrors the Google Pub/Sub push delivery envelope so a
// local endpoint can consume the same payload shape as a real subscription.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts events to a local HTTP endpoint for development
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that delivers events over plain HTTP
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishProvisioningEvent(ctx context.Context, event *service.ProvisioningEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal provisioning event")
	}

	var push PubSubPushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{
		"event_type":    event.Type,
		"subscriber_id": event.SubscriberID,
	}
	push.Message.MessageID = event.RequestID
	push.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339)
	push.Subscription = "local"

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "failed to marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post event to local endpoint")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("local endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("Posted provisioning event to local endpoint",
		slog.String("type", event.Type),
		slog.String("subscriber_id", event.SubscriberID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
