package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"headend/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const publishTimeout = 30 * time.Second

// googlePubSubPublisher publishes provisioning events to Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher backed by Google Cloud Pub/Sub.
// It verifies the topic exists before returning.
func NewGooglePubSubPublisher(
	ctx context.Context,
	projectID string,
	topicID string,
	logger *slog.Logger,
) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName})
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn("Failed to close pubsub client", slog.Any("error", closeErr))
		}

		return nil, errors.Wrapf(err, "topic %s not accessible", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishProvisioningEvent(ctx context.Context, event *service.ProvisioningEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal provisioning event")
	}

	attrs := map[string]string{
		"event_type":    event.Type,
		"subscriber_id": event.SubscriberID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	result := p.publisher.Publish(publishCtx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})

	msgID, err := result.Get(publishCtx)
	if err != nil {
		return errors.Wrap(err, "failed to publish provisioning event")
	}

	p.logger.Debug("Published provisioning event",
		slog.String("message_id", msgID),
		slog.String("type", event.Type),
		slog.String("subscriber_id", event.SubscriberID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	if err := p.client.Close(); err != nil {
		return errors.Wrap(err, "failed to close pubsub client")
	}

	return nil
}
