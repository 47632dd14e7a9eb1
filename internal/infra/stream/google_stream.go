package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// googleStatusStream implements service.StatusStream using Google Cloud
// Pub/Sub. The server publishes order:statusChanged events to one topic;
// the consumer filters per tracked order.
type googleStatusStream struct {
	client         *pubsub.Client
	subscriptionID string
	bufferSize     int
	logger         *slog.Logger
}

// NewGoogleStatusStream creates a new Google Pub/Sub status stream.
func NewGoogleStatusStream(ctx context.Context, projectID, subscriptionID string, bufferSize int, logger *slog.Logger) (service.StatusStream, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Info("Google Pub/Sub status stream initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &googleStatusStream{
		client:         client,
		subscriptionID: subscriptionID,
		bufferSize:     bufferSize,
		logger:         logger,
	}, nil
}

// Subscribe opens an order-scoped view of the status subscription. Events
// for other orders are acked and discarded.
func (s *googleStatusStream) Subscribe(ctx context.Context, orderID string) (service.StatusSubscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	sub := &googleSubscription{
		cancel: cancel,
		events: make(chan service.StatusEvent, s.bufferSize),
	}

	subscriber := s.client.Subscriber(s.subscriptionID)

	go func() {
		defer close(sub.events)

		err := subscriber.Receive(subCtx, func(_ context.Context, msg *pubsub.Message) {
			// No replay is offered either way, so everything is acked.
			msg.Ack()

			event, err := decodeStatusEvent(msg.Data)
			if err != nil {
				s.logger.Warn("Discarding malformed status event", slog.Any("error", err))

				return
			}
			if event.OrderID != orderID {
				return
			}

			select {
			case sub.events <- event:
			default:
				s.logger.Warn("Dropping status event for slow subscriber",
					slog.String("order_id", orderID),
				)
			}
		})
		if err != nil && subCtx.Err() == nil {
			s.logger.Error("Status stream receive failed", slog.Any("error", err))
		}
	}()

	return sub, nil
}

// Close releases the Pub/Sub client.
func (s *googleStatusStream) Close() error {
	return errors.WithStack(s.client.Close())
}

// googleSubscription implements service.StatusSubscription.
type googleSubscription struct {
	cancel context.CancelFunc
	events chan service.StatusEvent
	once   sync.Once
}

// Events returns the channel of pushed status changes.
func (s *googleSubscription) Events() <-chan service.StatusEvent {
	return s.events
}

// Close cancels the receive loop; the events channel closes once the loop
// drains out.
func (s *googleSubscription) Close() error {
	s.once.Do(s.cancel)

	return nil
}

// decodeStatusEvent parses a pushed order:statusChanged payload. The server
// has shipped the order id under both "orderId" and "id"; both are accepted.
func decodeStatusEvent(data []byte) (service.StatusEvent, error) {
	var payload struct {
		OrderID string             `json:"orderId"`
		ID      string             `json:"id"`
		Status  entity.OrderStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return service.StatusEvent{}, errors.WithStack(err)
	}

	event := service.StatusEvent{
		OrderID: payload.OrderID,
		Status:  payload.Status,
	}
	if event.OrderID == "" {
		event.OrderID = payload.ID
	}
	if event.OrderID == "" || event.Status == "" {
		return service.StatusEvent{}, errors.New("status event missing order id or status")
	}

	return event, nil
}
