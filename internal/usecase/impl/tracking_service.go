package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// trackingSession is the state of one tracked order. A new Open replaces
// the whole session, so a late event from a torn-down subscription can be
// recognized and dropped by pointer identity.
type trackingSession struct {
	orderID string
	// cancel ends the subscription's context. The subscription must
	// outlive the caller that opened it; its lifetime ends only at Close
	// or the next Open.
	cancel context.CancelFunc
	sub    service.StatusSubscription

	// order is nil until the snapshot fetch lands. A push arriving
	// before that is buffered in pendingStatus, latest wins.
	order         *entity.Order
	pendingStatus *entity.OrderStatus
}

// trackingService implements the TrackingUsecase interface. It reconciles
// the one-shot order snapshot with the push stream and owns the
// subscription lifecycle.
type trackingService struct {
	orderAPI service.OrderAPI
	stream   service.StatusStream
	orders   usecase.OrdersUsecase
	logger   *slog.Logger

	mu          sync.Mutex
	sess        *trackingSession
	lastFailure string
	watchers    map[chan usecase.TrackingView]struct{}
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(
	orderAPI service.OrderAPI,
	stream service.StatusStream,
	orders usecase.OrdersUsecase,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		orderAPI: orderAPI,
		stream:   stream,
		orders:   orders,
		logger:   logger,
		watchers: make(map[chan usecase.TrackingView]struct{}),
	}
}

// trackableOrderID rejects ids that cannot name an order. Serialized
// absent values arrive as the literal strings below, not as empty ids.
func trackableOrderID(orderID string) bool {
	switch orderID {
	case "", "undefined", "null":
		return false
	default:
		return true
	}
}

// Open starts tracking orderID. The subscription is opened before the
// snapshot fetch so no status change can fall between them.
func (srv *trackingService) Open(ctx context.Context, orderID string) (*usecase.TrackingView, error) {
	srv.mu.Lock()
	srv.teardownLocked()

	if !trackableOrderID(orderID) {
		srv.lastFailure = ""
		view := srv.buildViewLocked()
		srv.mu.Unlock()

		return view, nil
	}

	// The subscription lives until Close or the next Open, not until the
	// caller's ctx is done, so it gets its own context.
	subCtx, cancel := context.WithCancel(context.Background())
	sub, err := srv.stream.Subscribe(subCtx, orderID)
	if err != nil {
		cancel()
		srv.lastFailure = "Live updates are unavailable right now"
		srv.mu.Unlock()
		srv.logger.Error("Failed to subscribe to status stream", "orderID", orderID, "error", err)

		return nil, errors.Wrap(err, "failed to subscribe to status stream")
	}

	sess := &trackingSession{orderID: orderID, cancel: cancel, sub: sub}
	srv.sess = sess
	srv.lastFailure = ""
	srv.mu.Unlock()

	go srv.consume(sess)

	order, err := srv.orderAPI.FetchOrder(ctx, orderID)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.sess != sess {
		// Replaced or closed while the fetch was in flight.
		return srv.buildViewLocked(), nil
	}

	if err != nil {
		srv.teardownLocked()
		srv.lastFailure = failureMessage(err)
		srv.logger.Warn("Failed to fetch tracked order snapshot", "orderID", orderID, "error", err)

		view := srv.buildViewLocked()
		srv.broadcastLocked(*view)

		return view, nil
	}

	if sess.pendingStatus != nil {
		order.Status = *sess.pendingStatus
		sess.pendingStatus = nil
	}
	sess.order = order

	view := srv.buildViewLocked()
	srv.broadcastLocked(*view)

	return view, nil
}

// View returns the current tracking view.
func (srv *trackingService) View(_ context.Context) *usecase.TrackingView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.buildViewLocked()
}

// Watch returns a channel of view updates. Slow watchers only ever miss
// intermediate views, never the latest one.
func (srv *trackingService) Watch(ctx context.Context) <-chan usecase.TrackingView {
	ch := make(chan usecase.TrackingView, 1)

	srv.mu.Lock()
	srv.watchers[ch] = struct{}{}
	ch <- *srv.buildViewLocked()
	srv.mu.Unlock()

	go func() {
		<-ctx.Done()

		srv.mu.Lock()
		delete(srv.watchers, ch)
		srv.mu.Unlock()

		close(ch)
	}()

	return ch
}

// Close tears down the active subscription, if any.
func (srv *trackingService) Close() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.teardownLocked()
	srv.broadcastLocked(*srv.buildViewLocked())

	return nil
}

// consume drains the session's subscription until it closes.
func (srv *trackingService) consume(sess *trackingSession) {
	for ev := range sess.sub.Events() {
		srv.handlePush(sess, ev)
	}
}

// handlePush applies one pushed status change to the session that
// subscribed for it. Events from replaced sessions are dropped.
func (srv *trackingService) handlePush(sess *trackingSession, ev service.StatusEvent) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.sess != sess || ev.OrderID != sess.orderID {
		return
	}

	if sess.order == nil {
		status := ev.Status
		sess.pendingStatus = &status

		return
	}

	sess.order.Status = ev.Status
	srv.logger.Debug("Order status pushed", "orderID", sess.orderID, "status", ev.Status)
	srv.broadcastLocked(*srv.buildViewLocked())
}

func (srv *trackingService) teardownLocked() {
	if srv.sess == nil {
		return
	}
	srv.sess.cancel()
	if err := srv.sess.sub.Close(); err != nil {
		srv.logger.Warn("Failed to close status subscription", "orderID", srv.sess.orderID, "error", err)
	}
	srv.sess = nil
}

// buildViewLocked derives the single exposed view from the session state.
func (srv *trackingService) buildViewLocked() *usecase.TrackingView {
	if srv.sess == nil {
		return &usecase.TrackingView{
			State:          usecase.TrackingIdle,
			RecentOrderIDs: srv.orders.RecentOrders(context.Background()),
			Message:        srv.lastFailure,
		}
	}

	if srv.sess.order == nil {
		return &usecase.TrackingView{
			State:   usecase.TrackingLoading,
			OrderID: srv.sess.orderID,
		}
	}

	orderCopy := *srv.sess.order

	return &usecase.TrackingView{
		State:         usecase.TrackingActive,
		OrderID:       srv.sess.orderID,
		Order:         &orderCopy,
		ProgressIndex: orderCopy.Status.ProgressIndex(),
	}
}

// broadcastLocked replaces each watcher's buffered view with the latest.
func (srv *trackingService) broadcastLocked(view usecase.TrackingView) {
	for ch := range srv.watchers {
		select {
		case ch <- view:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- view:
			default:
			}
		}
	}
}

// failureMessage maps a snapshot fetch error onto the message shown in the
// idle recovery view.
func failureMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.ErrorCode() {
		case domainerrors.ErrOrderNotFound.ErrorCode():
			return "We could not find that order"
		case domainerrors.ErrOrderAccessDenied.ErrorCode():
			return "You do not have access to that order"
		}
	}

	return "We could not load your order right now"
}
