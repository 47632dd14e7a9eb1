package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/stream"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

// trackingServiceFixtures holds all test dependencies for tracking tests.
// The status stream is the real in-process bus so push timing can be
// exercised; the snapshot fetch is mocked.
type trackingServiceFixtures struct {
	service    usecase.TrackingUsecase
	orderAPI   *mockSvc.MockOrderAPI
	bus        *stream.LocalBus
	ledgerRepo *mockRepo.MockRecentOrdersRepository
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	logger := slog.New(slog.DiscardHandler)

	orderAPI := mockSvc.NewMockOrderAPI(t)
	bus := stream.NewLocalBus(16, logger)

	ledgerRepo := mockRepo.NewMockRecentOrdersRepository(t)
	ledgerRepo.EXPECT().
		LoadRecentOrders(mock.Anything).
		Return(nil, repository.ErrLedgerNotFound).
		Maybe()

	cfg := &config.Config{}
	cfg.Cart.RecentOrdersCapacity = 5

	orders := NewOrdersService(cfg, ledgerRepo, orderAPI, logger)
	tracking := NewTrackingService(orderAPI, bus, orders, logger)

	return trackingServiceFixtures{
		service:    tracking,
		orderAPI:   orderAPI,
		bus:        bus,
		ledgerRepo: ledgerRepo,
	}
}

func TestTrackingService_Open_AbsentIDYieldsIdle(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	for _, orderID := range []string{"", "undefined", "null"} {
		view, err := fx.service.Open(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, usecase.TrackingIdle, view.State, "orderID %q", orderID)
		assert.Nil(t, view.Order)
	}
}

func TestTrackingService_Open_SubscribeFailure(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	orderAPI := mockSvc.NewMockOrderAPI(t)
	statusStream := mockSvc.NewMockStatusStream(t)
	statusStream.EXPECT().
		Subscribe(mock.Anything, "order-1").
		Return(nil, errors.New("stream unavailable"))

	ledgerRepo := mockRepo.NewMockRecentOrdersRepository(t)
	ledgerRepo.EXPECT().
		LoadRecentOrders(mock.Anything).
		Return(nil, repository.ErrLedgerNotFound).
		Maybe()

	cfg := &config.Config{}
	cfg.Cart.RecentOrdersCapacity = 5

	orders := NewOrdersService(cfg, ledgerRepo, orderAPI, logger)
	tracking := NewTrackingService(orderAPI, statusStream, orders, logger)

	_, err := tracking.Open(context.Background(), "order-1")

	require.Error(t, err)
	assert.Equal(t, usecase.TrackingIdle, tracking.View(context.Background()).State)
}

func TestTrackingService_Open_ActiveView(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", OrderNumber: "A-100", Status: entity.StatusPreparing}, nil)

	view, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)

	assert.Equal(t, usecase.TrackingActive, view.State)
	require.NotNil(t, view.Order)
	assert.Equal(t, entity.StatusPreparing, view.Order.Status)
	assert.Equal(t, 2, view.ProgressIndex)
}

func TestTrackingService_Open_FetchFailureDegradesToIdle(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(nil, domainerrors.ErrOrderNotFound)

	view, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)

	assert.Equal(t, usecase.TrackingIdle, view.State)
	assert.NotEmpty(t, view.Message)
}

func TestTrackingService_IdleViewOffersRecentOrders(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	orderAPI := mockSvc.NewMockOrderAPI(t)
	bus := stream.NewLocalBus(16, logger)

	ledgerRepo := mockRepo.NewMockRecentOrdersRepository(t)
	ledgerRepo.EXPECT().
		LoadRecentOrders(mock.Anything).
		Return([]string{"o2", "o1"}, nil)

	cfg := &config.Config{}
	cfg.Cart.RecentOrdersCapacity = 5

	orders := NewOrdersService(cfg, ledgerRepo, orderAPI, logger)
	tracking := NewTrackingService(orderAPI, bus, orders, logger)

	view := tracking.View(context.Background())

	assert.Equal(t, usecase.TrackingIdle, view.State)
	assert.Equal(t, []string{"o2", "o1"}, view.RecentOrderIDs)
}

func TestTrackingService_PushUpdatesActiveView(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.StatusPending}, nil)

	_, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)

	fx.bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusDelivering})

	require.Eventually(t, func() bool {
		view := fx.service.View(ctx)

		return view.Order != nil && view.Order.Status == entity.StatusDelivering
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 4, fx.service.View(ctx).ProgressIndex)
}

func TestTrackingService_PushBeforeSnapshotWins(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fetchStarted := make(chan struct{})
	release := make(chan struct{})

	fx.orderAPI.EXPECT().
		FetchOrder(mock.Anything, "order-1").
		RunAndReturn(func(context.Context, string) (*entity.Order, error) {
			close(fetchStarted)
			<-release

			return &entity.Order{ID: "order-1", Status: entity.StatusPending}, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := fx.service.Open(ctx, "order-1")
		assert.NoError(t, err)
	}()

	<-fetchStarted
	fx.bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusPreparing})
	close(release)
	<-done

	// The push must not be overwritten by the stale snapshot status.
	require.Eventually(t, func() bool {
		view := fx.service.View(ctx)

		return view.Order != nil && view.Order.Status == entity.StatusPreparing
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTrackingService_Close_TearsDownSubscription(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.StatusPending}, nil)

	_, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)

	require.NoError(t, fx.service.Close())
	require.NoError(t, fx.service.Close(), "close must be idempotent")

	assert.Equal(t, usecase.TrackingIdle, fx.service.View(ctx).State)

	// A push after teardown reaches nobody.
	fx.bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusDelivering})
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, usecase.TrackingIdle, fx.service.View(ctx).State)
}

func TestTrackingService_Reopen_ReplacesSubscription(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.StatusPending}, nil)
	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-2").
		Return(&entity.Order{ID: "order-2", Status: entity.StatusConfirmed}, nil)

	_, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)

	view, err := fx.service.Open(ctx, "order-2")
	require.NoError(t, err)
	assert.Equal(t, "order-2", view.OrderID)

	// Events for the replaced order are ignored.
	fx.bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusCancelled})
	time.Sleep(50 * time.Millisecond)

	current := fx.service.View(ctx)
	require.NotNil(t, current.Order)
	assert.Equal(t, entity.StatusConfirmed, current.Order.Status)
}

func TestTrackingService_Watch_DeliversUpdates(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fx.orderAPI.EXPECT().
		FetchOrder(mock.Anything, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.StatusPending}, nil)

	watch := fx.service.Watch(ctx)

	first := <-watch
	assert.Equal(t, usecase.TrackingIdle, first.State)

	_, err := fx.service.Open(context.Background(), "order-1")
	require.NoError(t, err)

	select {
	case view := <-watch:
		assert.Equal(t, usecase.TrackingActive, view.State)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a view update after open")
	}

	cancel()

	require.Eventually(t, func() bool {
		_, open := <-watch

		return !open
	}, 2*time.Second, 10*time.Millisecond, "watch channel must close when ctx is done")
}

// boundStream delivers events only while the Subscribe context is alive,
// the way a remote consumer does. It forwards events from the in-process
// bus until the context is done.
type boundStream struct {
	bus *stream.LocalBus
}

func (s *boundStream) Subscribe(ctx context.Context, orderID string) (service.StatusSubscription, error) {
	inner, err := s.bus.Subscribe(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sub := &boundSubscription{inner: inner, events: make(chan service.StatusEvent, 16)}
	go func() {
		defer close(sub.events)
		for {
			select {
			case <-ctx.Done():
				_ = inner.Close()

				return
			case ev, ok := <-inner.Events():
				if !ok {
					return
				}
				sub.events <- ev
			}
		}
	}()

	return sub, nil
}

type boundSubscription struct {
	inner  service.StatusSubscription
	events chan service.StatusEvent
}

func (s *boundSubscription) Events() <-chan service.StatusEvent { return s.events }

func (s *boundSubscription) Close() error { return s.inner.Close() }

func TestTrackingService_SubscriptionOutlivesCallerContext(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	orderAPI := mockSvc.NewMockOrderAPI(t)
	bus := stream.NewLocalBus(16, logger)

	ledgerRepo := mockRepo.NewMockRecentOrdersRepository(t)
	ledgerRepo.EXPECT().
		LoadRecentOrders(mock.Anything).
		Return(nil, repository.ErrLedgerNotFound).
		Maybe()

	cfg := &config.Config{}
	cfg.Cart.RecentOrdersCapacity = 5

	orders := NewOrdersService(cfg, ledgerRepo, orderAPI, logger)
	tracking := NewTrackingService(orderAPI, &boundStream{bus: bus}, orders, logger)

	orderAPI.EXPECT().
		FetchOrder(mock.Anything, "order-1").
		Return(&entity.Order{ID: "order-1", Status: entity.StatusPending}, nil)

	callerCtx, cancel := context.WithCancel(context.Background())
	_, err := tracking.Open(callerCtx, "order-1")
	require.NoError(t, err)

	// The caller's context ends the moment its request completes. The
	// subscription belongs to the tracking session, not the caller.
	cancel()
	time.Sleep(50 * time.Millisecond)

	bus.Publish(service.StatusEvent{OrderID: "order-1", Status: entity.StatusReady})

	require.Eventually(t, func() bool {
		view := tracking.View(context.Background())

		return view.Order != nil && view.Order.Status == entity.StatusReady
	}, 2*time.Second, 10*time.Millisecond, "pushes must keep flowing after the opening request ends")
}

func TestTrackingService_Open_AbsentIDClearsStaleFailure(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().
		FetchOrder(ctx, "order-1").
		Return(nil, domainerrors.ErrOrderNotFound)

	view, err := fx.service.Open(ctx, "order-1")
	require.NoError(t, err)
	require.NotEmpty(t, view.Message)

	view, err = fx.service.Open(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, usecase.TrackingIdle, view.State)
	assert.Empty(t, view.Message, "a deliberate idle open must not carry an earlier failure")
}
