package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	eventType  string
	handleErr  error
	startupErr error

	mu       sync.Mutex
	payloads [][]byte
	started  bool
	stopped  bool
}

func (h *fakeHandler) EventType() string { return h.eventType }

func (h *fakeHandler) OnStartup(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = true
	return h.startupErr
}

func (h *fakeHandler) OnShutdown(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	return nil
}

func (h *fakeHandler) Handle(ctx context.Context, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.payloads = append(h.payloads, payload)
	return h.handleErr
}

func (h *fakeHandler) handled() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.payloads)
}

func (h *fakeHandler) firstPayload() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return string(h.payloads[0])
}

func newTestConsumer(t *testing.T) (*Consumer, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewConsumer(rdb, "scenario.events", "conductor-group", "conductor-1"), rdb
}

func addEvent(t *testing.T, rdb *redis.Client, eventType, payload string) {
	t.Helper()
	err := rdb.XAdd(context.Background(), &redis.XAddArgs{
		Stream: "scenario.events",
		Values: map[string]interface{}{"type": eventType, "payload": payload},
	}).Err()
	require.NoError(t, err)
}

func pendingCount(t *testing.T, rdb *redis.Client) int64 {
	t.Helper()
	pending, err := rdb.XPending(context.Background(), "scenario.events", "conductor-group").Result()
	require.NoError(t, err)
	return pending.Count
}

func TestConsumer_Register(t *testing.T) {
	c, _ := newTestConsumer(t)

	require.NoError(t, c.Register(&fakeHandler{eventType: TypeProjectCreated}))

	err := c.Register(&fakeHandler{eventType: TypeProjectCreated})
	assert.ErrorContains(t, err, "already registered")
}

func TestConsumer_StartupHookFailureAbortsStart(t *testing.T) {
	c, _ := newTestConsumer(t)
	hookErr := errors.New("warmup failed")
	require.NoError(t, c.Register(&fakeHandler{eventType: TypeProjectCreated, startupErr: hookErr}))

	assert.ErrorIs(t, c.Start(context.Background()), hookErr)
}

func TestConsumer_DispatchesAndAcks(t *testing.T) {
	c, rdb := newTestConsumer(t)
	handler := &fakeHandler{eventType: TypeProjectCreated}
	require.NoError(t, c.Register(handler))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop(context.Background())

	payload := `{"project_id": 1, "territory_id": 3}`
	addEvent(t, rdb, TypeProjectCreated, payload)

	require.Eventually(t, func() bool { return handler.handled() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.JSONEq(t, payload, handler.firstPayload())

	assert.Eventually(t, func() bool { return pendingCount(t, rdb) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestConsumer_UnknownEventTypeIsAckedAndSkipped(t *testing.T) {
	c, rdb := newTestConsumer(t)
	handler := &fakeHandler{eventType: TypeProjectCreated}
	require.NoError(t, c.Register(handler))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop(context.Background())

	addEvent(t, rdb, "ProjectDeleted", `{}`)
	addEvent(t, rdb, TypeProjectCreated, `{"project_id": 1, "territory_id": 3}`)

	require.Eventually(t, func() bool { return handler.handled() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return pendingCount(t, rdb) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestConsumer_FailedEventStaysPendingAndFiresHook(t *testing.T) {
	c, rdb := newTestConsumer(t)
	handleErr := errors.New("urban api unavailable")
	handler := &fakeHandler{eventType: TypeProjectCreated, handleErr: handleErr}
	require.NoError(t, c.Register(handler))

	var (
		mu         sync.Mutex
		hookErr    error
		hookType   string
		hookMsgID  string
		hookCalled bool
	)
	c.OnError(func(ctx context.Context, err error, eventType string, payload []byte, messageID string) {
		mu.Lock()
		defer mu.Unlock()
		hookErr, hookType, hookMsgID, hookCalled = err, eventType, messageID, true
	})

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop(context.Background())

	addEvent(t, rdb, TypeProjectCreated, `{"project_id": 1, "territory_id": 3}`)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return hookCalled
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.ErrorIs(t, hookErr, handleErr)
	assert.Equal(t, TypeProjectCreated, hookType)
	assert.NotEmpty(t, hookMsgID)
	mu.Unlock()

	// not acked: the entry must remain pending for redelivery
	assert.Equal(t, int64(1), pendingCount(t, rdb))
}

func TestConsumer_PendingEventIsReprocessedAfterRestart(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	failing := &fakeHandler{eventType: TypeProjectCreated, handleErr: errors.New("urban api unavailable")}
	c1 := NewConsumer(rdb, "scenario.events", "conductor-group", "conductor-1")
	require.NoError(t, c1.Register(failing))
	require.NoError(t, c1.Start(context.Background()))

	payload := `{"project_id": 1, "territory_id": 3}`
	addEvent(t, rdb, TypeProjectCreated, payload)

	require.Eventually(t, func() bool { return failing.handled() == 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, c1.Stop(context.Background()))
	require.Equal(t, int64(1), pendingCount(t, rdb))

	// same group and consumer name, as after a process restart
	healthy := &fakeHandler{eventType: TypeProjectCreated}
	c2 := NewConsumer(rdb, "scenario.events", "conductor-group", "conductor-1")
	require.NoError(t, c2.Register(healthy))
	require.NoError(t, c2.Start(context.Background()))
	defer c2.Stop(context.Background())

	require.Eventually(t, func() bool { return healthy.handled() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.JSONEq(t, payload, healthy.firstPayload())
	assert.Eventually(t, func() bool { return pendingCount(t, rdb) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestConsumer_NewEventsStillFlowAfterPendingDrain(t *testing.T) {
	c, rdb := newTestConsumer(t)
	handler := &fakeHandler{eventType: TypeProjectCreated}
	require.NoError(t, c.Register(handler))

	// entry pending from a previous run of the same consumer
	require.NoError(t, rdb.XGroupCreateMkStream(context.Background(), "scenario.events", "conductor-group", "0").Err())
	addEvent(t, rdb, TypeProjectCreated, `{"project_id": 1, "territory_id": 3}`)
	_, err := rdb.XReadGroup(context.Background(), &redis.XReadGroupArgs{
		Group:    "conductor-group",
		Consumer: "conductor-1",
		Streams:  []string{"scenario.events", ">"},
		Count:    1,
	}).Result()
	require.NoError(t, err)
	require.Equal(t, int64(1), pendingCount(t, rdb))

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop(context.Background())

	addEvent(t, rdb, TypeProjectCreated, `{"project_id": 2, "territory_id": 3}`)

	require.Eventually(t, func() bool { return handler.handled() == 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return pendingCount(t, rdb) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestConsumer_StopRunsShutdownHooks(t *testing.T) {
	c, _ := newTestConsumer(t)
	handler := &fakeHandler{eventType: TypeProjectCreated}
	require.NoError(t, c.Register(handler))

	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Stop(context.Background()))

	handler.mu.Lock()
	defer handler.mu.Unlock()
	assert.True(t, handler.started)
	assert.True(t, handler.stopped)
}
