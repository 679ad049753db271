package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"scenarios-conductor/internal/logger"
)

// Handler processes one kind of event delivered by the consumer. Lifecycle
// hooks run once around the consumer's own lifetime.
type Handler interface {
	EventType() string
	OnStartup(ctx context.Context) error
	OnShutdown(ctx context.Context) error
	Handle(ctx context.Context, payload []byte) error
}

// ErrorHook is invoked with the failed event whenever a handler returns an
// error. The entry is left pending so the stream redelivers it.
type ErrorHook func(ctx context.Context, err error, eventType string, payload []byte, messageID string)

// Consumer reads the event stream through a consumer group and dispatches
// each entry to the handler registered for its type.
type Consumer struct {
	rdb      *redis.Client
	stream   string
	group    string
	consumer string

	handlers  map[string]Handler
	errorHook ErrorHook

	log    *logger.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer creates a consumer over the given stream and group.
func NewConsumer(rdb *redis.Client, stream, group, consumer string) *Consumer {
	return &Consumer{
		rdb:      rdb,
		stream:   stream,
		group:    group,
		consumer: consumer,
		handlers: make(map[string]Handler),
		log: logger.New().WithFields(map[string]interface{}{
			"stream": stream,
			"group":  group,
		}),
	}
}

// OnError installs the hook invoked for events whose handler failed.
func (c *Consumer) OnError(hook ErrorHook) {
	c.errorHook = hook
}

// Register adds a handler for its event type. Each type gets exactly one handler.
func (c *Consumer) Register(h Handler) error {
	if _, exists := c.handlers[h.EventType()]; exists {
		return fmt.Errorf("handler for event type %q already registered", h.EventType())
	}
	c.handlers[h.EventType()] = h
	return nil
}

// Start runs startup hooks, ensures the consumer group exists and launches
// the read loop. It returns once the loop is running.
func (c *Consumer) Start(ctx context.Context) error {
	for _, h := range c.handlers {
		if err := h.OnStartup(ctx); err != nil {
			return fmt.Errorf("startup hook for %s failed: %w", h.EventType(), err)
		}
	}

	if err := c.rdb.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err(); err != nil {
		if !strings.Contains(err.Error(), "BUSYGROUP") {
			return fmt.Errorf("failed to create consumer group: %w", err)
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)

	c.log.Info("event consumer started")
	return nil
}

// Stop halts the read loop, waits for the in-flight event and runs shutdown hooks.
func (c *Consumer) Stop(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	var errs []error
	for _, h := range c.handlers {
		if err := h.OnShutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown hook for %s failed: %w", h.EventType(), err))
		}
	}

	c.log.Info("event consumer stopped")
	return errors.Join(errs...)
}

func (c *Consumer) run(ctx context.Context) {
	defer c.wg.Done()

	// Reading starts at "0" to drain this consumer's pending entries, so
	// events that failed before a restart get reprocessed. Once the pending
	// list is exhausted the loop switches to ">" for new deliveries. An
	// entry that fails again stays pending for the next restart.
	readID := "0"
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, readID},
			Count:    1,
			Block:    time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				if readID != ">" {
					readID = ">"
				}
				continue
			}
			if ctx.Err() != nil {
				return
			}
			c.log.WithError(err).Error("failed to read from event stream")
			time.Sleep(time.Second)
			continue
		}

		var delivered int
		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.dispatch(ctx, msg)
				delivered++
				if readID != ">" {
					readID = msg.ID
				}
			}
		}
		if readID != ">" && delivered == 0 {
			readID = ">"
		}
	}
}

// dispatch routes one stream entry to its handler. Successful and unknown
// events are acknowledged; failed ones stay pending for redelivery.
func (c *Consumer) dispatch(ctx context.Context, msg redis.XMessage) {
	eventType, _ := msg.Values["type"].(string)
	payload, _ := msg.Values["payload"].(string)

	handler, ok := c.handlers[eventType]
	if !ok {
		c.log.WithFields(map[string]interface{}{
			"event_type": eventType,
			"message_id": msg.ID,
		}).Warn("no handler registered for event type, skipping")
		c.ack(ctx, msg.ID)
		return
	}

	eventCtx := logger.WithEventType(ctx, eventType)
	eventCtx = logger.WithMessageID(eventCtx, msg.ID)

	if err := handler.Handle(eventCtx, []byte(payload)); err != nil {
		logger.WithContext(eventCtx).WithError(err).Error("event processing failed")
		if c.errorHook != nil {
			c.errorHook(eventCtx, err, eventType, []byte(payload), msg.ID)
		}
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, messageID string) {
	if err := c.rdb.XAck(ctx, c.stream, c.group, messageID).Err(); err != nil {
		c.log.WithField("message_id", messageID).WithError(err).Error("failed to ack event")
	}
}
