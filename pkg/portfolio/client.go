package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client provides workspace-scoped Redis operations for the archive.
// It is safe for concurrent use.
type Client struct {
	rdb       *redis.Client
	workspace string
	now       func() time.Time
}

// NewClient creates a client for the given workspace.
// Returns an error if workspace is empty.
func NewClient(redisOpts *redis.Options, workspace string) (*Client, error) {
	if workspace == "" {
		return nil, fmt.Errorf("workspace name cannot be empty")
	}
	return &Client{
		rdb:       redis.NewClient(redisOpts),
		workspace: workspace,
		now:       time.Now,
	}, nil
}

// Workspace returns the workspace the client is scoped to.
func (c *Client) Workspace() string {
	return c.workspace
}

// RedisClient exposes the underlying connection for scans.
func (c *Client) RedisClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// SaveMark writes a mark, indexes it under its brand and publishes it on the
// workspace's mark_events channel. A zero CreatedAtMs is stamped with the
// current time. Saving the same id again replaces the stored mark.
func (c *Client) SaveMark(ctx context.Context, m *Mark) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid mark: %w", err)
	}
	if m.CreatedAtMs == 0 {
		m.CreatedAtMs = c.now().UnixMilli()
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, MarkKey(c.workspace, m.ID), MarkToHash(m))
	pipe.ZAdd(ctx, BrandKey(c.workspace, m.Brand), redis.Z{Score: float64(m.CreatedAtMs), Member: m.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write mark to Redis: %w", err)
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal mark for event: %w", err)
	}
	if err := c.rdb.Publish(ctx, MarkEventsChannel(c.workspace), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish mark event: %w", err)
	}
	return nil
}

// GetMark retrieves a mark by ID.
// Returns (nil, redis.Nil) if the mark doesn't exist; use IsNotFound.
func (c *Client) GetMark(ctx context.Context, markID string) (*Mark, error) {
	hash, err := c.rdb.HGetAll(ctx, MarkKey(c.workspace, markID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read mark from Redis: %w", err)
	}
	if len(hash) == 0 {
		return nil, redis.Nil
	}
	m, err := HashToMark(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize mark: %w", err)
	}
	return m, nil
}

// MarkExists checks if a mark exists without fetching it.
func (c *Client) MarkExists(ctx context.Context, markID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, MarkKey(c.workspace, markID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check mark existence: %w", err)
	}
	return n > 0, nil
}

// BrandMarkIDs returns the ids archived for brand, oldest first.
// Returns an empty slice for an unknown brand.
func (c *Client) BrandMarkIDs(ctx context.Context, brand string) ([]string, error) {
	ids, err := c.rdb.ZRange(ctx, BrandKey(c.workspace, brand), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read brand index: %w", err)
	}
	return ids, nil
}

// ScanMarkIDs returns the ids of every mark whose id starts with prefix,
// sorted. An empty prefix matches all marks. Uses SCAN, so it does not block
// the server.
func (c *Client) ScanMarkIDs(ctx context.Context, prefix string) ([]string, error) {
	iter := c.rdb.Scan(ctx, 0, MarkKey(c.workspace, prefix)+"*", 0).Iterator()
	var ids []string
	for iter.Next(ctx) {
		ids = append(ids, MarkIDFromKey(c.workspace, iter.Val()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan marks: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteMark removes a mark and its brand index entry. Deleting a missing
// mark returns redis.Nil.
func (c *Client) DeleteMark(ctx context.Context, markID string) error {
	m, err := c.GetMark(ctx, markID)
	if err != nil {
		return err
	}
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, MarkKey(c.workspace, markID))
	pipe.ZRem(ctx, BrandKey(c.workspace, m.Brand), markID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	return nil
}

// Subscription is an active subscription to mark events. Call Close when
// done.
type Subscription struct {
	events <-chan *Mark
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of saved marks. It is closed when the
// subscription ends.
func (s *Subscription) Events() <-chan *Mark {
	return s.events
}

// Errors returns malformed-message errors. The subscription keeps running
// after an error.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call more than once.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// SubscribeMarkEvents subscribes to mark saves in this workspace. It returns
// once Redis has confirmed the subscription, so no save after the call is
// missed. Delivery is at-most-once, on a buffered channel of size 10.
func (c *Client) SubscribeMarkEvents(ctx context.Context) (*Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, MarkEventsChannel(c.workspace))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to mark events: %w", err)
	}

	eventsChan := make(chan *Mark, 10)
	errorsChan := make(chan error, 10)
	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var m Mark
				if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal mark event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}
				select {
				case eventsChan <- &m:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{events: eventsChan, errors: errorsChan, cancel: cancelFunc}, nil
}

// IsNotFound reports whether err is a Redis "key not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
