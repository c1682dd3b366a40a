// Package pagecache caches rendered public responses in redis. Every entry
// is tagged with the topics it was built from; purging a topic drops every
// entry tagged with it.
package pagecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "travel:page:"
)

// Entry is a cached response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

type Options struct {
	// TTL bounds how long an entry lives when no purge reaches it.
	TTL time.Duration
	// Prefix namespaces the redis keys.
	Prefix string
}

// Cache is a topic tagged response cache. A nil *Cache is a valid, disabled
// cache: lookups miss and writes are dropped.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string

	lookups metric.Int64Counter
	purged  metric.Int64Counter
}

func New(client redis.UniversalClient, opts Options) (*Cache, error) {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	meter := otel.Meter("travel/pagecache")
	lookups, err := meter.Int64Counter("pagecache.lookups",
		metric.WithDescription("Page cache lookups by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookups counter: %w", err)
	}
	purged, err := meter.Int64Counter("pagecache.purged",
		metric.WithDescription("Cached pages dropped by topic purges"))
	if err != nil {
		return nil, fmt.Errorf("could not create purged counter: %w", err)
	}

	return &Cache{
		client:  client,
		ttl:     opts.TTL,
		prefix:  opts.Prefix,
		lookups: lookups,
		purged:  purged,
	}, nil
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

func (c *Cache) pageKey(key string) string { return c.prefix + "key:" + key }
func (c *Cache) topicKey(topic string) string { return c.prefix + "topic:" + topic }
func (c *Cache) genKey(topic string) string   { return c.prefix + "gen:" + topic }

// errStale aborts a conditional write whose topics were purged meanwhile.
var errStale = errors.New("page topics were purged")

// Generation is a snapshot of the purge counters of a set of topics.
type Generation struct {
	keys   []string
	values []string
}

// Generation reads the purge counters of topics. Take it before building a
// response and pass it to SetIfCurrent.
func (c *Cache) Generation(ctx context.Context, topics ...string) (Generation, error) {
	if c == nil || len(topics) == 0 {
		return Generation{}, nil
	}

	keys := make([]string, len(topics))
	for i, topic := range topics {
		keys[i] = c.genKey(topic)
	}
	values, err := readGenerations(ctx, c.client, keys)
	if err != nil {
		return Generation{}, err
	}

	return Generation{keys: keys, values: values}, nil
}

type mgetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func readGenerations(ctx context.Context, cmd mgetter, keys []string) ([]string, error) {
	raw, err := cmd.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("could not read topic generations: %w", err)
	}

	values := make([]string, len(raw))
	for i, v := range raw {
		if str, ok := v.(string); ok {
			values[i] = str
		}
	}

	return values, nil
}

// Get returns the entry stored under key, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*Entry, error) {
	if c == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, c.pageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "miss")))

		return nil, nil
	}
	if err != nil {
		c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "error")))

		return nil, fmt.Errorf("could not read cached page: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("could not decode cached page: %w", err)
	}
	c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "hit")))

	return &entry, nil
}

// Set stores entry under key and tags it with topics.
func (c *Cache) Set(ctx context.Context, key string, entry Entry, topics ...string) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not encode page: %w", err)
	}

	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		c.store(ctx, pipe, key, raw, topics)

		return nil
	}); err != nil {
		return fmt.Errorf("could not store page: %w", err)
	}

	return nil
}

// SetIfCurrent stores entry like Set unless one of the topics of gen was
// purged since gen was taken. It reports whether the entry was stored.
func (c *Cache) SetIfCurrent(ctx context.Context,
	key string,
	entry Entry,
	gen Generation,
	topics ...string) (bool, error) {
	if c == nil {
		return false, nil
	}
	if len(gen.keys) == 0 {
		return true, c.Set(ctx, key, entry, topics...)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("could not encode page: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGenerations(ctx, tx, gen.keys)
		if err != nil {
			return err
		}
		if !slices.Equal(current, gen.values) {
			return errStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			c.store(ctx, pipe, key, raw, topics)

			return nil
		})

		return err
	}, gen.keys...)
	switch {
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("could not store page: %w", err)
	}

	return true, nil
}

func (c *Cache) store(ctx context.Context, pipe redis.Pipeliner, key string, raw []byte, topics []string) {
	pageKey := c.pageKey(key)
	pipe.Set(ctx, pageKey, raw, c.ttl)
	for _, topic := range topics {
		tk := c.topicKey(topic)
		pipe.SAdd(ctx, tk, pageKey)
		// the tag set outlives its pages so a purge never misses one
		pipe.Expire(ctx, tk, 2*c.ttl)
	}
}

// Purge drops every entry tagged with any of topics and returns how many
// pages were removed. It bumps the topic generations first, so responses
// built before the purge are not stored by SetIfCurrent afterwards.
func (c *Cache) Purge(ctx context.Context, topics ...string) (int64, error) {
	if c == nil || len(topics) == 0 {
		return 0, nil
	}

	var removed int64
	for _, topic := range topics {
		gk := c.genKey(topic)
		if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Incr(ctx, gk)
			pipe.Expire(ctx, gk, 2*c.ttl)

			return nil
		}); err != nil {
			return removed, fmt.Errorf("could not bump topic %q: %w", topic, err)
		}

		tk := c.topicKey(topic)
		keys, err := c.client.SMembers(ctx, tk).Result()
		if err != nil {
			return removed, fmt.Errorf("could not read topic %q: %w", topic, err)
		}

		n, err := c.client.Del(ctx, append(keys, tk)...).Result()
		if err != nil {
			return removed, fmt.Errorf("could not purge topic %q: %w", topic, err)
		}
		// the tag set itself is not a page
		if len(keys) > 0 {
			n--
		}
		removed += n
	}
	c.purged.Add(ctx, removed)

	return removed, nil
}
