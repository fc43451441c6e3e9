package redisseq

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	gscontext "github.com/vnykmshr/goseq/pkg/common/context"
	"github.com/vnykmshr/goseq/pkg/common/validation"
	"github.com/vnykmshr/goseq/pkg/query"
)

// Config holds configuration for Redis-backed sequence sources.
type Config struct {
	// Redis client used for all commands.
	Redis redis.UniversalClient

	// Key is the Redis key holding the list.
	Key string

	// Timeout is the per-command timeout.
	Timeout time.Duration

	// PageSize is how many elements one LRANGE fetch covers.
	PageSize int
}

// DefaultConfig returns a default Redis source configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:  500 * time.Millisecond,
		PageSize: 64,
	}
}

// List adapts a Redis list to query.Indexable[string]. Length comes from
// LLEN; element access fetches LRANGE pages and caches the page spanning
// the requested index, so sequential traversal costs one round trip per
// PageSize elements. Queries over a List observe the list as of each
// traversal.
//
// Redis failures cannot surface through the Indexable contract; they are
// recorded and exposed via Err, with Len reporting 0 and At returning the
// empty string after a failure.
type List struct {
	config    Config
	pageStart int
	page      []string
	err       error
}

// NewList creates a Redis list source. The zero Timeout and PageSize fall
// back to DefaultConfig values.
func NewList(config Config) (*List, error) {
	if err := validation.ValidateNotNil("redisseq", "redis client", config.Redis); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("redisseq", "key", config.Key); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.PageSize == 0 {
		config.PageSize = defaults.PageSize
	}
	if err := validation.ValidatePositive("redisseq", "pageSize", config.PageSize); err != nil {
		return nil, err
	}

	return &List{config: config, pageStart: -1}, nil
}

// FromList creates a Sequence over a Redis list.
func FromList(config Config) (query.Sequence[string], error) {
	l, err := NewList(config)
	if err != nil {
		return query.Sequence[string]{}, err
	}
	return l.Sequence(), nil
}

// Len returns the current list length, or 0 after a Redis failure.
func (l *List) Len() int {
	ctx, cancel := gscontext.WithTimeoutOrCancel(context.Background(), l.config.Timeout)
	defer cancel()

	n, err := l.config.Redis.LLen(ctx, l.config.Key).Result()
	if err != nil {
		l.err = err
		return 0
	}
	return int(n)
}

// At returns the element at index i, fetching and caching the surrounding
// page when needed. Returns the empty string after a Redis failure.
func (l *List) At(i int) string {
	if i < l.pageStart || i >= l.pageStart+len(l.page) {
		if !l.load(i) {
			return ""
		}
	}
	return l.page[i-l.pageStart]
}

func (l *List) load(i int) bool {
	start := (i / l.config.PageSize) * l.config.PageSize

	ctx, cancel := gscontext.WithTimeoutOrCancel(context.Background(), l.config.Timeout)
	defer cancel()

	values, err := l.config.Redis.LRange(ctx, l.config.Key,
		int64(start), int64(start+l.config.PageSize-1)).Result()
	if err != nil {
		l.err = err
		return false
	}

	l.pageStart = start
	l.page = values
	return i-start < len(values)
}

// Err returns the first Redis failure observed, if any.
func (l *List) Err() error {
	return l.err
}

// Sequence wraps the list as a lazy query source.
func (l *List) Sequence() query.Sequence[string] {
	return query.FromIndexable[string](l)
}
