package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Collection is a typed view over one named document in a Store.
//
// Writers go through Update, which holds the collection lock for the whole
// load-modify-save cycle so concurrent requests cannot overwrite each other.
type Collection[T any] struct {
	store  Store
	name   string
	policy ReadPolicy
	logger *zap.Logger

	mu sync.Mutex
}

func NewCollection[T any](store Store, name string, policy ReadPolicy, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{
		store:  store,
		name:   name,
		policy: policy,
		logger: logger.With(zap.String("collection", name)),
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns every item of the collection. A collection that was never
// saved is empty.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Load(ctx, c.name)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return c.fallback(fmt.Errorf("read %s: %w", c.name, err))
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return c.fallback(fmt.Errorf("decode %s: %w", c.name, err))
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.store.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

// Update loads the collection, passes it to fn and saves whatever fn returns.
// Nothing is written when fn fails.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	return c.Save(ctx, items)
}

func (c *Collection[T]) fallback(err error) ([]T, error) {
	if c.policy == Lenient {
		c.logger.Warn("collection unreadable, continuing with an empty one", zap.Error(err))
		return []T{}, nil
	}
	return nil, err
}
