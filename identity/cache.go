package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/dicekeys/grid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Cache memoises key ids by canonical text form. It is safe for concurrent
// use; concurrent requests for the same key share one hash call.
type Cache struct {
	hasher Hasher
	group  singleflight.Group

	mu  sync.RWMutex
	ids map[string]string
}

// NewCache returns an empty Cache over h.
func NewCache(h Hasher) *Cache {
	return &Cache{hasher: h, ids: make(map[string]string)}
}

// Len returns the number of memoised ids.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.ids)
}

func (c *Cache) lookup(seed string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.ids[seed]

	return id, ok
}

// KeyID returns the memoised id of g, deriving it on first use.
// The shared hash call runs detached from any one caller's cancellation;
// each caller still gets its own ctx error if it gave up.
func (c *Cache) KeyID(ctx context.Context, g grid.Grid) (string, error) {
	seed := grid.Seed(g)
	if id, ok := c.lookup(seed); ok {
		return id, nil
	}

	v, err, _ := c.group.Do(seed, func() (any, error) {
		if id, ok := c.lookup(seed); ok {
			return id, nil
		}
		id, err := keyIDFromSeed(context.WithoutCancel(ctx), seed, c.hasher)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.ids[seed] = id
		c.mu.Unlock()

		return id, nil
	})
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return v.(string), nil
}

// Attach is identity.Attach backed by the cache.
func (c *Cache) Attach(ctx context.Context, g grid.Grid) (Identified, error) {
	if err := grid.Validate(g.Slice(), grid.WithAllLetters(), grid.WithUnknownOrientation()); err != nil {
		return Identified{}, fmt.Errorf("Attach: %w", err)
	}
	id, err := c.KeyID(ctx, g)
	if err != nil {
		return Identified{}, fmt.Errorf("Attach: %w", err)
	}

	return Identified{grid: g, keyID: id}, nil
}

// AttachAll attaches ids to every grid with at most limit derivations in
// flight (limit <= 0 means unbounded). Results keep the input order. The
// first failure cancels the remaining work and is returned.
func (c *Cache) AttachAll(ctx context.Context, grids []grid.Grid, limit int) ([]Identified, error) {
	out := make([]Identified, len(grids))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, g := range grids {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			id, err := c.Attach(egCtx, g)
			if err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}
			out[i] = id

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("AttachAll: %w", err)
	}

	return out, nil
}
