package siteclient

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle of one fetch
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a fetch outcome. Data is only meaningful in StateSuccess and
// Err only in StateError.
type Result[T any] struct {
	State State
	Data  T
	Err   error
}

func resultOf[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{State: StateError, Err: err}
	}
	return Result[T]{State: StateSuccess, Data: data}
}

func (c *Client) FetchSection(ctx context.Context, name string) Result[*Section] {
	data, err := c.GetSection(ctx, name)
	return resultOf(data, err)
}

func (c *Client) FetchContactInfo(ctx context.Context) Result[[]ContactChannel] {
	data, err := c.GetContactInfo(ctx)
	return resultOf(data, err)
}

func (c *Client) FetchSkills(ctx context.Context) Result[[]Skill] {
	data, err := c.GetSkills(ctx)
	return resultOf(data, err)
}

func (c *Client) FetchProjects(ctx context.Context) Result[[]Project] {
	data, err := c.GetProjects(ctx)
	return resultOf(data, err)
}

func (c *Client) FetchPage(ctx context.Context) Result[*Page] {
	data, err := c.GetPage(ctx)
	return resultOf(data, err)
}

// FetchAsync runs fetch in a goroutine. The returned channel yields a
// Loading result, then the terminal result, then closes.
func FetchAsync[T any](ctx context.Context, fetch func(context.Context) Result[T]) <-chan Result[T] {
	ch := make(chan Result[T], 2)
	ch <- Result[T]{State: StateLoading}
	go func() {
		defer close(ch)
		ch <- fetch(ctx)
	}()
	return ch
}

func (c *Client) FetchSectionAsync(ctx context.Context, name string) <-chan Result[*Section] {
	return FetchAsync(ctx, func(ctx context.Context) Result[*Section] {
		return c.FetchSection(ctx, name)
	})
}

func (c *Client) FetchContactInfoAsync(ctx context.Context) <-chan Result[[]ContactChannel] {
	return FetchAsync(ctx, c.FetchContactInfo)
}

func (c *Client) FetchSkillsAsync(ctx context.Context) <-chan Result[[]Skill] {
	return FetchAsync(ctx, c.FetchSkills)
}

func (c *Client) FetchProjectsAsync(ctx context.Context) <-chan Result[[]Project] {
	return FetchAsync(ctx, c.FetchProjects)
}

func (c *Client) FetchPageAsync(ctx context.Context) <-chan Result[*Page] {
	return FetchAsync(ctx, c.FetchPage)
}

// Resource holds the last successful result of a fetch and decides when
// it is stale. Errors are returned but never kept.
type Resource[T any] struct {
	// StaleAfter is how long a successful result is served without
	// refetching. Zero means every Get refetches.
	StaleAfter time.Duration

	fetch func(context.Context) Result[T]
	now   func() time.Time

	mu        sync.Mutex
	last      Result[T]
	fetchedAt time.Time
	valid     bool
}

func NewResource[T any](fetch func(context.Context) Result[T], staleAfter time.Duration) *Resource[T] {
	return &Resource[T]{
		StaleAfter: staleAfter,
		fetch:      fetch,
		now:        time.Now,
	}
}

// Get returns the held result while it is fresh and fetches otherwise.
// Concurrent calls share the lock, so a refetch happens once.
func (r *Resource[T]) Get(ctx context.Context) Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.valid && r.now().Sub(r.fetchedAt) < r.StaleAfter {
		return r.last
	}

	res := r.fetch(ctx)
	if res.State == StateSuccess {
		r.last = res
		r.fetchedAt = r.now()
		r.valid = true
	}
	return res
}

// Peek returns the held result without fetching, Loading when there is none
func (r *Resource[T]) Peek() Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.valid {
		return Result[T]{State: StateLoading}
	}
	return r.last
}

// Invalidate forces the next Get to refetch
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valid = false
}
