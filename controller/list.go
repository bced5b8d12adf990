package controller

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rentora/backoffice/resource"
)

// Lister is the slice of the resource client the list controller needs
type Lister[T any] interface {
	List(ctx context.Context, query resource.ListQuery, scope resource.Scope) (*resource.ListResult[T], error)
}

// ScopeSource supplies the effective tenant scope. The second return is
// false while the scope is unresolved; all list operations are suppressed
// until it resolves.
type ScopeSource interface {
	Scope() (resource.Scope, bool)
}

// ListController owns the query state of one paginated table (search text,
// status filter, page, selection) and derives the current page of records
// through the resource client. The previous page stays visible while a new
// fetch is in flight; there is no flash to empty.
type ListController[T any] struct {
	mu        sync.Mutex
	client    Lister[T]
	scope     ScopeSource
	notifier  Notifier
	log       *zap.Logger
	idOf      func(T) uint
	desc      resource.Descriptor
	query     resource.ListQuery
	result    resource.ListResult[T]
	selection Selection
	lastScope resource.Scope
	scopeSeen bool
	loading   bool
	loaded    bool
	lastErr   error
	seq       uint64
}

// NewListController creates a list controller for one resource collection
func NewListController[T any](client Lister[T], scope ScopeSource, desc resource.Descriptor, idOf func(T) uint, notifier Notifier, log *zap.Logger) *ListController[T] {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ListController[T]{
		client:    client,
		scope:     scope,
		notifier:  notifier,
		log:       log.With(zap.String("resource", desc.Name)),
		idOf:      idOf,
		desc:      desc,
		query:     resource.NewListQuery(desc),
		selection: NewSelection(),
	}
}

// Load fetches the current page. A call issued before the tenant scope is
// resolved is suppressed and returns ErrScopeUnresolved without touching the
// network. A scope changed since the previous load resets to the first page,
// like any other filter mutation. Each fetch carries a sequence number; a
// response is applied only if it belongs to the latest issued request, so a
// stale response can never overwrite a newer one.
func (c *ListController[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	scope, resolved := c.scope.Scope()
	if !resolved {
		c.mu.Unlock()
		c.log.Debug("list load suppressed, tenant scope unresolved")
		return resource.ErrScopeUnresolved
	}
	if c.scopeSeen && !scope.Equal(c.lastScope) {
		// A tenant or branch switch restarts pagination; a page number from
		// the previous scope means nothing in the new one
		c.query.Page = 1
	}
	c.lastScope = scope
	c.scopeSeen = true
	query := c.query
	c.loading = true
	seq := atomic.AddUint64(&c.seq, 1)
	c.mu.Unlock()

	result, err := c.client.List(ctx, query, scope)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != atomic.LoadUint64(&c.seq) {
		// A newer request was issued while this one was in flight
		c.log.Debug("discarding stale list response", zap.Uint64("seq", seq))
		return nil
	}

	c.loading = false
	if err != nil {
		c.lastErr = err
		c.result.Items = nil
		c.result.Page = 1
		c.query.Page = 1
		c.notifier.Error("Failed to load " + c.desc.Name)
		c.log.Error("list load failed", zap.Error(err))
		return err
	}

	c.lastErr = nil
	c.result = *result
	c.loaded = true
	return nil
}

// Refresh refetches the current page, used after a mutation elsewhere
func (c *ListController[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// SetSearch updates the search text, resets to page 1 and refetches
func (c *ListController[T]) SetSearch(ctx context.Context, search string) error {
	c.mu.Lock()
	c.query.Search = search
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetStatus updates the status filter, resets to page 1 and refetches
func (c *ListController[T]) SetStatus(ctx context.Context, status string) error {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetPage moves to the given page, clamped to [1, totalPages], and
// refetches. Filters are left untouched.
func (c *ListController[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if c.result.TotalPages > 0 && page > c.result.TotalPages {
		page = c.result.TotalPages
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.Load(ctx)
}

// Query returns the current query state
func (c *ListController[T]) Query() resource.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Result returns the last applied page of records
func (c *ListController[T]) Result() resource.ListResult[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Loading reports whether a fetch is in flight
func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the last settled fetch, nil after a success
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// HasPrevPage reports whether the Previous control should be enabled
func (c *ListController[T]) HasPrevPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page > 1
}

// HasNextPage reports whether the Next control should be enabled
func (c *ListController[T]) HasNextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page < c.result.TotalPages
}

// ToggleSelect flips the selection state of one row
func (c *ListController[T]) ToggleSelect(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = c.selection.Toggle(id)
}

// SelectAllOnPage selects every row of the currently loaded page. This is
// deliberately page-scoped: it never extends to all rows matching the
// filter.
func (c *ListController[T]) SelectAllOnPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]uint, 0, len(c.result.Items))
	for _, item := range c.result.Items {
		ids = append(ids, c.idOf(item))
	}
	c.selection = c.selection.SelectAll(ids)
}

// ClearSelection empties the selection
func (c *ListController[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = c.selection.Clear()
}

// Selection returns the current selection value
func (c *ListController[T]) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// SelectedIDs returns the selected ids in ascending order
func (c *ListController[T]) SelectedIDs() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}
