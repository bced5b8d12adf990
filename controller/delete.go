package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rentora/backoffice/resource"
)

// TargetKind distinguishes single-row from bulk deletion
type TargetKind string

const (
	// SingleTarget deletes one row by id
	SingleTarget TargetKind = "single"
	// BulkTarget deletes the current selection
	BulkTarget TargetKind = "bulk"
)

// DeleteTarget is the pending deletion awaiting confirmation
type DeleteTarget struct {
	Kind TargetKind
	ID   uint
}

// Remover is the slice of the resource client the deletion controller needs
type Remover interface {
	Remove(ctx context.Context, id uint, scope resource.Scope) error
	RemoveBulk(ctx context.Context, ids []uint, scope resource.Scope) error
}

// ListBinding is the slice of the list controller the deletion controller
// drives: the selection for bulk targets and the refresh after execution.
type ListBinding interface {
	SelectedIDs() []uint
	ClearSelection()
	Refresh(ctx context.Context) error
}

// DeleteController manages a pending delete target behind a confirmation
// gate. It is domain-agnostic: restrictions like "only draft invoices may
// be deleted" belong to the presentation layer hiding the action, never
// here. Deleted rows are not spliced out locally; the list is refetched so
// state always reflects the server, including soft deletes and pagination
// shifts.
type DeleteController struct {
	mu       sync.Mutex
	client   Remover
	scope    ScopeSource
	list     ListBinding
	notifier Notifier
	log      *zap.Logger
	target   *DeleteTarget
	deleting bool
}

// NewDeleteController creates a deletion controller bound to a list
func NewDeleteController(client Remover, scope ScopeSource, list ListBinding, notifier Notifier, log *zap.Logger) *DeleteController {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DeleteController{
		client:   client,
		scope:    scope,
		list:     list,
		notifier: notifier,
		log:      log,
	}
}

// RequestSingle opens the confirmation gate for one row
func (c *DeleteController) RequestSingle(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = &DeleteTarget{Kind: SingleTarget, ID: id}
}

// RequestBulk opens the confirmation gate for the current selection. With
// an empty selection there is nothing to confirm and the request is
// ignored.
func (c *DeleteController) RequestBulk() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.list.SelectedIDs()) == 0 {
		return
	}
	c.target = &DeleteTarget{Kind: BulkTarget}
}

// Target returns the pending target, nil when no confirmation is open
func (c *DeleteController) Target() *DeleteTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Deleting reports whether a destructive call is in flight
func (c *DeleteController) Deleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

// Cancel discards the pending target without side effects
func (c *DeleteController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = nil
}

// Confirm executes the pending deletion. For bulk targets the selection is
// cleared only after the call settles, success or failure alike, never
// while it is in flight. Either way the list is refreshed afterwards; a
// partial bulk failure is treated as a total failure and the refresh
// reveals true state.
func (c *DeleteController) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.target == nil {
		c.mu.Unlock()
		return nil
	}
	if c.deleting {
		c.mu.Unlock()
		return nil
	}
	scope, resolved := c.scope.Scope()
	if !resolved {
		c.mu.Unlock()
		c.log.Debug("delete suppressed, tenant scope unresolved")
		return resource.ErrScopeUnresolved
	}
	target := *c.target
	c.target = nil
	c.deleting = true
	c.mu.Unlock()

	var err error
	switch target.Kind {
	case SingleTarget:
		err = c.client.Remove(ctx, target.ID, scope)
	case BulkTarget:
		ids := c.list.SelectedIDs()
		err = c.client.RemoveBulk(ctx, ids, scope)
		c.list.ClearSelection()
	}

	c.mu.Lock()
	c.deleting = false
	c.mu.Unlock()

	if err != nil {
		c.notifier.Error("Failed to delete record(s)")
		c.log.Error("delete failed", zap.String("kind", string(target.Kind)), zap.Error(err))
	} else {
		c.notifier.Success("Deleted successfully")
	}

	if refreshErr := c.list.Refresh(ctx); refreshErr != nil && err == nil {
		err = refreshErr
	}

	return err
}
