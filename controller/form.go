package controller

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/rentora/backoffice/resource"
)

// ErrSaveInFlight is returned when Save is called while a previous save has
// not settled. The presentation layer disables submit while Saving() is
// true; this guard makes the contract explicit.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Saver is the slice of the resource client the form controller needs
type Saver[T any] interface {
	Create(ctx context.Context, payload resource.TenantPayload, scope resource.Scope) (*T, error)
	Update(ctx context.Context, id uint, payload resource.TenantPayload, scope resource.Scope) (*T, error)
}

// Normalizer is implemented by drafts that shape themselves before
// submission: trimming strings, nulling empty optionals, coercing numeric
// inputs.
type Normalizer interface {
	Normalize()
}

// FormController owns a draft record through the create/edit modal
// lifecycle. D is the request payload type (a pointer type implementing
// resource.TenantPayload), T the persisted record type.
type FormController[T any, D resource.TenantPayload] struct {
	mu        sync.Mutex
	client    Saver[T]
	scope     ScopeSource
	notifier  Notifier
	log       *zap.Logger
	newDraft  func() D
	hydrate   func(record *T) D
	idOf      func(record *T) uint
	onSuccess func(record *T)
	draft     D
	editID    *uint
	saving    bool
	saveErr   *resource.SaveError
}

// FormHooks wires a form controller to a resource
type FormHooks[T any, D resource.TenantPayload] struct {
	// NewDraft builds the default draft for create mode
	NewDraft func() D
	// Hydrate builds a draft from an existing record for edit mode
	Hydrate func(record *T) D
	// IDOf extracts the record id used on update
	IDOf func(record *T) uint
	// OnSuccess runs after a successful save; the caller closes the modal
	// and refreshes the list here
	OnSuccess func(record *T)
}

// NewFormController creates a form controller in create mode
func NewFormController[T any, D resource.TenantPayload](client Saver[T], scope ScopeSource, hooks FormHooks[T, D], notifier Notifier, log *zap.Logger) *FormController[T, D] {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := &FormController[T, D]{
		client:    client,
		scope:     scope,
		notifier:  notifier,
		log:       log,
		newDraft:  hooks.NewDraft,
		hydrate:   hooks.Hydrate,
		idOf:      hooks.IDOf,
		onSuccess: hooks.OnSuccess,
	}
	c.draft = c.newDraft()
	return c
}

// SetCreateMode resets the controller to an empty create draft
func (c *FormController[T, D]) SetCreateMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.newDraft()
	c.editID = nil
	c.saveErr = nil
}

// SetEditMode hydrates the draft from an existing record
func (c *FormController[T, D]) SetEditMode(record *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.idOf(record)
	c.draft = c.hydrate(record)
	c.editID = &id
	c.saveErr = nil
}

// Cancel discards the draft without persisting anything
func (c *FormController[T, D]) Cancel() {
	c.SetCreateMode()
}

// Draft returns the draft under edit. D is a pointer type; the presentation
// layer mutates fields on it directly.
func (c *FormController[T, D]) Draft() D {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// IsEditing reports whether the controller is in edit mode
func (c *FormController[T, D]) IsEditing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editID != nil
}

// Saving reports whether a save is in flight
func (c *FormController[T, D]) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// SaveError returns the validation rejection of the last save, nil after a
// success or mode change. It is rendered inline, not as a toast.
func (c *FormController[T, D]) SaveError() *resource.SaveError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveErr
}

// Save shapes and submits the draft, calling create or update based on
// mode. On validation failure the draft and mode are left untouched so the
// operator can correct and resubmit. On success the draft resets to the
// create default and the OnSuccess hook runs.
func (c *FormController[T, D]) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return ErrSaveInFlight
	}
	scope, resolved := c.scope.Scope()
	if !resolved {
		c.mu.Unlock()
		c.log.Debug("save suppressed, tenant scope unresolved")
		return resource.ErrScopeUnresolved
	}
	draft := c.draft
	editID := c.editID
	c.saving = true
	c.mu.Unlock()

	if n, ok := any(draft).(Normalizer); ok {
		n.Normalize()
	}

	var record *T
	var err error
	if editID != nil {
		record, err = c.client.Update(ctx, *editID, draft, scope)
	} else {
		record, err = c.client.Create(ctx, draft, scope)
	}

	c.mu.Lock()
	c.saving = false
	if err != nil {
		var saveErr *resource.SaveError
		if errors.As(err, &saveErr) {
			// Draft stays intact for correction and resubmission
			c.saveErr = saveErr
			c.mu.Unlock()
			return err
		}
		c.mu.Unlock()
		c.notifier.Error("Failed to save record")
		c.log.Error("save failed", zap.Error(err))
		return err
	}

	c.draft = c.newDraft()
	c.editID = nil
	c.saveErr = nil
	c.mu.Unlock()

	c.notifier.Success("Record saved successfully")
	if c.onSuccess != nil {
		c.onSuccess(record)
	}
	return nil
}
