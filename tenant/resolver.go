package tenant

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rentora/backoffice/controller"
	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/resource"
)

// SessionUser is the identity supplied by the session provider
type SessionUser struct {
	UserID   uint
	Email    string
	TenantID *uint
	RoleID   uint
}

// UserFromClaims builds a SessionUser from validated session token claims
func UserFromClaims(claims *jwtutil.SessionClaims) SessionUser {
	return SessionUser{
		UserID:   claims.UserID,
		Email:    claims.Email,
		TenantID: claims.TenantID,
		RoleID:   claims.RoleID,
	}
}

// Ref identifies a selectable tenant
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Lister fetches the tenants a super-admin may select
type Lister interface {
	ListTenants(ctx context.Context) ([]Ref, error)
}

// Resolver determines the effective tenant scope for the current operator.
// Regular users are fixed to their own tenant as soon as the session loads;
// super-admins stay unresolved until they explicitly select a tenant from
// the lazily fetched list. While unresolved, every resource operation is
// blocked; there is no fallback to an unscoped call.
type Resolver struct {
	mu             sync.Mutex
	user           SessionUser
	superAdminRole uint
	lister         Lister
	notifier       controller.Notifier
	log            *zap.Logger
	selectedTenant *uint
	branch         *uint
	tenants        []Ref
	tenantsLoaded  bool
	onChange       func()
}

// NewResolver creates a resolver for the given session user
func NewResolver(user SessionUser, superAdminRole uint, lister Lister, notifier controller.Notifier, log *zap.Logger) *Resolver {
	if notifier == nil {
		notifier = controller.NewLogNotifier(log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		user:           user,
		superAdminRole: superAdminRole,
		lister:         lister,
		notifier:       notifier,
		log:            log,
	}
}

// IsSuperAdmin reports whether the operator can act across tenants
func (r *Resolver) IsSuperAdmin() bool {
	return r.user.RoleID == r.superAdminRole
}

// Scope returns the effective scope and whether it is resolved. Resource
// clients and controllers consult this before every call.
func (r *Resolver) Scope() (resource.Scope, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tenantID := r.effectiveTenant()
	if tenantID == nil {
		return resource.Scope{}, false
	}
	return resource.Scope{TenantID: tenantID, BranchID: r.branch}, true
}

func (r *Resolver) effectiveTenant() *uint {
	if r.IsSuperAdmin() {
		return r.selectedTenant
	}
	return r.user.TenantID
}

// LoadTenants lazily fetches the selectable tenant list for super-admins.
// On failure a non-fatal notification is surfaced and operations stay
// blocked; no unscoped fallback is ever attempted.
func (r *Resolver) LoadTenants(ctx context.Context) error {
	if !r.IsSuperAdmin() {
		return nil
	}

	r.mu.Lock()
	if r.tenantsLoaded {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	tenants, err := r.lister.ListTenants(ctx)
	if err != nil {
		r.notifier.Error("Failed to load tenants")
		r.log.Error("tenant list fetch failed", zap.Error(err))
		return err
	}

	r.mu.Lock()
	r.tenants = tenants
	r.tenantsLoaded = true
	r.mu.Unlock()
	return nil
}

// Tenants returns the fetched selectable tenants
func (r *Resolver) Tenants() []Ref {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tenants
}

// SelectTenant switches the super-admin's effective tenant. The branch
// sub-scope resets to unselected since branches belong to a tenant, and the
// change hook fires so dependent lists refetch.
func (r *Resolver) SelectTenant(tenantID uint) {
	if !r.IsSuperAdmin() {
		r.log.Warn("tenant selection ignored for non-super-admin",
			zap.Uint("user_id", r.user.UserID),
			zap.Uint("tenant_id", tenantID))
		return
	}

	r.mu.Lock()
	r.selectedTenant = &tenantID
	r.branch = nil
	onChange := r.onChange
	r.mu.Unlock()

	r.log.Info("tenant selected", zap.Uint("tenant_id", tenantID))
	if onChange != nil {
		onChange()
	}
}

// SelectBranch sets or clears the branch sub-scope and fires the change hook
func (r *Resolver) SelectBranch(branchID *uint) {
	r.mu.Lock()
	r.branch = branchID
	onChange := r.onChange
	r.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Branch returns the current branch sub-scope, nil when unselected
func (r *Resolver) Branch() *uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.branch
}

// OnChange registers the hook fired when the effective scope changes
func (r *Resolver) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}
