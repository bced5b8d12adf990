package tenant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const superAdminRole = uint(1)

type fakeLister struct {
	mu      sync.Mutex
	calls   int
	tenants []Ref
	err     error
}

func (l *fakeLister) ListTenants(ctx context.Context) ([]Ref, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.tenants, l.err
}

type spyNotifier struct {
	mu     sync.Mutex
	errors []string
}

func (n *spyNotifier) Success(message string) {}

func (n *spyNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *spyNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

func regularUser(tenantID uint) SessionUser {
	return SessionUser{UserID: 10, Email: "op@example.com", TenantID: &tenantID, RoleID: 5}
}

func superAdmin() SessionUser {
	return SessionUser{UserID: 1, Email: "admin@example.com", RoleID: superAdminRole}
}

func TestRegularUserResolvesImmediately(t *testing.T) {
	r := NewResolver(regularUser(7), superAdminRole, &fakeLister{}, &spyNotifier{}, nil)

	assert.False(t, r.IsSuperAdmin())

	scope, resolved := r.Scope()
	require.True(t, resolved)
	require.NotNil(t, scope.TenantID)
	assert.Equal(t, uint(7), *scope.TenantID)
}

func TestRegularUserCannotSwitchTenant(t *testing.T) {
	r := NewResolver(regularUser(7), superAdminRole, &fakeLister{}, &spyNotifier{}, nil)

	r.SelectTenant(99)

	scope, resolved := r.Scope()
	require.True(t, resolved)
	assert.Equal(t, uint(7), *scope.TenantID)
}

func TestSuperAdminBlockedUntilSelection(t *testing.T) {
	r := NewResolver(superAdmin(), superAdminRole, &fakeLister{}, &spyNotifier{}, nil)

	assert.True(t, r.IsSuperAdmin())

	_, resolved := r.Scope()
	assert.False(t, resolved)

	r.SelectTenant(3)

	scope, resolved := r.Scope()
	require.True(t, resolved)
	assert.Equal(t, uint(3), *scope.TenantID)
}

func TestLoadTenantsIsLazyAndIdempotent(t *testing.T) {
	lister := &fakeLister{tenants: []Ref{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}}}
	r := NewResolver(superAdmin(), superAdminRole, lister, &spyNotifier{}, nil)

	require.NoError(t, r.LoadTenants(context.Background()))
	require.NoError(t, r.LoadTenants(context.Background()))

	assert.Equal(t, 1, lister.calls)
	assert.Len(t, r.Tenants(), 2)
}

func TestLoadTenantsSkippedForRegularUser(t *testing.T) {
	lister := &fakeLister{tenants: []Ref{{ID: 1, Name: "Acme"}}}
	r := NewResolver(regularUser(7), superAdminRole, lister, &spyNotifier{}, nil)

	require.NoError(t, r.LoadTenants(context.Background()))
	assert.Equal(t, 0, lister.calls)
}

func TestLoadTenantsFailureKeepsBlocking(t *testing.T) {
	lister := &fakeLister{err: errors.New("boom")}
	notifier := &spyNotifier{}
	r := NewResolver(superAdmin(), superAdminRole, lister, notifier, nil)

	err := r.LoadTenants(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to load tenants"}, notifier.Errors())

	// Operations stay blocked; there is no unscoped fallback
	_, resolved := r.Scope()
	assert.False(t, resolved)

	// The failed load is retryable
	lister.mu.Lock()
	lister.err = nil
	lister.tenants = []Ref{{ID: 1, Name: "Acme"}}
	lister.mu.Unlock()
	require.NoError(t, r.LoadTenants(context.Background()))
	assert.Len(t, r.Tenants(), 1)
}

func TestSelectTenantResetsBranchAndFiresHook(t *testing.T) {
	r := NewResolver(superAdmin(), superAdminRole, &fakeLister{}, &spyNotifier{}, nil)

	changes := 0
	r.OnChange(func() { changes++ })

	r.SelectTenant(3)
	branchID := uint(12)
	r.SelectBranch(&branchID)

	scope, resolved := r.Scope()
	require.True(t, resolved)
	require.NotNil(t, scope.BranchID)
	assert.Equal(t, uint(12), *scope.BranchID)

	// Branches belong to a tenant; switching tenants drops the branch
	r.SelectTenant(4)
	assert.Nil(t, r.Branch())

	scope, _ = r.Scope()
	assert.Nil(t, scope.BranchID)
	assert.Equal(t, 3, changes)
}
