package resource

// Scope carries the tenant (and optional branch) boundary applied to every
// back-office API call. A scope with no tenant is unresolved and must never
// reach the network.
type Scope struct {
	TenantID *uint
	BranchID *uint
}

// Resolved reports whether the scope carries a tenant
func (s Scope) Resolved() bool {
	return s.TenantID != nil
}

// Equal reports whether two scopes cover the same tenant and branch
func (s Scope) Equal(other Scope) bool {
	return uintPtrEqual(s.TenantID, other.TenantID) && uintPtrEqual(s.BranchID, other.BranchID)
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// TenantScope builds a resolved scope for a fixed tenant
func TenantScope(tenantID uint) Scope {
	return Scope{TenantID: &tenantID}
}
