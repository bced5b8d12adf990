package controller

import (
	"sync"
	"time"

	"github.com/rentora/backoffice/resource"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type testRow struct {
	ID   uint
	Name string
}

var testRowDescriptor = resource.Descriptor{
	Name:         "vehicles",
	PageSize:     10,
	BulkIDsField: "vehicle_ids",
	SearchColumn: "plate_number",
}

func testRowID(r testRow) uint { return r.ID }

// staticScope is a ScopeSource fixed at construction
type staticScope struct {
	scope    resource.Scope
	resolved bool
}

func resolvedScope(tenantID uint) *staticScope {
	return &staticScope{scope: resource.TenantScope(tenantID), resolved: true}
}

func unresolvedScope() *staticScope {
	return &staticScope{}
}

func (s *staticScope) Scope() (resource.Scope, bool) {
	return s.scope, s.resolved
}

// spyNotifier records every notification
type spyNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *spyNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *spyNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *spyNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *spyNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}
