package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/backoffice/resource"
)

// funcLister adapts a function to the Lister interface
type funcLister struct {
	mu      sync.Mutex
	queries []resource.ListQuery
	fn      func(query resource.ListQuery) (*resource.ListResult[testRow], error)
}

func (l *funcLister) List(ctx context.Context, query resource.ListQuery, scope resource.Scope) (*resource.ListResult[testRow], error) {
	l.mu.Lock()
	l.queries = append(l.queries, query)
	l.mu.Unlock()
	return l.fn(query)
}

func (l *funcLister) lastQuery() resource.ListQuery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queries[len(l.queries)-1]
}

func pageOf(rows ...testRow) *resource.ListResult[testRow] {
	return &resource.ListResult[testRow]{Items: rows, Page: 1, TotalPages: 1, TotalCount: len(rows)}
}

func newListFixture(fn func(query resource.ListQuery) (*resource.ListResult[testRow], error)) (*ListController[testRow], *funcLister, *spyNotifier) {
	lister := &funcLister{fn: fn}
	notifier := &spyNotifier{}
	ctrl := NewListController[testRow](lister, resolvedScope(7), testRowDescriptor, testRowID, notifier, nil)
	return ctrl, lister, notifier
}

func TestListLoadAppliesResult(t *testing.T) {
	ctrl, _, notifier := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{
			Items:      []testRow{{ID: 1, Name: "one"}},
			Page:       query.Page,
			TotalPages: 4,
			TotalCount: 31,
		}, nil
	})

	require.NoError(t, ctrl.Load(context.Background()))

	result := ctrl.Result()
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 4, result.TotalPages)
	assert.NoError(t, ctrl.Err())
	assert.False(t, ctrl.Loading())
	assert.Empty(t, notifier.Errors())
}

func TestListLoadSuppressedWithoutScope(t *testing.T) {
	lister := &funcLister{fn: func(resource.ListQuery) (*resource.ListResult[testRow], error) {
		t.Fatal("network call issued without a resolved scope")
		return nil, nil
	}}
	ctrl := NewListController[testRow](lister, unresolvedScope(), testRowDescriptor, testRowID, &spyNotifier{}, nil)

	err := ctrl.Load(context.Background())
	assert.ErrorIs(t, err, resource.ErrScopeUnresolved)
}

func TestListFilterChangeResetsPage(t *testing.T) {
	ctrl, lister, _ := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{Page: query.Page, TotalPages: 9}, nil
	})

	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 5))
	require.Equal(t, 5, ctrl.Query().Page)

	require.NoError(t, ctrl.SetSearch(context.Background(), "ABC"))
	assert.Equal(t, 1, ctrl.Query().Page)
	assert.Equal(t, "ABC", lister.lastQuery().Search)
	assert.Equal(t, 1, lister.lastQuery().Page)

	require.NoError(t, ctrl.SetPage(context.Background(), 3))
	require.NoError(t, ctrl.SetStatus(context.Background(), "available"))
	assert.Equal(t, 1, ctrl.Query().Page)
	assert.Equal(t, "available", lister.lastQuery().Status)
}

func TestListPageChangePreservesFilters(t *testing.T) {
	ctrl, lister, _ := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{Page: query.Page, TotalPages: 9}, nil
	})

	require.NoError(t, ctrl.SetSearch(context.Background(), "ABC"))
	require.NoError(t, ctrl.SetStatus(context.Background(), "available"))
	require.NoError(t, ctrl.SetPage(context.Background(), 4))

	last := lister.lastQuery()
	assert.Equal(t, 4, last.Page)
	assert.Equal(t, "ABC", last.Search)
	assert.Equal(t, "available", last.Status)
}

func TestListSetPageClamps(t *testing.T) {
	ctrl, lister, _ := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{Page: query.Page, TotalPages: 3}, nil
	})

	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.SetPage(context.Background(), 99))
	assert.Equal(t, 3, lister.lastQuery().Page)
	assert.False(t, ctrl.HasNextPage())
	assert.True(t, ctrl.HasPrevPage())

	require.NoError(t, ctrl.SetPage(context.Background(), -2))
	assert.Equal(t, 1, lister.lastQuery().Page)
	assert.False(t, ctrl.HasPrevPage())
	assert.True(t, ctrl.HasNextPage())
}

func TestListScopeChangeResetsPage(t *testing.T) {
	lister := &funcLister{fn: func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{Page: query.Page, TotalPages: 9}, nil
	}}
	src := resolvedScope(7)
	ctrl := NewListController[testRow](lister, src, testRowDescriptor, testRowID, &spyNotifier{}, nil)

	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 5))
	require.Equal(t, 5, lister.lastQuery().Page)

	// Picking a branch restarts pagination like any other filter change
	branchID := uint(4)
	src.scope.BranchID = &branchID
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 1, lister.lastQuery().Page)
	assert.Equal(t, 1, ctrl.Query().Page)

	// So does switching tenants
	require.NoError(t, ctrl.SetPage(context.Background(), 3))
	src.scope = resource.TenantScope(8)
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 1, lister.lastQuery().Page)

	// An unchanged scope keeps the page across refreshes
	require.NoError(t, ctrl.SetPage(context.Background(), 2))
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 2, lister.lastQuery().Page)
}

func TestListLoadFailureResetsState(t *testing.T) {
	fail := false
	ctrl, _, notifier := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		if fail {
			return nil, errors.New("boom")
		}
		return &resource.ListResult[testRow]{
			Items:      []testRow{{ID: 1}},
			Page:       query.Page,
			TotalPages: 5,
		}, nil
	})

	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 3))

	fail = true
	err := ctrl.Load(context.Background())
	require.Error(t, err)

	assert.Nil(t, ctrl.Result().Items)
	assert.Equal(t, 1, ctrl.Query().Page)
	assert.Error(t, ctrl.Err())
	assert.Equal(t, []string{"Failed to load vehicles"}, notifier.Errors())

	// Next success clears the error state
	fail = false
	require.NoError(t, ctrl.Load(context.Background()))
	assert.NoError(t, ctrl.Err())
}

func TestListStaleResponseIsDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	call := 0
	var mu sync.Mutex

	lister := &funcLister{fn: func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-release
			return pageOf(testRow{ID: 1, Name: "stale"}), nil
		}
		return pageOf(testRow{ID: 2, Name: "fresh"}), nil
	}}
	ctrl := NewListController[testRow](lister, resolvedScope(7), testRowDescriptor, testRowID, &spyNotifier{}, nil)

	done := make(chan error, 1)
	go func() { done <- ctrl.Load(context.Background()) }()
	<-firstStarted

	// A second load settles while the first is still in flight
	require.NoError(t, ctrl.Load(context.Background()))
	require.Equal(t, "fresh", ctrl.Result().Items[0].Name)

	close(release)
	require.NoError(t, <-done)

	// The slower first response must not overwrite the newer one
	assert.Equal(t, "fresh", ctrl.Result().Items[0].Name)
}

func TestListKeepsItemsWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slow := false

	lister := &funcLister{fn: func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		if slow {
			close(started)
			<-release
		}
		return pageOf(testRow{ID: 1, Name: "first"}), nil
	}}
	ctrl := NewListController[testRow](lister, resolvedScope(7), testRowDescriptor, testRowID, &spyNotifier{}, nil)

	require.NoError(t, ctrl.Load(context.Background()))
	require.Len(t, ctrl.Result().Items, 1)

	slow = true
	done := make(chan error, 1)
	go func() { done <- ctrl.Refresh(context.Background()) }()
	<-started

	// The previous page stays visible during the refetch
	assert.True(t, ctrl.Loading())
	assert.Len(t, ctrl.Result().Items, 1)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, ctrl.Loading())
}

func TestListSelectAllIsPageScoped(t *testing.T) {
	page := [][]testRow{
		{{ID: 1}, {ID: 2}},
		{{ID: 3}, {ID: 4}},
	}
	ctrl, _, _ := newListFixture(func(query resource.ListQuery) (*resource.ListResult[testRow], error) {
		return &resource.ListResult[testRow]{
			Items:      page[query.Page-1],
			Page:       query.Page,
			TotalPages: 2,
			TotalCount: 4,
		}, nil
	})

	require.NoError(t, ctrl.Load(context.Background()))
	ctrl.SelectAllOnPage()
	assert.Equal(t, []uint{1, 2}, ctrl.SelectedIDs())

	require.NoError(t, ctrl.SetPage(context.Background(), 2))
	ctrl.SelectAllOnPage()

	// Selecting all on page 2 adds its rows; it never expands to the full
	// filtered set beyond pages the operator visited
	assert.Equal(t, []uint{1, 2, 3, 4}, ctrl.SelectedIDs())

	ctrl.ToggleSelect(3)
	assert.Equal(t, []uint{1, 2, 4}, ctrl.SelectedIDs())

	ctrl.ClearSelection()
	assert.Empty(t, ctrl.SelectedIDs())
}
