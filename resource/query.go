package resource

import (
	"net/url"
	"strconv"
)

// StatusAll is the sentinel meaning "no status filter". It is never sent to
// the backend; the key is omitted instead.
const StatusAll = "all"

// Default sort applied to every list call
const (
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
)

// Descriptor identifies one back-office resource collection and how its
// endpoints are shaped.
type Descriptor struct {
	// Name is the URL path segment, e.g. "vehicles"
	Name string
	// PageSize is the fixed page size for this feature's table
	PageSize int
	// BulkIDsField is the JSON field carrying ids on bulk delete, e.g. "vehicle_ids"
	BulkIDsField string
	// SecondaryParam is the query key for the branch sub-scope, empty when the
	// resource is not branch-scoped
	SecondaryParam string
	// SearchColumn is the column the backend matches free-text search against
	SearchColumn string
}

// ListQuery holds the query state of one paginated table
type ListQuery struct {
	Page      int
	PageSize  int
	Search    string
	Status    string
	SortBy    string
	SortOrder string
}

// NewListQuery builds the default query for a resource
func NewListQuery(desc Descriptor) ListQuery {
	return ListQuery{
		Page:      1,
		PageSize:  desc.PageSize,
		Status:    StatusAll,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

// Values maps the query to URL parameters. Empty or "all" filters are
// omitted entirely rather than sent as empty strings.
func (q ListQuery) Values(desc Descriptor, scope Scope) url.Values {
	values := url.Values{}
	if scope.TenantID != nil {
		values.Set("tenant_id", strconv.FormatUint(uint64(*scope.TenantID), 10))
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = desc.PageSize
	}
	values.Set("pageSize", strconv.Itoa(pageSize))

	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Status != "" && q.Status != StatusAll {
		values.Set("status", q.Status)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	values.Set("sortBy", sortBy)

	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = DefaultSortOrder
	}
	values.Set("sortOrder", sortOrder)

	if desc.SecondaryParam != "" && scope.BranchID != nil {
		values.Set(desc.SecondaryParam, strconv.FormatUint(uint64(*scope.BranchID), 10))
	}

	return values
}

// ListResult is one page of records. It is replaced wholesale on every
// successful fetch, never patched incrementally.
type ListResult[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalCount int
}
