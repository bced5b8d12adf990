package stub_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentora/backoffice/internal/stub"
	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/rental"
	"github.com/rentora/backoffice/resource"
	"github.com/rentora/backoffice/tenant"
)

var testJWTConfig = &jwtutil.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1}

type fixture struct {
	db      *gorm.DB
	server  *httptest.Server
	jwtUtil *jwtutil.JWTUtil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(stub.Models()...))

	jwtUtil := jwtutil.NewJWTUtil(testJWTConfig)
	server := httptest.NewServer(stub.New(db, jwtUtil, nil))
	t.Cleanup(server.Close)

	return &fixture{db: db, server: server, jwtUtil: jwtUtil}
}

// operatorToken issues a session token pinned to one tenant
func (f *fixture) operatorToken(t *testing.T, tenantID uint) string {
	t.Helper()
	token, err := f.jwtUtil.GenerateTokenWithTenant("op@example.com", 2, 5, &tenantID, "Acme Rentals")
	require.NoError(t, err)
	return token
}

// superAdminToken issues a session token without a tenant claim
func (f *fixture) superAdminToken(t *testing.T) string {
	t.Helper()
	token, err := f.jwtUtil.GenerateToken("admin@example.com", 1, 1)
	require.NoError(t, err)
	return token
}

func (f *fixture) vehicleClient(token string) *resource.Client[rental.Vehicle] {
	return resource.NewClient[rental.Vehicle](resource.ClientConfig{
		BaseURL:      f.server.URL,
		SessionToken: token,
	}, rental.VehiclesDescriptor)
}

func TestVehicleRoundTrip(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient(f.superAdminToken(t))
	ctx := context.Background()
	scope := resource.TenantScope(7)

	draft := rental.NewVehicleDraft()
	draft.PlateNumber = "ABC-123"
	draft.Make = "Toyota"
	draft.Model = "Corolla"
	draft.Year = 2023
	draft.DailyRate = 55

	created, err := client.Create(ctx, draft, scope)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, uint(7), created.TenantID)
	assert.Equal(t, rental.VehicleAvailable, created.Status)

	fetched, err := client.Get(ctx, created.ID, scope)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", fetched.PlateNumber)

	update := rental.VehicleDraftFrom(fetched)
	update.Status = rental.VehicleMaintenance
	update.Mileage = 12000
	updated, err := client.Update(ctx, created.ID, update, scope)
	require.NoError(t, err)
	assert.Equal(t, rental.VehicleMaintenance, updated.Status)
	assert.Equal(t, 12000, updated.Mileage)
	assert.Equal(t, "ABC-123", updated.PlateNumber)

	require.NoError(t, client.Remove(ctx, created.ID, scope))

	_, err = client.Get(ctx, created.ID, scope)
	var apiErr *resource.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	// Soft delete keeps the row
	var count int64
	require.NoError(t, f.db.Unscoped().Model(&rental.Vehicle{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListFiltersAndPagination(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient(f.superAdminToken(t))
	ctx := context.Background()
	scope := resource.TenantScope(7)

	for i := 0; i < 12; i++ {
		status := rental.VehicleAvailable
		if i%3 == 0 {
			status = rental.VehicleRented
		}
		require.NoError(t, f.db.Create(&rental.Vehicle{
			Meta:        rental.Meta{TenantID: 7},
			PlateNumber: fmt.Sprintf("PLT-%03d", i),
			Status:      status,
		}).Error)
	}

	query := resource.NewListQuery(rental.VehiclesDescriptor)
	result, err := client.List(ctx, query, scope)
	require.NoError(t, err)
	assert.Len(t, result.Items, 10)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 12, result.TotalCount)

	query.Page = 2
	result, err = client.List(ctx, query, scope)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	query = resource.NewListQuery(rental.VehiclesDescriptor)
	query.Status = rental.VehicleRented
	result, err = client.List(ctx, query, scope)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalCount)
	for _, v := range result.Items {
		assert.Equal(t, rental.VehicleRented, v.Status)
	}

	query = resource.NewListQuery(rental.VehiclesDescriptor)
	query.Search = "PLT-007"
	result, err = client.List(ctx, query, scope)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "PLT-007", result.Items[0].PlateNumber)
}

func TestTenantIsolation(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient(f.superAdminToken(t))
	ctx := context.Background()

	require.NoError(t, f.db.Create(&rental.Vehicle{Meta: rental.Meta{TenantID: 7}, PlateNumber: "MINE-1"}).Error)
	require.NoError(t, f.db.Create(&rental.Vehicle{Meta: rental.Meta{TenantID: 8}, PlateNumber: "THEIRS-1"}).Error)

	result, err := client.List(ctx, resource.NewListQuery(rental.VehiclesDescriptor), resource.TenantScope(7))
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "MINE-1", result.Items[0].PlateNumber)
}

func TestTokenTenantOverridesRequestedScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&rental.Vehicle{Meta: rental.Meta{TenantID: 7}, PlateNumber: "MINE-1"}).Error)
	require.NoError(t, f.db.Create(&rental.Vehicle{Meta: rental.Meta{TenantID: 8}, PlateNumber: "THEIRS-1"}).Error)

	// The operator token pins tenant 7; asking for tenant 8 must not leak
	client := f.vehicleClient(f.operatorToken(t, 7))
	result, err := client.List(ctx, resource.NewListQuery(rental.VehiclesDescriptor), resource.TenantScope(8))
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "MINE-1", result.Items[0].PlateNumber)

	// Writes are forced into the token's tenant too
	draft := rental.NewVehicleDraft()
	draft.PlateNumber = "NEW-1"
	created, err := client.Create(ctx, draft, resource.TenantScope(8))
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.TenantID)
}

func TestCreateValidationRejection(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient(f.superAdminToken(t))

	draft := rental.NewVehicleDraft()
	_, err := client.Create(context.Background(), draft, resource.TenantScope(7))

	var saveErr *resource.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, http.StatusBadRequest, saveErr.Status)
	assert.Equal(t, "Plate number is required", saveErr.Message)
}

func TestBulkDelete(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient(f.superAdminToken(t))
	ctx := context.Background()
	scope := resource.TenantScope(7)

	var ids []uint
	for i := 0; i < 3; i++ {
		v := rental.Vehicle{Meta: rental.Meta{TenantID: 7}, PlateNumber: fmt.Sprintf("BLK-%d", i)}
		require.NoError(t, f.db.Create(&v).Error)
		ids = append(ids, v.ID)
	}
	keeper := rental.Vehicle{Meta: rental.Meta{TenantID: 7}, PlateNumber: "KEEP-1"}
	require.NoError(t, f.db.Create(&keeper).Error)
	foreign := rental.Vehicle{Meta: rental.Meta{TenantID: 8}, PlateNumber: "FOREIGN-1"}
	require.NoError(t, f.db.Create(&foreign).Error)

	// A foreign id in the batch must not cross the tenant boundary
	require.NoError(t, client.RemoveBulk(ctx, append(ids, foreign.ID), scope))

	result, err := client.List(ctx, resource.NewListQuery(rental.VehiclesDescriptor), scope)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "KEEP-1", result.Items[0].PlateNumber)

	var foreignCount int64
	require.NoError(t, f.db.Model(&rental.Vehicle{}).Where("tenant_id = ?", 8).Count(&foreignCount).Error)
	assert.Equal(t, int64(1), foreignCount)
}

func TestMissingTokenRejected(t *testing.T) {
	f := newFixture(t)
	client := f.vehicleClient("")

	_, err := client.List(context.Background(), resource.NewListQuery(rental.VehiclesDescriptor), resource.TenantScope(7))

	var apiErr *resource.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestTenantListEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&rental.Tenant{Name: "Globex", Active: true}).Error)
	require.NoError(t, f.db.Create(&rental.Tenant{Name: "Acme", Active: true}).Error)

	defunct := rental.Tenant{Name: "Defunct", Active: true}
	require.NoError(t, f.db.Create(&defunct).Error)
	require.NoError(t, f.db.Model(&defunct).Update("active", false).Error)

	lister := tenant.NewHTTPLister(resource.ClientConfig{
		BaseURL:      f.server.URL,
		SessionToken: f.superAdminToken(t),
	})

	refs, err := lister.ListTenants(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Acme", refs[0].Name)
	assert.Equal(t, "Globex", refs[1].Name)
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
