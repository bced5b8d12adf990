package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentora/backoffice/logger"
)

// record is implemented by every stub model via rental.Meta
type record interface {
	RecordID() uint
	TenantRef() uint
	SetTenantRef(id uint)
}

// Entry describes how one collection is served
type Entry[T any] struct {
	// Path is the URL segment, e.g. "vehicles"
	Path string
	// BulkIDsField is the JSON field carrying ids on bulk delete
	BulkIDsField string
	// SearchColumn is matched with LIKE against the search parameter
	SearchColumn string
	// SecondaryColumn is the optional sub-scope column, e.g. "branch_id"
	SecondaryColumn string
	// Validate returns a rejection message for a bad payload, empty when ok.
	// Wire-shape checks only; the stub carries no business rules.
	Validate func(rec *T) string
}

type resourceHandler[T any] struct {
	db    *gorm.DB
	entry Entry[T]
}

// Register mounts the REST collection convention for one resource:
// list/get/create/update/delete plus bulk delete.
func Register[T any](api *echo.Group, db *gorm.DB, entry Entry[T]) {
	h := &resourceHandler[T]{db: db, entry: entry}

	g := api.Group("/" + entry.Path)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.DELETE("", h.removeBulk)
}

// effectiveTenant resolves the tenant boundary of a request. A regular
// operator's token pins the tenant; super-admin tokens carry none, so the
// explicit tenant_id from the request is used instead.
func (h *resourceHandler[T]) effectiveTenant(c echo.Context, explicit uint) (uint, bool) {
	if tenantID, ok := c.Get("tenant_id").(uint); ok && tenantID != 0 {
		return tenantID, true
	}
	if explicit != 0 {
		return explicit, true
	}
	return 0, false
}

func (h *resourceHandler[T]) list(c echo.Context) error {
	log := logger.FromEcho(c)

	queryTenant, _ := strconv.ParseUint(c.QueryParam("tenant_id"), 10, 32)
	tenantID, ok := h.effectiveTenant(c, uint(queryTenant))
	if !ok {
		log.Warn("Missing tenant_id on list", zap.String("resource", h.entry.Path))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	query := h.db.Model(new(T)).Where("tenant_id = ?", tenantID)

	if search := c.QueryParam("search"); search != "" && h.entry.SearchColumn != "" {
		query = query.Where(h.entry.SearchColumn+" LIKE ?", "%"+search+"%")
	}

	if status := c.QueryParam("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if h.entry.SecondaryColumn != "" {
		if secondary := c.QueryParam(h.entry.SecondaryColumn); secondary != "" {
			query = query.Where(h.entry.SecondaryColumn+" = ?", secondary)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("Failed to count records", zap.String("resource", h.entry.Path), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve records"})
	}

	var items []T
	result := query.
		Order(h.sortClause(c)).
		Limit(pageSize).
		Offset(offset).
		Find(&items)
	if result.Error != nil {
		log.Error("Failed to retrieve records", zap.String("resource", h.entry.Path), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve records"})
	}

	totalPages := (int(total) + pageSize - 1) / pageSize

	return c.JSON(http.StatusOK, echo.Map{
		"data":       items,
		"totalPages": totalPages,
		"count":      total,
	})
}

// sortClause whitelists the sortable columns; anything else falls back to
// creation order
func (h *resourceHandler[T]) sortClause(c echo.Context) string {
	sortBy := c.QueryParam("sortBy")
	switch sortBy {
	case "id", "created_at", "updated_at", "status":
	default:
		sortBy = "created_at"
	}

	sortOrder := c.QueryParam("sortOrder")
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	return sortBy + " " + sortOrder
}

func (h *resourceHandler[T]) get(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	queryTenant, _ := strconv.ParseUint(c.QueryParam("tenant_id"), 10, 32)
	tenantID, ok := h.effectiveTenant(c, uint(queryTenant))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	var rec T
	result := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&rec)
	if result.Error != nil {
		log.Warn("Record not found or does not belong to tenant",
			zap.String("resource", h.entry.Path),
			zap.Uint64("id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"data": rec})
}

func (h *resourceHandler[T]) create(c echo.Context) error {
	log := logger.FromEcho(c)

	var rec T
	if err := c.Bind(&rec); err != nil {
		log.Error("Invalid request data", zap.String("resource", h.entry.Path), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	scoped := any(&rec).(record)
	tenantID, ok := h.effectiveTenant(c, scoped.TenantRef())
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}
	// The token's tenant always wins so operators can't write into another
	// tenant
	scoped.SetTenantRef(tenantID)

	if h.entry.Validate != nil {
		if msg := h.entry.Validate(&rec); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	if result := h.db.Create(&rec); result.Error != nil {
		log.Error("Failed to create record", zap.String("resource", h.entry.Path), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create record"})
	}

	log.Info("Record created",
		zap.String("resource", h.entry.Path),
		zap.Uint("id", scoped.RecordID()),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, echo.Map{"data": rec})
}

func (h *resourceHandler[T]) update(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var payload T
	if err := c.Bind(&payload); err != nil {
		log.Error("Invalid request data", zap.String("resource", h.entry.Path), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	scoped := any(&payload).(record)
	tenantID, ok := h.effectiveTenant(c, scoped.TenantRef())
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	var existing T
	if result := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&existing); result.Error != nil {
		log.Warn("Record not found for update",
			zap.String("resource", h.entry.Path),
			zap.Uint64("id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
	}

	if h.entry.Validate != nil {
		if msg := h.entry.Validate(&payload); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	scoped.SetTenantRef(tenantID)
	result := h.db.Model(&existing).
		Select("*").
		Omit("id", "tenant_id", "created_at", "deleted_at").
		Updates(&payload)
	if result.Error != nil {
		log.Error("Failed to update record", zap.String("resource", h.entry.Path), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update record"})
	}

	var updated T
	if result := h.db.Where("id = ?", id).First(&updated); result.Error != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reload record"})
	}

	return c.JSON(http.StatusOK, echo.Map{"data": updated})
}

func (h *resourceHandler[T]) remove(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var body struct {
		TenantID uint `json:"tenant_id"`
	}
	// Body is optional for operators whose token pins the tenant
	_ = c.Bind(&body)

	tenantID, ok := h.effectiveTenant(c, body.TenantID)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	var rec T
	if result := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&rec); result.Error != nil {
		log.Warn("Record not found for delete",
			zap.String("resource", h.entry.Path),
			zap.Uint64("id", id),
			zap.Uint("tenant_id", tenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
	}

	// Soft delete
	if result := h.db.Delete(&rec); result.Error != nil {
		log.Error("Failed to delete record", zap.String("resource", h.entry.Path), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete record"})
	}

	log.Info("Record deleted",
		zap.String("resource", h.entry.Path),
		zap.Uint64("id", id),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, echo.Map{"message": "record deleted successfully"})
}

func (h *resourceHandler[T]) removeBulk(c echo.Context) error {
	log := logger.FromEcho(c)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var bodyTenant uint
	if raw, ok := body["tenant_id"]; ok {
		_ = json.Unmarshal(raw, &bodyTenant)
	}

	tenantID, ok := h.effectiveTenant(c, bodyTenant)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	var ids []uint
	if raw, ok := body[h.entry.BulkIDsField]; ok {
		if err := json.Unmarshal(raw, &ids); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid " + h.entry.BulkIDsField})
		}
	}
	if len(ids) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": h.entry.BulkIDsField + " is required"})
	}

	result := h.db.Where("tenant_id = ? AND id IN ?", tenantID, ids).Delete(new(T))
	if result.Error != nil {
		log.Error("Failed to bulk delete records",
			zap.String("resource", h.entry.Path),
			zap.Uint("tenant_id", tenantID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete records"})
	}

	log.Info("Records deleted",
		zap.String("resource", h.entry.Path),
		zap.Uint("tenant_id", tenantID),
		zap.Int64("rows_affected", result.RowsAffected))
	return c.JSON(http.StatusOK, echo.Map{"message": "records deleted successfully"})
}
