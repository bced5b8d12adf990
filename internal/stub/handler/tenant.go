package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentora/backoffice/logger"
	"github.com/rentora/backoffice/rental"
)

// ListTenants returns the selectable tenants. This is the one collection
// reachable without a tenant scope; super-admins call it to pick theirs.
func ListTenants(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		var tenants []rental.Tenant
		if result := db.Where("active = ?", true).Order("name asc").Find(&tenants); result.Error != nil {
			log.Error("Failed to list tenants", zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list tenants"})
		}

		return c.JSON(http.StatusOK, echo.Map{"data": tenants})
	}
}
