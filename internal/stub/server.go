// Package stub is a development stand-in for the back-office REST API. It
// serves the collection convention the resource clients consume, with
// wire-shape validation only; real business rules (VAT arithmetic, billing,
// contract lifecycles) stay with the production backend.
package stub

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/rentora/backoffice/internal/stub/handler"
	"github.com/rentora/backoffice/internal/stub/middleware"
	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/logger"
	"github.com/rentora/backoffice/metrics"
	"github.com/rentora/backoffice/rental"
	"github.com/rentora/backoffice/resource"
)

// Models returns every model the stub migrates
func Models() []interface{} {
	return []interface{}{
		&rental.Tenant{},
		&rental.Vehicle{},
		&rental.Customer{},
		&rental.Branch{},
		&rental.Invoice{},
		&rental.Payment{},
		&rental.Inspection{},
		&rental.Role{},
		&rental.Contract{},
		&rental.Plan{},
		&rental.Maintenance{},
	}
}

// New builds the stub server with the full middleware chain and every
// back-office collection mounted
func New(db *gorm.DB, jwtUtil *jwtutil.JWTUtil, httpMetrics *metrics.HTTPMetrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	if httpMetrics != nil {
		e.Use(httpMetrics.Middleware())
	}
	e.Use(logger.Middleware())

	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	api := e.Group(resource.AdminBasePath)
	api.Use(middleware.AuthMiddleware(jwtUtil))

	api.GET("/tenants", handler.ListTenants(db))

	handler.Register(api, db, handler.Entry[rental.Vehicle]{
		Path:            rental.VehiclesDescriptor.Name,
		BulkIDsField:    rental.VehiclesDescriptor.BulkIDsField,
		SearchColumn:    rental.VehiclesDescriptor.SearchColumn,
		SecondaryColumn: "branch_id",
		Validate: func(v *rental.Vehicle) string {
			if v.PlateNumber == "" {
				return "Plate number is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Customer]{
		Path:         rental.CustomersDescriptor.Name,
		BulkIDsField: rental.CustomersDescriptor.BulkIDsField,
		SearchColumn: rental.CustomersDescriptor.SearchColumn,
		Validate: func(c *rental.Customer) string {
			if c.Name == "" {
				return "Name is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Branch]{
		Path:         rental.BranchesDescriptor.Name,
		BulkIDsField: rental.BranchesDescriptor.BulkIDsField,
		SearchColumn: rental.BranchesDescriptor.SearchColumn,
		Validate: func(b *rental.Branch) string {
			if b.Name == "" {
				return "Name is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Invoice]{
		Path:            rental.InvoicesDescriptor.Name,
		BulkIDsField:    rental.InvoicesDescriptor.BulkIDsField,
		SearchColumn:    rental.InvoicesDescriptor.SearchColumn,
		SecondaryColumn: "branch_id",
		Validate: func(i *rental.Invoice) string {
			if i.CustomerID == 0 {
				return "Customer is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Payment]{
		Path:         rental.PaymentsDescriptor.Name,
		BulkIDsField: rental.PaymentsDescriptor.BulkIDsField,
		SearchColumn: rental.PaymentsDescriptor.SearchColumn,
		Validate: func(p *rental.Payment) string {
			if p.InvoiceID == 0 {
				return "Invoice is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Inspection]{
		Path:            rental.InspectionsDescriptor.Name,
		BulkIDsField:    rental.InspectionsDescriptor.BulkIDsField,
		SearchColumn:    rental.InspectionsDescriptor.SearchColumn,
		SecondaryColumn: "branch_id",
		Validate: func(i *rental.Inspection) string {
			if i.VehicleID == 0 {
				return "Vehicle is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Role]{
		Path:         rental.RolesDescriptor.Name,
		BulkIDsField: rental.RolesDescriptor.BulkIDsField,
		SearchColumn: rental.RolesDescriptor.SearchColumn,
		Validate: func(r *rental.Role) string {
			if r.Name == "" {
				return "Name is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Contract]{
		Path:            rental.ContractsDescriptor.Name,
		BulkIDsField:    rental.ContractsDescriptor.BulkIDsField,
		SearchColumn:    rental.ContractsDescriptor.SearchColumn,
		SecondaryColumn: "branch_id",
		Validate: func(c *rental.Contract) string {
			if c.CustomerID == 0 {
				return "Customer is required"
			}
			if c.VehicleID == 0 {
				return "Vehicle is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Plan]{
		Path:         rental.PlansDescriptor.Name,
		BulkIDsField: rental.PlansDescriptor.BulkIDsField,
		SearchColumn: rental.PlansDescriptor.SearchColumn,
		Validate: func(p *rental.Plan) string {
			if p.Name == "" {
				return "Name is required"
			}
			return ""
		},
	})

	handler.Register(api, db, handler.Entry[rental.Maintenance]{
		Path:         rental.MaintenanceDescriptor.Name,
		BulkIDsField: rental.MaintenanceDescriptor.BulkIDsField,
		SearchColumn: rental.MaintenanceDescriptor.SearchColumn,
		Validate: func(m *rental.Maintenance) string {
			if m.VehicleID == 0 {
				return "Vehicle is required"
			}
			return ""
		},
	})

	return e
}
