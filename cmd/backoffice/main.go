package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/rentora/backoffice/config"
	"github.com/rentora/backoffice/controller"
	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/logger"
	"github.com/rentora/backoffice/metrics"
	"github.com/rentora/backoffice/rental"
	"github.com/rentora/backoffice/resource"
	"github.com/rentora/backoffice/tenant"
)

// Headless back-office session: resolves the tenant scope from the session
// token and walks the first page of every collection. Useful as a smoke
// check against a running API and as the reference wiring for embedders.
func main() {
	cfg, err := config.Load("backoffice")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting back-office session...", cfg.LogConfig()...)

	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	claims, err := jwtUtil.ValidateToken(cfg.API.SessionToken)
	if err != nil {
		log.Fatal("Invalid session token", zap.Error(err))
	}
	user := tenant.UserFromClaims(claims)
	log.Info("Session attached",
		zap.String("email", user.Email),
		zap.Uint("role_id", user.RoleID))

	clientConfig := resource.ClientConfig{
		BaseURL:      cfg.API.BaseURL,
		Locale:       cfg.API.Locale,
		SessionToken: cfg.API.SessionToken,
		HTTPClient:   &http.Client{Timeout: cfg.API.Timeout},
		Metrics:      metrics.NewAPIMetrics(cfg.ServiceName),
		Logger:       log,
	}

	notifier := controller.NewLogNotifier(log)
	resolver := tenant.NewResolver(user, cfg.Tenant.SuperAdminRoleID,
		tenant.NewHTTPLister(clientConfig), notifier, log)

	ctx := logger.WithContext(context.Background(), log)

	if resolver.IsSuperAdmin() {
		if err := resolver.LoadTenants(ctx); err != nil {
			log.Fatal("Cannot resolve tenant scope", zap.Error(err))
		}
		refs := resolver.Tenants()
		if len(refs) == 0 {
			log.Fatal("No selectable tenants")
		}
		resolver.SelectTenant(refs[0].ID)
		log.Info("Tenant selected", zap.Uint("tenant_id", refs[0].ID), zap.String("name", refs[0].Name))
	}

	deps := rental.ModuleDeps{
		ClientConfig: clientConfig,
		Scope:        resolver,
		Notifier:     notifier,
		Logger:       log,
	}

	loadAndReport(ctx, "vehicles", rental.NewVehiclesModule(deps, nil).List)
	loadAndReport(ctx, "customers", rental.NewCustomersModule(deps, nil).List)
	loadAndReport(ctx, "branches", rental.NewBranchesModule(deps, nil).List)
	loadAndReport(ctx, "invoices", rental.NewInvoicesModule(deps, nil).List)
	loadAndReport(ctx, "payments", rental.NewPaymentsModule(deps, nil).List)
	loadAndReport(ctx, "inspections", rental.NewInspectionsModule(deps, nil).List)
	loadAndReport(ctx, "roles", rental.NewRolesModule(deps, nil).List)
	loadAndReport(ctx, "contracts", rental.NewContractsModule(deps, nil).List)
	loadAndReport(ctx, "plans", rental.NewPlansModule(deps, nil).List)
	loadAndReport(ctx, "maintenance", rental.NewMaintenanceModule(deps, nil).List)
}

func loadAndReport[T any](ctx context.Context, name string, list *controller.ListController[T]) {
	log := logger.FromContext(ctx)
	if err := list.Load(ctx); err != nil {
		log.Warn("Collection load failed", zap.String("resource", name), zap.Error(err))
		return
	}
	result := list.Result()
	log.Info("Collection loaded",
		zap.String("resource", name),
		zap.Int("rows", len(result.Items)),
		zap.Int("total", result.TotalCount),
		zap.Int("total_pages", result.TotalPages))
}
