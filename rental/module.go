package rental

import (
	"go.uber.org/zap"

	"github.com/rentora/backoffice/controller"
	"github.com/rentora/backoffice/resource"
)

// Module bundles the client and controllers of one back-office feature:
// the table, the create/edit form and the delete confirmation. One generic
// wiring replaces the hand-duplicated per-feature plumbing.
type Module[T any, D resource.TenantPayload] struct {
	Client *resource.Client[T]
	List   *controller.ListController[T]
	Form   *controller.FormController[T, D]
	Delete *controller.DeleteController
}

// ModuleDeps carries the shared collaborators every feature module needs
type ModuleDeps struct {
	ClientConfig resource.ClientConfig
	Scope        controller.ScopeSource
	Notifier     controller.Notifier
	Logger       *zap.Logger
}

// NewModule wires a feature module for one resource. The OnSuccess hook is
// passed through untouched; callers close the modal and refresh the list
// there, which keeps "form succeeded" decoupled from what the UI does next.
func NewModule[T any, D resource.TenantPayload](deps ModuleDeps, desc resource.Descriptor, idOf func(T) uint, hooks controller.FormHooks[T, D]) *Module[T, D] {
	client := resource.NewClient[T](deps.ClientConfig, desc)

	list := controller.NewListController[T](client, deps.Scope, desc, idOf, deps.Notifier, deps.Logger)

	form := controller.NewFormController[T, D](client, deps.Scope, hooks, deps.Notifier, deps.Logger)

	del := controller.NewDeleteController(client, deps.Scope, list, deps.Notifier, deps.Logger)

	return &Module[T, D]{
		Client: client,
		List:   list,
		Form:   form,
		Delete: del,
	}
}

// NewVehiclesModule wires the vehicles feature
func NewVehiclesModule(deps ModuleDeps, onSuccess func(*Vehicle)) *Module[Vehicle, *VehicleRequest] {
	return NewModule[Vehicle, *VehicleRequest](deps, VehiclesDescriptor,
		func(v Vehicle) uint { return v.ID },
		controller.FormHooks[Vehicle, *VehicleRequest]{
			NewDraft:  NewVehicleDraft,
			Hydrate:   VehicleDraftFrom,
			IDOf:      func(v *Vehicle) uint { return v.ID },
			OnSuccess: onSuccess,
		})
}

// NewCustomersModule wires the customers feature
func NewCustomersModule(deps ModuleDeps, onSuccess func(*Customer)) *Module[Customer, *CustomerRequest] {
	return NewModule[Customer, *CustomerRequest](deps, CustomersDescriptor,
		func(c Customer) uint { return c.ID },
		controller.FormHooks[Customer, *CustomerRequest]{
			NewDraft:  NewCustomerDraft,
			Hydrate:   CustomerDraftFrom,
			IDOf:      func(c *Customer) uint { return c.ID },
			OnSuccess: onSuccess,
		})
}

// NewBranchesModule wires the branches feature
func NewBranchesModule(deps ModuleDeps, onSuccess func(*Branch)) *Module[Branch, *BranchRequest] {
	return NewModule[Branch, *BranchRequest](deps, BranchesDescriptor,
		func(b Branch) uint { return b.ID },
		controller.FormHooks[Branch, *BranchRequest]{
			NewDraft:  NewBranchDraft,
			Hydrate:   BranchDraftFrom,
			IDOf:      func(b *Branch) uint { return b.ID },
			OnSuccess: onSuccess,
		})
}

// NewInvoicesModule wires the invoices feature
func NewInvoicesModule(deps ModuleDeps, onSuccess func(*Invoice)) *Module[Invoice, *InvoiceRequest] {
	return NewModule[Invoice, *InvoiceRequest](deps, InvoicesDescriptor,
		func(i Invoice) uint { return i.ID },
		controller.FormHooks[Invoice, *InvoiceRequest]{
			NewDraft:  NewInvoiceDraft,
			Hydrate:   InvoiceDraftFrom,
			IDOf:      func(i *Invoice) uint { return i.ID },
			OnSuccess: onSuccess,
		})
}

// NewPaymentsModule wires the payments feature
func NewPaymentsModule(deps ModuleDeps, onSuccess func(*Payment)) *Module[Payment, *PaymentRequest] {
	return NewModule[Payment, *PaymentRequest](deps, PaymentsDescriptor,
		func(p Payment) uint { return p.ID },
		controller.FormHooks[Payment, *PaymentRequest]{
			NewDraft:  NewPaymentDraft,
			Hydrate:   PaymentDraftFrom,
			IDOf:      func(p *Payment) uint { return p.ID },
			OnSuccess: onSuccess,
		})
}

// NewInspectionsModule wires the inspections feature
func NewInspectionsModule(deps ModuleDeps, onSuccess func(*Inspection)) *Module[Inspection, *InspectionRequest] {
	return NewModule[Inspection, *InspectionRequest](deps, InspectionsDescriptor,
		func(i Inspection) uint { return i.ID },
		controller.FormHooks[Inspection, *InspectionRequest]{
			NewDraft:  NewInspectionDraft,
			Hydrate:   InspectionDraftFrom,
			IDOf:      func(i *Inspection) uint { return i.ID },
			OnSuccess: onSuccess,
		})
}

// NewRolesModule wires the roles feature
func NewRolesModule(deps ModuleDeps, onSuccess func(*Role)) *Module[Role, *RoleRequest] {
	return NewModule[Role, *RoleRequest](deps, RolesDescriptor,
		func(r Role) uint { return r.ID },
		controller.FormHooks[Role, *RoleRequest]{
			NewDraft:  NewRoleDraft,
			Hydrate:   RoleDraftFrom,
			IDOf:      func(r *Role) uint { return r.ID },
			OnSuccess: onSuccess,
		})
}

// NewContractsModule wires the rental contracts feature
func NewContractsModule(deps ModuleDeps, onSuccess func(*Contract)) *Module[Contract, *ContractRequest] {
	return NewModule[Contract, *ContractRequest](deps, ContractsDescriptor,
		func(c Contract) uint { return c.ID },
		controller.FormHooks[Contract, *ContractRequest]{
			NewDraft:  NewContractDraft,
			Hydrate:   ContractDraftFrom,
			IDOf:      func(c *Contract) uint { return c.ID },
			OnSuccess: onSuccess,
		})
}

// NewPlansModule wires the subscription plans feature
func NewPlansModule(deps ModuleDeps, onSuccess func(*Plan)) *Module[Plan, *PlanRequest] {
	return NewModule[Plan, *PlanRequest](deps, PlansDescriptor,
		func(p Plan) uint { return p.ID },
		controller.FormHooks[Plan, *PlanRequest]{
			NewDraft:  NewPlanDraft,
			Hydrate:   PlanDraftFrom,
			IDOf:      func(p *Plan) uint { return p.ID },
			OnSuccess: onSuccess,
		})
}

// NewMaintenanceModule wires the maintenance feature
func NewMaintenanceModule(deps ModuleDeps, onSuccess func(*Maintenance)) *Module[Maintenance, *MaintenanceRequest] {
	return NewModule[Maintenance, *MaintenanceRequest](deps, MaintenanceDescriptor,
		func(m Maintenance) uint { return m.ID },
		controller.FormHooks[Maintenance, *MaintenanceRequest]{
			NewDraft:  NewMaintenanceDraft,
			Hydrate:   MaintenanceDraftFrom,
			IDOf:      func(m *Maintenance) uint { return m.ID },
			OnSuccess: onSuccess,
		})
}
