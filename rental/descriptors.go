package rental

import "github.com/rentora/backoffice/resource"

// Collection descriptors for the back-office resources. Page sizes match
// the fixed per-feature table sizes.
var (
	VehiclesDescriptor = resource.Descriptor{
		Name:           "vehicles",
		PageSize:       10,
		BulkIDsField:   "vehicle_ids",
		SecondaryParam: "branch_id",
		SearchColumn:   "plate_number",
	}

	CustomersDescriptor = resource.Descriptor{
		Name:         "customers",
		PageSize:     10,
		BulkIDsField: "customer_ids",
		SearchColumn: "name",
	}

	BranchesDescriptor = resource.Descriptor{
		Name:         "branches",
		PageSize:     10,
		BulkIDsField: "branch_ids",
		SearchColumn: "name",
	}

	InvoicesDescriptor = resource.Descriptor{
		Name:           "invoices",
		PageSize:       20,
		BulkIDsField:   "invoice_ids",
		SecondaryParam: "branch_id",
		SearchColumn:   "number",
	}

	PaymentsDescriptor = resource.Descriptor{
		Name:         "payments",
		PageSize:     20,
		BulkIDsField: "payment_ids",
		SearchColumn: "reference",
	}

	InspectionsDescriptor = resource.Descriptor{
		Name:           "inspections",
		PageSize:       10,
		BulkIDsField:   "inspection_ids",
		SecondaryParam: "branch_id",
		SearchColumn:   "inspector",
	}

	RolesDescriptor = resource.Descriptor{
		Name:         "roles",
		PageSize:     10,
		BulkIDsField: "role_ids",
		SearchColumn: "name",
	}

	ContractsDescriptor = resource.Descriptor{
		Name:           "contracts",
		PageSize:       20,
		BulkIDsField:   "contract_ids",
		SecondaryParam: "branch_id",
		SearchColumn:   "status",
	}

	PlansDescriptor = resource.Descriptor{
		Name:         "plans",
		PageSize:     10,
		BulkIDsField: "plan_ids",
		SearchColumn: "name",
	}

	MaintenanceDescriptor = resource.Descriptor{
		Name:         "maintenance",
		PageSize:     10,
		BulkIDsField: "maintenance_ids",
		SearchColumn: "service_type",
	}
)
