package domain

// Role identifies a staff member's position. Role values are part of the
// persisted contract and match what the original data carries.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleCashier    Role = "Caissier"
	RoleWaiter     Role = "Serveur"
)

// Capability names a permission the application checks before an action.
// Authorization policy lives in this one table rather than in scattered
// role-string comparisons at call sites.
type Capability string

const (
	CapOperateRegister Capability = "register:operate"
	CapManageInventory Capability = "inventory:manage"
	CapManageProducts  Capability = "products:manage"
	CapManageUsers     Capability = "users:manage"
	CapManageTenants   Capability = "tenants:manage"
	CapViewJournals    Capability = "journals:view"
	CapTakeOrders      Capability = "orders:take"
	CapViewMessages    Capability = "messages:view"
)

// rolePermissions is the single authorization table keyed by role.
var rolePermissions = map[Role]map[Capability]struct{}{
	RoleSuperAdmin: setOf(
		CapManageTenants, CapManageUsers, CapViewJournals, CapViewMessages,
	),
	RoleAdmin: setOf(
		CapOperateRegister, CapManageInventory, CapManageProducts,
		CapManageUsers, CapViewJournals, CapTakeOrders, CapViewMessages,
	),
	RoleCashier: setOf(
		CapOperateRegister, CapViewJournals, CapTakeOrders,
	),
	RoleWaiter: setOf(
		CapTakeOrders,
	),
}

func setOf(caps ...Capability) map[Capability]struct{} {
	s := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// RoleCan reports whether the given role carries the capability.
// Unknown roles carry nothing.
func RoleCan(role Role, cap Capability) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[cap]
	return ok
}
