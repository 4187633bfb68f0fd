package domain

// UnassignedRestaurant groups users that carry no restaurant name.
const UnassignedRestaurant = "Unassigned"

// RestaurantStaff is the per-restaurant bucket of the directory projection:
// the single admin slot plus everyone else working there.
type RestaurantStaff struct {
	Admin     *User  `json:"admin"`
	Employees []User `json:"employees"`
}
