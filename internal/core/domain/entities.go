package domain

// Role represents an account's capability class. Roles are compared by
// exact match; admin does not implicitly satisfy a resident-only check.
type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleResident || r == RoleAdmin
}

// BookingStatus is the state of a booking request.
//
// Lifecycle: requests start pending; admins move them to approved or
// declined. Transitions overwrite the current status unconditionally, so a
// decision can be revised (approved -> declined and back).
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingDeclined BookingStatus = "declined"
)

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	return s == BookingPending || s == BookingApproved || s == BookingDeclined
}

// IsDecision reports whether s is a status an admin may transition to.
func (s BookingStatus) IsDecision() bool {
	return s == BookingApproved || s == BookingDeclined
}

// ApartmentStatusAvailable is the only status the catalog produces. Booking
// approval does not flip a unit's status; occupancy is derived from the
// request ledger instead.
const ApartmentStatusAvailable = "available"
