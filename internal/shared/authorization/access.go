package authorization

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccess reports whether the actor may act on a resource owned by ownerID.
// Admins may act on everything.
func (a Actor) CanAccess(ownerID uint) bool {
	return CanAccessResourceByOwnerID(a.UserID, a.Role, ownerID)
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
