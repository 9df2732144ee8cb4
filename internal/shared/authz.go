package shared

// Owned is implemented by resources that carry an owner identity.
type Owned interface {
	OwnerEmail() string
}

// Authorize decides whether the principal may mutate the resource.
// An admin may act on any resource regardless of ownership; everyone
// else only on resources whose owner email matches their own. The
// comparison is a case-sensitive match on the stored email.
//
// The decision is computed fresh on every call and never cached.
func Authorize(p Principal, res Owned) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Email == res.OwnerEmail() {
		return nil
	}
	return ErrForbidden
}
