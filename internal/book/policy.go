package book

// Actor is the authenticated caller as seen by the write policy.
type Actor struct {
	ID    int64
	Staff bool
}

// CanWrite reports whether the actor may mutate a book with the given
// owner: staff users and the owner itself, nobody else. Reads carry no
// check at all.
func CanWrite(a Actor, owner *int64) bool {
	if a.Staff {
		return true
	}
	return owner != nil && *owner == a.ID
}
