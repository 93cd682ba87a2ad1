// Package authz holds the ownership predicate every mutating catalog
// operation checks before persisting anything.
package authz

// IsOwner reports whether the caller created the resource. Pure check, no
// side effects; callers short-circuit with a Forbidden error when false.
func IsOwner(callerID, ownerID uint) bool {
	return callerID != 0 && callerID == ownerID
}
