package usecase

import "strings"

// authorizeOwner checks that the token-verified identity matches the username
// claimed in the request path. The claimed name is never trusted on its own;
// it only ever passes this comparison.
//
// Comparison is case-sensitive except on the delete path (foldCase), which
// folds case to match the store's case-insensitive delete. That asymmetry is
// inherited behavior, kept deliberately.
func authorizeOwner(identity, claimed string, foldCase bool) error {
	if foldCase {
		if !strings.EqualFold(identity, claimed) {
			return ErrPermissionDenied
		}
		return nil
	}
	if identity != claimed {
		return ErrPermissionDenied
	}
	return nil
}
