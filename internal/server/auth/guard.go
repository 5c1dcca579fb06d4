package auth

import "github.com/photohub/photohub/internal/common"

// The ownership guard: pure, total functions over two identifiers. Each
// returns nil on allow and common.ErrForbidden on mismatch.

// AuthorizeSelf allows a subject to mutate its own account only.
func AuthorizeSelf(authenticatedID, targetAccountID string) error {
	if authenticatedID != targetAccountID {
		return common.ErrForbidden
	}
	return nil
}

// AuthorizePhoto allows a subject to mutate a photo it owns only.
func AuthorizePhoto(authenticatedID, photoOwnerID string) error {
	if authenticatedID != photoOwnerID {
		return common.ErrForbidden
	}
	return nil
}

// AuthorizeCreateFor rejects a creation payload that claims an owner other
// than the authenticated subject, even when the subject is otherwise valid.
func AuthorizeCreateFor(authenticatedID, claimedOwnerID string) error {
	if authenticatedID != claimedOwnerID {
		return common.ErrForbidden
	}
	return nil
}
