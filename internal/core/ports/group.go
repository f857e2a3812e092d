package ports

import "context"

type GroupRepository interface {
	// GetOwnerID returns the owner of a group, or domain.ErrGroupNotFound.
	GetOwnerID(ctx context.Context, groupID string) (string, error)
}
