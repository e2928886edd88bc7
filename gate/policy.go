package gate

import "context"

// Policy defines authorization rules for a resource type.
type Policy[U any] interface {
	// Can reports whether user may perform action on resource.
	// For select/insert, resource may be nil.
	Can(ctx context.Context, user U, action Action, resource any) bool
}

// Ownable is implemented by rows that belong to a single user.
type Ownable interface {
	OwnerUserID() string
}

// OwnershipPolicy allows select/insert for any signed-in user and every other
// action only on resources owned by that user.
type OwnershipPolicy struct{}

func NewOwnershipPolicy() *OwnershipPolicy { return &OwnershipPolicy{} }

func (p *OwnershipPolicy) Can(_ context.Context, userID string, action Action, resource any) bool {
	if resource == nil {
		return action == ActionSelect || action == ActionInsert
	}
	o, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return o.OwnerUserID() == userID
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc[U any] func(ctx context.Context, user U, action Action, resource any) bool

func (f PolicyFunc[U]) Can(ctx context.Context, user U, action Action, resource any) bool {
	return f(ctx, user, action, resource)
}
