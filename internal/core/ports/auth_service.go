package ports

import "context"

// AuthService checks admin credentials. It holds no session state; callers
// record the outcome on the request's session.
type AuthService interface {
	Login(ctx context.Context, user, pass string) error
}
