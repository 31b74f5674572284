package cli

import "context"

// Route is the first screen shown after start-up.
type Route string

const (
	RouteHome   Route = "home"
	RouteSignIn Route = "sign-in"
)

// InitialRoute reads the stored session. A present session skips the sign-in
// prompt; a missing or unreadable one does not.
func (a *App) InitialRoute(ctx context.Context) Route {
	sess, err := a.auth.RestoreSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "stored session ignored", "error", err)
		return RouteSignIn
	}
	if sess == nil {
		return RouteSignIn
	}
	a.setSession(sess)
	return RouteHome
}
