package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the account module.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Password Mountable
}

// Router creates the account module router. Credential endpoints live under
// /auth, so mounting the router at /api yields /api/auth/login and friends.
//
// Example:
//
//	passwordHandler := account.NewPasswordHandler(authService, account.WithRateLimiter(bucket))
//
//	r := chi.NewRouter()
//	r.Mount("/api", account.Router(account.RouterOptions{
//	    Password: passwordHandler,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Route("/auth", func(auth chi.Router) {
		if opts.Password != nil {
			auth.Mount("/", opts.Password.Handle())
		}
	})

	return r
}
