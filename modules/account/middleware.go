package account

import (
	"net/http"

	"github.com/dmitrymomot/onboarding/handler"
	"github.com/dmitrymomot/onboarding/pkg/jwt"
	svcauth "github.com/dmitrymomot/onboarding/svc/auth"
)

// RequireAuth rejects requests without a valid access token with 401. For
// the rest it stores the user and its token payload in the request context,
// readable with svcauth.UserFromContext and jwt.PayloadFromContext.
func (h *PasswordHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.svc.Identify(r.Context(), r)
		if err != nil {
			h.errorHandler(handler.NewContext(w, r), err)
			return
		}

		ctx := svcauth.WithUser(r.Context(), user)
		ctx = jwt.WithPayload(ctx, &jwt.Payload{Subject: user.Email, UserID: user.ID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
