// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a bound request struct and returns a Response.
// Wrap turns it into an http.HandlerFunc: binders decode the request, the
// handler runs, and any binding or rendering error goes to the ErrorHandler.
//
//	type loginRequest struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
//
//	func (h *Handler) login(ctx handler.Context, req loginRequest) handler.Response {
//		resp, err := h.svc.Login(ctx, ctx.ResponseWriter(), req.Username, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(resp)
//	}
//
//	r.Post("/login", handler.Wrap(h.login,
//		handler.WithBinders[handler.Context, loginRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, loginRequest](handler.NewErrorHandler(log)),
//	))
//
// # Errors
//
// NewErrorHandler renders every error as
//
//	{"error": {"code": "<key>", "message": "<message>"}}
//
// Binder failures are 400 bad_request. Errors implementing StatusError use
// their own status and message. core.HTTPError values use their code and key.
// Anything else, and every 5xx, is reported as a 500 with the message
// "internal server error" while the cause is logged with the request id.
package handler
