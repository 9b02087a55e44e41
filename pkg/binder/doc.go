// Package binder decodes HTTP request bodies into Go structs.
//
// JSON binds strict application/json bodies. Form binds urlencoded and
// multipart form values through `form` struct tags. Values are bound as
// received: no trimming or sanitizing is applied, since credentials must
// reach the service byte for byte.
//
// Binder failures wrap one of the package sentinels so callers can map them
// to a 400 response with IsBindingError:
//
//	type registerRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	var req registerRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrInvalidJSON) etc.
//	}
package binder
