package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Only body values are bound; query parameters
// are ignored.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types: string, signed and unsigned integers, floats, bool,
// slices of those for multi-value fields and pointers for optional fields.
//
// Example:
//
//	type loginRequest struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := requireMediaType(r, "application/x-www-form-urlencoded", "multipart/form-data")
		if err != nil {
			return err
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// requireMediaType returns the request's media type if it is one of allowed.
func requireMediaType(r *http.Request, allowed ...string) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: expected %s", ErrMissingContentType, strings.Join(allowed, " or "))
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}

	for _, a := range allowed {
		if mediaType == a {
			return mediaType, nil
		}
	}
	return "", fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, strings.Join(allowed, " or "))
}
