package http

import (
	"net/http"
)

// queryPtr returns a pointer to the query parameter value, or nil when the
// parameter is absent or empty.
func queryPtr(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
