package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
)

var candidateMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// MethodNotAllowed answers 405 with an Allow header listing the methods that
// routes registers for the requested path.
func MethodNotAllowed(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, AllowedMethods(routes, r.URL.Path))
	}
}

func AllowedMethods(routes chi.Routes, path string) string {
	var allowed []string
	for _, method := range candidateMethods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return strings.Join(allowed, ", ")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Resource not found")
}
