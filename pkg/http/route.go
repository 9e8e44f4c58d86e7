package http

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gorilla/mux"

	pkgstrings "github.com/klwxsrx/media-service/pkg/strings"
)

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}
		return '_'
	}, strings.Trim(path, "/"))

	return pkgstrings.ToSnakeCase(fmt.Sprintf("%s_%s", method, path))
}

func getRequestRouteName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route != nil && route.GetName() != "" {
		return route.GetName()
	}

	return getRouteName(r.Method, r.URL.Path)
}
