package middleware

import (
	"net/http"
	"strings"
)

// methodField - имя скрытого поля формы с требуемым HTTP-методом.
const methodField = "_method"

// MethodOverride позволяет HTML-формам отправлять PUT- и DELETE-запросы:
// формы поддерживают только GET и POST, поэтому требуемый метод передается
// скрытым полем _method в POST-запросе.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.PostFormValue(methodField)) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
