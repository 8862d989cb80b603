package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/berezin/school/internal/middleware"
)

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		form           url.Values
		expectedMethod string
	}{
		{
			name:           "POST с полем _method=PUT",
			method:         http.MethodPost,
			form:           url.Values{"_method": {"PUT"}, "login": {"nikita"}},
			expectedMethod: http.MethodPut,
		},
		{
			name:           "POST с полем _method=DELETE",
			method:         http.MethodPost,
			form:           url.Values{"_method": {"DELETE"}},
			expectedMethod: http.MethodDelete,
		},
		{
			name:           "Регистр значения не важен",
			method:         http.MethodPost,
			form:           url.Values{"_method": {"put"}},
			expectedMethod: http.MethodPut,
		},
		{
			name:           "POST без поля _method",
			method:         http.MethodPost,
			form:           url.Values{"login": {"nikita"}},
			expectedMethod: http.MethodPost,
		},
		{
			name:           "Неизвестное значение игнорируется",
			method:         http.MethodPost,
			form:           url.Values{"_method": {"PATCH"}},
			expectedMethod: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod string
			var gotLogin string
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotLogin = r.PostFormValue("login")
			})

			req := httptest.NewRequest(tt.method, "/users/nikita", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			middleware.MethodOverride(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expectedMethod, gotMethod)
			// Разобранная форма остается доступной последующим обработчикам
			assert.Equal(t, tt.form.Get("login"), gotLogin)
		})
	}

	t.Run("GET-запрос не изменяется", func(t *testing.T) {
		var gotMethod string
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
		})

		req := httptest.NewRequest(http.MethodGet, "/users?_method=DELETE", nil)
		middleware.MethodOverride(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, http.MethodGet, gotMethod)
	})
}
