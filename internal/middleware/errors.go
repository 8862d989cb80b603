package middleware

import (
	"log"
	"net/http"

	"github.com/berezin/school/internal/models"
	"github.com/berezin/school/internal/view"
)

// Handler - обработчик, возвращающий ошибку вместо самостоятельной записи
// ответа об отказе. Ожидаемые исходы (ошибки валидации, отказ в доступе,
// отсутствие записи) обработчики разрешают сами; наружу возвращаются только
// непредвиденные сбои хранилища и рендеринга.
type Handler func(http.ResponseWriter, *http.Request) error

// ErrorBoundary - глобальный обработчик сбоев. Любая необработанная ошибка
// преобразуется в главную страницу с общим сообщением об ошибке БД:
// внутренние детали сбоя клиенту не раскрываются.
func ErrorBoundary(views *view.Renderer, next Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		log.Printf("[ErrorBoundary] Необработанная ошибка при %s %s: %v", r.Method, r.URL.Path, err)

		renderErr := views.Render(w, "index", view.IndexData{
			Message: models.NewMessage("Ошибка базы данных"),
		})
		if renderErr != nil {
			log.Printf("[ErrorBoundary] Ошибка рендеринга страницы ошибки: %v", renderErr)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
	}
}
