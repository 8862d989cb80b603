// Пакет view отвечает за серверный рендеринг представлений:
// index, userAddingMenu, userList, userMenu, userDetails, adminMenu,
// adminUserList.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/berezin/school/internal/models"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// Renderer выполняет рендеринг встроенных в бинарник шаблонов.
type Renderer struct {
	tpl *template.Template
}

// New разбирает встроенные шаблоны и возвращает готовый Renderer.
func New() (*Renderer, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"formatDate": formatDate,
	}).ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора шаблонов: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render выполняет шаблон name с данными data и записывает результат в ответ.
// Шаблон сначала рендерится в буфер: при ошибке выполнения клиент не получит
// половину страницы.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name+".gohtml", data); err != nil {
		return fmt.Errorf("ошибка выполнения шаблона %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}

// formatDate приводит необязательную дату рождения к формату yyyy-mm-dd
// (формат колонки birth_date и поля ввода даты в формах).
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// IndexData - данные главной страницы: служебное сообщение, форма входа
// и ошибки ее полей.
type IndexData struct {
	Message models.Message
	Form    models.LoginForm
	Errors  map[string]string
}

// UserFormData - данные форм создания и редактирования пользователя.
type UserFormData struct {
	User   models.User
	Errors map[string]string
}

// UserListData - данные публичного списка пользователей.
type UserListData struct {
	Users []models.User
}

// UserDetailsData - данные страницы просмотра пользователя.
type UserDetailsData struct {
	User models.User
}

// AdminMenuData - данные меню администратора.
type AdminMenuData struct {
	Admin  models.User
	Errors map[string]string
}

// AdminUserListData - данные списка пользователей в режиме администратора.
// Message несет пароль администратора: шаблон подставляет его в ссылки
// удаления, так как сессий в системе нет.
type AdminUserListData struct {
	Users   []models.User
	Message models.Message
}
