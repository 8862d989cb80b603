package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/berezin/school/internal/models"
	"github.com/berezin/school/internal/services"
	"github.com/berezin/school/internal/validation"
	"github.com/berezin/school/internal/view"
)

// AdminHandler обрабатывает HTTP-запросы режима администратора.
// Пароль администратора передается параметром в каждом запросе и проверяется
// заново при каждом обращении - сессий в системе нет.
type AdminHandler struct {
	service services.UserService
	views   *view.Renderer
}

// NewAdminHandler создает новый экземпляр AdminHandler.
func NewAdminHandler(s services.UserService, views *view.Renderer) *AdminHandler {
	return &AdminHandler{service: s, views: views}
}

// Menu обрабатывает GET /adminMode?password= - меню администратора.
func (h *AdminHandler) Menu(w http.ResponseWriter, r *http.Request) error {
	password := r.URL.Query().Get("password")

	admin, err := h.service.Authenticate(r.Context(), models.AdminLogin, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("Неверный логин/пароль"),
			})
		}
		return err
	}

	return h.views.Render(w, "adminMenu", view.AdminMenuData{Admin: *admin})
}

// UpdateAdmin обрабатывает PUT /adminMode/admin?oldPassword= - изменение
// пароля администратора после повторной аутентификации по старому паролю.
func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) error {
	oldPassword := r.URL.Query().Get("oldPassword")
	admin := userFromForm(r)

	if verrs := validation.Check(admin); len(verrs) > 0 {
		// Отменяем изменение пароля и просим повторить новый пароль еще раз.
		admin.Password = oldPassword
		errs := validation.AsMap(verrs)
		errs["password"] = "Введите новый пароль еще раз"
		log.Printf("[AdminHandler:UpdateAdmin] Ошибка валидации данных администратора")
		return h.views.Render(w, "adminMenu", view.AdminMenuData{Admin: admin, Errors: errs})
	}

	err := h.service.UpdateUser(r.Context(), admin.Login, oldPassword, &admin)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("У вас нет прав доступа для изменения данных администратора"),
			})
		}
		return err
	}

	redirect(w, r, "/adminMode", url.Values{"password": {admin.Password}})
	return nil
}

// UserList обрабатывает GET /adminMode/users?password= - список пользователей
// в режиме редактирования. Служебное сообщение несет пароль администратора:
// шаблон использует его для формирования ссылок удаления.
func (h *AdminHandler) UserList(w http.ResponseWriter, r *http.Request) error {
	password := r.URL.Query().Get("password")

	if _, err := h.service.Authenticate(r.Context(), models.AdminLogin, password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("Неверный логин/пароль"),
			})
		}
		return err
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		return err
	}

	return h.views.Render(w, "adminUserList", view.AdminUserListData{
		Users:   users,
		Message: models.NewMessage(password),
	})
}

// DeleteUser обрабатывает DELETE /adminMode/users/{login}?password= - удаление
// произвольного пользователя администратором. Удаление отсутствующего
// пользователя сбоем не считается: возвращается страница с сообщением.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	login := chi.URLParam(r, "login")
	password := r.URL.Query().Get("password")

	err := h.service.AdminDeleteUser(r.Context(), login, password)
	switch {
	case err == nil:
		redirect(w, r, "/adminMode/users", url.Values{"password": {password}})
		return nil
	case errors.Is(err, services.ErrInvalidCredentials):
		return h.views.Render(w, "index", view.IndexData{
			Message: models.NewMessage("У вас нет прав доступа для удаления пользователя"),
		})
	case errors.Is(err, services.ErrUserNotFound):
		return h.views.Render(w, "index", view.IndexData{
			Message: models.NewMessage(fmt.Sprintf("Пользователь %s отсутствует в системе", login)),
		})
	default:
		return err
	}
}
