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

// UserHandler обрабатывает HTTP-запросы пользовательской части приложения:
// главная страница, вход, регистрация, просмотр и редактирование пользователей.
// Каждый метод возвращает ошибку только при непредвиденном сбое - ее
// преобразует в общее сообщение глобальный обработчик (middleware.ErrorBoundary).
type UserHandler struct {
	service services.UserService
	views   *view.Renderer
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(s services.UserService, views *view.Renderer) *UserHandler {
	return &UserHandler{service: s, views: views}
}

// Index обрабатывает GET /index - главная страница с пустым служебным
// сообщением и пустой формой входа.
func (h *UserHandler) Index(w http.ResponseWriter, _ *http.Request) error {
	return h.views.Render(w, "index", view.IndexData{})
}

// Login обрабатывает POST /login. Учетные данные здесь не проверяются:
// происходит только валидация формы и перенаправление на страницу,
// которая выполнит аутентификацию по переданным параметрам.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	form := models.LoginForm{
		Login:    r.PostFormValue("login"),
		Password: r.PostFormValue("password"),
	}

	if verrs := validation.Check(form); len(verrs) > 0 {
		log.Printf("[UserHandler:Login] Ошибка валидации формы входа для логина '%s'", form.Login)
		return h.views.Render(w, "index", view.IndexData{
			Message: models.NewMessage("Ошибка ввода данных"),
			Form:    form,
			Errors:  validation.AsMap(verrs),
		})
	}

	// Администратор направляется в свое меню, остальные - в меню пользователя.
	if form.Login == models.AdminLogin {
		redirect(w, r, "/adminMode", url.Values{"password": {form.Password}})
		return nil
	}
	redirect(w, r, "/users/"+url.PathEscape(form.Login), url.Values{"password": {form.Password}})
	return nil
}

// AddUserForm обрабатывает GET /userAddingView - форма регистрации
// с пустой записью пользователя.
func (h *UserHandler) AddUserForm(w http.ResponseWriter, _ *http.Request) error {
	return h.views.Render(w, "userAddingMenu", view.UserFormData{})
}

// ListUsers обрабатывает GET /users - список всех пользователей системы
// без администратора.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		return err
	}
	return h.views.Render(w, "userList", view.UserListData{Users: users})
}

// EditUser обрабатывает GET /users/{login}?password= - меню пользователя
// с возможностью редактирования. Доступ по логину и паролю.
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) error {
	login := chi.URLParam(r, "login")
	password := r.URL.Query().Get("password")

	user, err := h.service.Authenticate(r.Context(), login, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("Неверный логин/пароль"),
			})
		}
		return err
	}

	return h.views.Render(w, "userMenu", view.UserFormData{User: *user})
}

// CreateUser обрабатывает POST /users - добавление нового пользователя.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	user := userFromForm(r)

	if verrs := validation.Check(user); len(verrs) > 0 {
		log.Printf("[UserHandler:CreateUser] Ошибка валидации данных пользователя '%s'", user.Login)
		return h.views.Render(w, "userAddingMenu", view.UserFormData{
			User:   user,
			Errors: validation.AsMap(verrs),
		})
	}

	err := h.service.CreateUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrLoginTaken) {
			return h.views.Render(w, "userAddingMenu", view.UserFormData{
				User:   user,
				Errors: map[string]string{"login": "логин уже существует в системе"},
			})
		}
		return err
	}

	redirect(w, r, "/users/"+url.PathEscape(user.Login), url.Values{"password": {user.Password}})
	return nil
}

// UpdateUser обрабатывает PUT /users/{login}?oldPassword= - обновление данных
// пользователя после повторной аутентификации по старому паролю.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) error {
	login := chi.URLParam(r, "login")
	oldPassword := r.URL.Query().Get("oldPassword")
	user := userFromForm(r)

	if verrs := validation.Check(user); len(verrs) > 0 {
		errs := validation.AsMap(verrs)
		// Если был введен новый пароль, отменяем его изменение и просим
		// пользователя повторить новый пароль еще раз.
		if user.Password != oldPassword {
			user.Password = oldPassword
			errs["password"] = "Введите новый пароль еще раз"
		}
		log.Printf("[UserHandler:UpdateUser] Ошибка валидации данных пользователя '%s'", login)
		return h.views.Render(w, "userMenu", view.UserFormData{User: user, Errors: errs})
	}

	err := h.service.UpdateUser(r.Context(), login, oldPassword, &user)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("У вас нет прав доступа для изменения данных пользователя"),
			})
		}
		return err
	}

	redirect(w, r, "/users/"+url.PathEscape(user.Login), url.Values{"password": {user.Password}})
	return nil
}

// DeleteUser обрабатывает DELETE /users/{login}?password= - удаление
// собственной учетной записи после повторной аутентификации.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	login := chi.URLParam(r, "login")
	password := r.URL.Query().Get("password")

	err := h.service.DeleteUser(r.Context(), login, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("У вас нет прав доступа для удаления пользователя"),
			})
		}
		return err
	}

	return h.views.Render(w, "index", view.IndexData{
		Message: models.NewMessage(fmt.Sprintf("Пользователь %s удален", login)),
	})
}

// ShowUser обрабатывает GET /users/{login}/showUser - просмотр данных
// пользователя. Поиск только по логину, без проверки пароля.
func (h *UserHandler) ShowUser(w http.ResponseWriter, r *http.Request) error {
	login := chi.URLParam(r, "login")

	user, err := h.service.GetUser(r.Context(), login)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return h.views.Render(w, "index", view.IndexData{
				Message: models.NewMessage("Пользователь не найден"),
			})
		}
		return err
	}

	return h.views.Render(w, "userDetails", view.UserDetailsData{User: *user})
}
