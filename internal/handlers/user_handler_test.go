package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/berezin/school/internal/handlers"
	appmiddleware "github.com/berezin/school/internal/middleware"
	"github.com/berezin/school/internal/mocks"
	"github.com/berezin/school/internal/models"
	"github.com/berezin/school/internal/services"
	"github.com/berezin/school/internal/view"
)

// newTestRouter собирает маршрутизатор с теми же маршрутами, что и сервер,
// но с подмененным сервисом пользователей и настоящими шаблонами.
func newTestRouter(t *testing.T, svc services.UserService) http.Handler {
	t.Helper()

	views, err := view.New()
	require.NoError(t, err)

	userHandler := handlers.NewUserHandler(svc, views)
	adminHandler := handlers.NewAdminHandler(svc, views)

	eb := func(h appmiddleware.Handler) http.HandlerFunc {
		return appmiddleware.ErrorBoundary(views, h)
	}

	r := chi.NewRouter()
	r.Use(appmiddleware.MethodOverride)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/index", http.StatusFound)
	})
	r.Get("/index", eb(userHandler.Index))
	r.Post("/login", eb(userHandler.Login))
	r.Get("/userAddingView", eb(userHandler.AddUserForm))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", eb(userHandler.ListUsers))
		r.Post("/", eb(userHandler.CreateUser))
		r.Get("/{login}", eb(userHandler.EditUser))
		r.Put("/{login}", eb(userHandler.UpdateUser))
		r.Delete("/{login}", eb(userHandler.DeleteUser))
		r.Get("/{login}/showUser", eb(userHandler.ShowUser))
	})

	r.Route("/adminMode", func(r chi.Router) {
		r.Get("/", eb(adminHandler.Menu))
		r.Put("/admin", eb(adminHandler.UpdateAdmin))
		r.Get("/users", eb(adminHandler.UserList))
		r.Delete("/users/{login}", eb(adminHandler.DeleteUser))
	})

	return r
}

// doForm отправляет urlencoded-форму указанным методом.
func doForm(router http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doGet отправляет GET-запрос.
func doGet(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRootRedirect(t *testing.T) {
	router := newTestRouter(t, new(mocks.UserService))

	rec := doGet(router, "/")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/index", rec.Header().Get("Location"))
}

func TestIndex(t *testing.T) {
	router := newTestRouter(t, new(mocks.UserService))

	rec := doGet(router, "/index")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<h1>Школа</h1>")
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestLogin(t *testing.T) {
	t.Run("Вход пользователя", func(t *testing.T) {
		router := newTestRouter(t, new(mocks.UserService))

		rec := doForm(router, http.MethodPost, "/login", url.Values{
			"login":    {"nikita"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users/nikita?password=secret", rec.Header().Get("Location"))
	})

	t.Run("Вход администратора", func(t *testing.T) {
		router := newTestRouter(t, new(mocks.UserService))

		rec := doForm(router, http.MethodPost, "/login", url.Values{
			"login":    {models.AdminLogin},
			"password": {"admin1"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/adminMode?password=admin1", rec.Header().Get("Location"))
	})

	t.Run("Ошибка валидации формы", func(t *testing.T) {
		router := newTestRouter(t, new(mocks.UserService))

		rec := doForm(router, http.MethodPost, "/login", url.Values{
			"login":    {"ab"},
			"password": {"secret"},
		})

		// Вместо перенаправления - главная страница с сообщением об ошибке
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ошибка ввода данных")
		assert.Contains(t, rec.Body.String(), "Длинна логина от 4 до 10 символов!")
		// Введенный логин сохраняется в форме
		assert.Contains(t, rec.Body.String(), `value="ab"`)
	})
}

func TestAddUserForm(t *testing.T) {
	router := newTestRouter(t, new(mocks.UserService))

	rec := doGet(router, "/userAddingView")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Регистрация нового пользователя")
}

func TestListUsers(t *testing.T) {
	t.Run("Список пользователей", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().ListUsers(mock.Anything).Return([]models.User{
			{ID: 2, Login: "nikita", Name: "Никита", Surname: "Березин"},
			{ID: 3, Login: "alice1", Name: "Алиса"},
		}, nil).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "nikita")
		assert.Contains(t, rec.Body.String(), "alice1")
		assert.Contains(t, rec.Body.String(), "Березин")
		mockService.AssertExpectations(t)
	})

	t.Run("Пустой список", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().ListUsers(mock.Anything).Return([]models.User{}, nil).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Пользователи не зарегистрированы.")
		mockService.AssertExpectations(t)
	})

	t.Run("Сбой хранилища", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().ListUsers(mock.Anything).Return(nil, errors.New("db down")).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users")

		// Необработанная ошибка превращается в главную страницу с общим сообщением
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ошибка базы данных")
		mockService.AssertExpectations(t)
	})
}

func TestEditUser(t *testing.T) {
	t.Run("Меню пользователя", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			Authenticate(mock.Anything, "nikita", "secret").
			Return(&models.User{ID: 2, Login: "nikita", Password: "secret", Name: "Никита"}, nil).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users/nikita?password=secret")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Меню пользователя nikita")
		assert.Contains(t, rec.Body.String(), `value="Никита"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Неверный логин/пароль", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			Authenticate(mock.Anything, "nikita", "wrong1").
			Return(nil, services.ErrInvalidCredentials).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users/nikita?password=wrong1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Неверный логин/пароль")
		mockService.AssertExpectations(t)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Успешная регистрация", func(t *testing.T) {
		var created models.User
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			CreateUser(mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(_ context.Context, user *models.User) { created = *user }).
			Return(nil).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPost, "/users", url.Values{
			"login":     {"newuser"},
			"password":  {"pass12"},
			"name":      {"Новый"},
			"birthDate": {"2000-05-17"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users/newuser?password=pass12", rec.Header().Get("Location"))

		// Сервису передана модель, собранная из полей формы
		assert.Equal(t, "newuser", created.Login)
		assert.Equal(t, "Новый", created.Name)
		require.NotNil(t, created.BirthDate)
		assert.Equal(t, time.Date(2000, time.May, 17, 0, 0, 0, 0, time.UTC), *created.BirthDate)
		mockService.AssertExpectations(t)
	})

	t.Run("Ошибка валидации", func(t *testing.T) {
		router := newTestRouter(t, new(mocks.UserService))

		rec := doForm(router, http.MethodPost, "/users", url.Values{
			"login":    {"newuser"},
			"password": {"ab"},
		})

		// Форма показывается повторно с сообщением и введенными данными
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Длинна пароля от 4 до 10 символов!")
		assert.Contains(t, rec.Body.String(), `value="newuser"`)
	})

	t.Run("Дата рождения в неверном формате отбрасывается", func(t *testing.T) {
		var created models.User
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			CreateUser(mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(_ context.Context, user *models.User) { created = *user }).
			Return(nil).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPost, "/users", url.Values{
			"login":     {"newuser"},
			"password":  {"pass12"},
			"birthDate": {"17.05.2000"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Nil(t, created.BirthDate)
		mockService.AssertExpectations(t)
	})

	t.Run("Логин уже занят", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			CreateUser(mock.Anything, mock.AnythingOfType("*models.User")).
			Return(services.ErrLoginTaken).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPost, "/users", url.Values{
			"login":    {"existing"},
			"password": {"pass12"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "логин уже существует в системе")
		mockService.AssertExpectations(t)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Успешное обновление", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			UpdateUser(mock.Anything, "nikita", "oldpass", mock.AnythingOfType("*models.User")).
			Return(nil).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPut, "/users/nikita?oldPassword=oldpass", url.Values{
			"login":    {"nikita"},
			"password": {"newpass"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users/nikita?password=newpass", rec.Header().Get("Location"))
		mockService.AssertExpectations(t)
	})

	t.Run("Обновление через POST с полем _method", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			UpdateUser(mock.Anything, "nikita", "oldpass", mock.AnythingOfType("*models.User")).
			Return(nil).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPost, "/users/nikita?oldPassword=oldpass", url.Values{
			"_method":  {"PUT"},
			"login":    {"nikita"},
			"password": {"newpass"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Ошибка валидации с новым паролем", func(t *testing.T) {
		router := newTestRouter(t, new(mocks.UserService))

		rec := doForm(router, http.MethodPut, "/users/nikita?oldPassword=oldpass", url.Values{
			"login":    {"nikita"},
			"password": {"newpass"},
			"name":     {strings.Repeat("а", 16)},
		})

		// Смена пароля отменяется, пользователя просят повторить новый пароль
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Длинна имени от 0 до 15 символов!")
		assert.Contains(t, rec.Body.String(), "Введите новый пароль еще раз")
		assert.Contains(t, rec.Body.String(), `value="oldpass"`)
	})

	t.Run("Неверный старый пароль", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			UpdateUser(mock.Anything, "nikita", "wrong1", mock.AnythingOfType("*models.User")).
			Return(services.ErrInvalidCredentials).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodPut, "/users/nikita?oldPassword=wrong1", url.Values{
			"login":    {"nikita"},
			"password": {"newpass"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "У вас нет прав доступа для изменения данных пользователя")
		mockService.AssertExpectations(t)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Успешное удаление", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			DeleteUser(mock.Anything, "nikita", "secret").
			Return(nil).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodDelete, "/users/nikita?password=secret", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Пользователь nikita удален")
		mockService.AssertExpectations(t)
	})

	t.Run("Неверные учетные данные", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			DeleteUser(mock.Anything, "nikita", "wrong1").
			Return(services.ErrInvalidCredentials).Once()
		router := newTestRouter(t, mockService)

		rec := doForm(router, http.MethodDelete, "/users/nikita?password=wrong1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "У вас нет прав доступа для удаления пользователя")
		mockService.AssertExpectations(t)
	})
}

func TestShowUser(t *testing.T) {
	t.Run("Данные пользователя", func(t *testing.T) {
		birthDate := time.Date(2000, time.May, 17, 0, 0, 0, 0, time.UTC)
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			GetUser(mock.Anything, "nikita").
			Return(&models.User{
				ID: 2, Login: "nikita", Password: "secret",
				Name: "Никита", Surname: "Березин", BirthDate: &birthDate,
			}, nil).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users/nikita/showUser")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Пользователь nikita")
		assert.Contains(t, rec.Body.String(), "Березин")
		assert.Contains(t, rec.Body.String(), "2000-05-17")
		// Пароль на странице просмотра не показывается
		assert.NotContains(t, rec.Body.String(), "secret")
		mockService.AssertExpectations(t)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mockService := new(mocks.UserService)
		mockService.EXPECT().
			GetUser(mock.Anything, "ghost1").
			Return(nil, services.ErrUserNotFound).Once()
		router := newTestRouter(t, mockService)

		rec := doGet(router, "/users/ghost1/showUser")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Пользователь не найден")
		mockService.AssertExpectations(t)
	})
}
