package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/berezin/school/internal/handlers"
	appmiddleware "github.com/berezin/school/internal/middleware"
	"github.com/berezin/school/internal/repository"
	"github.com/berezin/school/internal/services"
	"github.com/berezin/school/internal/view"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db           *sqlx.DB
	views        *view.Renderer
	userHandler  *handlers.UserHandler
	adminHandler *handlers.AdminHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера управления пользователями...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	// 2. Рендерер представлений
	deps.views, err = view.New()
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке рендерера: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации рендерера представлений: %w", err)
	}

	// 3. Репозиторий и сервис
	userRepo := repository.NewPostgresUserRepository(deps.db)
	userService := services.NewUserService(userRepo)

	// 4. Обработчики
	deps.userHandler = handlers.NewUserHandler(userService, deps.views)
	deps.adminHandler = handlers.NewAdminHandler(userService, deps.views)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes) // /path/ -> /path
	r.Use(appmiddleware.MethodOverride)

	// Ошибки обработчиков преобразует глобальный обработчик сбоев.
	eb := func(h appmiddleware.Handler) http.HandlerFunc {
		return appmiddleware.ErrorBoundary(deps.views, h)
	}

	// --- Маршруты --- //
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/index", http.StatusFound)
	})
	r.Get("/index", eb(deps.userHandler.Index))
	r.Post("/login", eb(deps.userHandler.Login))
	r.Get("/userAddingView", eb(deps.userHandler.AddUserForm))

	// Маршруты пользователей
	r.Route("/users", func(r chi.Router) {
		r.Get("/", eb(deps.userHandler.ListUsers))
		r.Post("/", eb(deps.userHandler.CreateUser))
		r.Get("/{login}", eb(deps.userHandler.EditUser))
		r.Put("/{login}", eb(deps.userHandler.UpdateUser))
		r.Delete("/{login}", eb(deps.userHandler.DeleteUser))
		r.Get("/{login}/showUser", eb(deps.userHandler.ShowUser))
	})

	// Маршруты режима администратора
	r.Route("/adminMode", func(r chi.Router) {
		r.Get("/", eb(deps.adminHandler.Menu))
		r.Put("/admin", eb(deps.adminHandler.UpdateAdmin))
		r.Get("/users", eb(deps.adminHandler.UserList))
		r.Delete("/users/{login}", eb(deps.adminHandler.DeleteUser))
	})

	return r
}
