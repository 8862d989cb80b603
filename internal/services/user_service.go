package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/berezin/school/internal/models"
	"github.com/berezin/school/internal/repository"
)

// UserService определяет бизнес-операции над пользователями и политику
// аутентификации. Сессий в системе нет: учетные данные передаются явным
// параметром в каждую изменяющую операцию и проверяются заново при каждом
// вызове.
type UserService interface {
	// ListUsers возвращает всех пользователей, кроме администратора.
	ListUsers(ctx context.Context) ([]models.User, error)
	// Authenticate находит пользователя по точному совпадению логина и пароля.
	// Отсутствие совпадения означает отказ в аутентификации без уточнения,
	// какое из полей неверно.
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
	// GetUser находит пользователя только по логину (просмотр данных).
	GetUser(ctx context.Context, login string) (*models.User, error)
	// CreateUser создает нового пользователя после явной проверки
	// уникальности логина. Присвоенный СУБД идентификатор записывается в user.
	CreateUser(ctx context.Context, user *models.User) error
	// UpdateUser обновляет данные пользователя после повторной аутентификации
	// по паре (login, oldPassword).
	UpdateUser(ctx context.Context, login, oldPassword string, user *models.User) error
	// DeleteUser удаляет пользователя после повторной аутентификации
	// по паре (login, password).
	DeleteUser(ctx context.Context, login, password string) error
	// AdminDeleteUser удаляет произвольного пользователя от имени
	// администратора после проверки пароля администратора.
	AdminDeleteUser(ctx context.Context, login, adminPassword string) error
}

// Кастомные ошибки сервиса.
var (
	// ErrInvalidCredentials - пара логин/пароль не найдена. Общая ошибка,
	// не раскрывающая, какое из полей неверно.
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	// ErrLoginTaken - логин уже занят другим пользователем.
	ErrLoginTaken = errors.New("логин уже существует в системе")
	// ErrUserNotFound - пользователь с указанным логином отсутствует.
	ErrUserNotFound = errors.New("пользователь не найден")
)

// Убедимся, что userService удовлетворяет интерфейсу UserService.
var _ UserService = (*userService)(nil)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый экземпляр сервиса пользователей.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers возвращает всех пользователей, кроме администратора.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAllExceptAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	return users, nil
}

// Authenticate находит пользователя по точному совпадению логина и пароля.
func (s *userService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.userRepo.FindByLoginAndPassword(ctx, login, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[UserService] Отказ в аутентификации для логина '%s'", login)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка аутентификации пользователя: %w", err)
	}

	log.Printf("[UserService] Пользователь '%s' успешно аутентифицирован", login)
	return user, nil
}

// GetUser находит пользователя только по логину.
func (s *userService) GetUser(ctx context.Context, login string) (*models.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return user, nil
}

// CreateUser создает нового пользователя. Уникальность логина проверяется
// явным запросом количества записей; нарушение уникальности на уровне СУБД
// (гонка двух одновременных созданий) отображается в ту же ошибку.
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	count, err := s.userRepo.CountByLogin(ctx, user.Login)
	if err != nil {
		return fmt.Errorf("ошибка проверки уникальности логина: %w", err)
	}
	if count > 0 {
		log.Printf("[UserService] Попытка создания пользователя с занятым логином '%s'", user.Login)
		return ErrLoginTaken
	}

	user.ID = 0 // идентификатор присваивает СУБД
	if err = s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			return ErrLoginTaken
		}
		return fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	log.Printf("[UserService] Пользователь '%s' создан с ID %d", user.Login, user.ID)
	return nil
}

// UpdateUser обновляет данные пользователя. Личность изменяемой записи
// определяется повторной аутентификацией по паре (login, oldPassword):
// идентификатор берется из найденной записи, а не из данных формы.
func (s *userService) UpdateUser(ctx context.Context, login, oldPassword string, user *models.User) error {
	current, err := s.userRepo.FindByLoginAndPassword(ctx, login, oldPassword)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[UserService] Отказ в изменении данных: неверные учетные данные для '%s'", login)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("ошибка повторной аутентификации: %w", err)
	}

	user.ID = current.ID
	if err = s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			return ErrLoginTaken
		}
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}

	log.Printf("[UserService] Данные пользователя '%s' (ID %d) обновлены", user.Login, user.ID)
	return nil
}

// DeleteUser удаляет пользователя после повторной аутентификации.
// Учетная запись администратора через пользовательский маршрут не удаляется.
func (s *userService) DeleteUser(ctx context.Context, login, password string) error {
	if login == models.AdminLogin {
		log.Printf("[UserService] Отказ в удалении учетной записи администратора через пользовательский маршрут")
		return ErrInvalidCredentials
	}

	if _, err := s.userRepo.FindByLoginAndPassword(ctx, login, password); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[UserService] Отказ в удалении: неверные учетные данные для '%s'", login)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("ошибка повторной аутентификации: %w", err)
	}

	if _, err := s.userRepo.DeleteByLogin(ctx, login); err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}

	log.Printf("[UserService] Пользователь '%s' удален", login)
	return nil
}

// AdminDeleteUser удаляет произвольного пользователя от имени администратора.
// Удаление отсутствующего пользователя - не сбой: возвращается ErrUserNotFound,
// чтобы обработчик мог сообщить об отсутствии записи.
func (s *userService) AdminDeleteUser(ctx context.Context, login, adminPassword string) error {
	if _, err := s.userRepo.FindByLoginAndPassword(ctx, models.AdminLogin, adminPassword); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[UserService] Отказ в удалении '%s': неверный пароль администратора", login)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("ошибка аутентификации администратора: %w", err)
	}

	count, err := s.userRepo.CountByLogin(ctx, login)
	if err != nil {
		return fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}
	if count == 0 {
		log.Printf("[UserService] Пользователь '%s' отсутствует в системе", login)
		return ErrUserNotFound
	}

	if _, err = s.userRepo.DeleteByLogin(ctx, login); err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}

	log.Printf("[UserService] Пользователь '%s' удален администратором", login)
	return nil
}
