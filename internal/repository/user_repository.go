package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/berezin/school/internal/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

// UserRepository определяет методы для работы с записями пользователей в хранилище.
// Все операции - одиночные запросы, транзакции на этом уровне не используются.
type UserRepository interface {
	// FindAllExceptAdmin возвращает всех пользователей, кроме администратора.
	FindAllExceptAdmin(ctx context.Context) ([]models.User, error)
	// FindByLoginAndPassword находит пользователя по точному совпадению логина и пароля.
	FindByLoginAndPassword(ctx context.Context, login, password string) (*models.User, error)
	// FindByLogin находит пользователя только по логину.
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	// CountByLogin возвращает количество записей с указанным логином (0 или 1,
	// так как поле login уникально).
	CountByLogin(ctx context.Context, login string) (int, error)
	// DeleteByLogin удаляет пользователя по логину и возвращает количество
	// удаленных записей.
	DeleteByLogin(ctx context.Context, login string) (int64, error)
	// Save сохраняет пользователя: вставка при нулевом ID, иначе обновление по ID.
	Save(ctx context.Context, user *models.User) error
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrLoginTaken   = errors.New("логин уже существует в системе")
)

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// userColumns - список колонок таблицы users в порядке, ожидаемом моделью.
const userColumns = `id, login, password, name, surname, address, birth_date, info`

// FindAllExceptAdmin возвращает всех пользователей, кроме администратора.
func (r *postgresUserRepository) FindAllExceptAdmin(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login <> $1 ORDER BY id`
	users := make([]models.User, 0)

	err := r.db.SelectContext(ctx, &users, query, models.AdminLogin)
	if err != nil {
		log.Printf("[Repo] Ошибка при получении списка пользователей: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка пользователей: %w", err)
	}

	return users, nil
}

// FindByLoginAndPassword находит пользователя по точному совпадению логина и
// пароля (сравнение выполняет СУБД, без обрезки пробелов и приведения регистра).
func (r *postgresUserRepository) FindByLoginAndPassword(
	ctx context.Context,
	login, password string,
) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1 AND password = $2`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, login, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("[Repo] Ошибка при поиске пользователя '%s' по логину и паролю: %v", login, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на поиск пользователя: %w", err)
	}

	return &user, nil
}

// FindByLogin находит пользователя только по логину.
func (r *postgresUserRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[Repo] Пользователь с логином '%s' не найден", login)
			return nil, ErrUserNotFound
		}
		log.Printf("[Repo] Ошибка при поиске пользователя '%s': %v", login, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на поиск пользователя: %w", err)
	}

	return &user, nil
}

// CountByLogin возвращает количество записей с указанным логином.
func (r *postgresUserRepository) CountByLogin(ctx context.Context, login string) (int, error) {
	query := `SELECT count(*) FROM users WHERE login = $1`
	var count int

	err := r.db.GetContext(ctx, &count, query, login)
	if err != nil {
		log.Printf("[Repo] Ошибка при подсчете пользователей с логином '%s': %v", login, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на подсчет пользователей: %w", err)
	}

	return count, nil
}

// DeleteByLogin удаляет пользователя по логину.
func (r *postgresUserRepository) DeleteByLogin(ctx context.Context, login string) (int64, error) {
	query := `DELETE FROM users WHERE login = $1`

	res, err := r.db.ExecContext(ctx, query, login)
	if err != nil {
		log.Printf("[Repo] Ошибка при удалении пользователя '%s': %v", login, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на удаление пользователя: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения количества удаленных записей: %w", err)
	}

	log.Printf("[Repo] Пользователь '%s' удален (записей: %d)", login, affected)
	return affected, nil
}

// Save сохраняет пользователя. При нулевом ID выполняется вставка с получением
// нового идентификатора от СУБД, иначе - обновление записи по ID.
func (r *postgresUserRepository) Save(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *postgresUserRepository) insert(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (login, password, name, surname, address, birth_date, info) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		user.Login, user.Password, user.Name, user.Surname, user.Address, user.BirthDate, user.Info,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("[Repo] Ошибка создания пользователя: логин '%s' уже занят", user.Login)
			return ErrLoginTaken
		}
		log.Printf("[Repo] Непредвиденная ошибка при создании пользователя '%s': %v", user.Login, err)
		return fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[Repo] Пользователь '%s' успешно создан с ID %d", user.Login, user.ID)
	return nil
}

func (r *postgresUserRepository) update(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET login = $1, password = $2, name = $3, surname = $4, address = $5, birth_date = $6, info = $7 WHERE id = $8`

	_, err := r.db.ExecContext(ctx, query,
		user.Login, user.Password, user.Name, user.Surname, user.Address, user.BirthDate, user.Info,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("[Repo] Ошибка обновления пользователя ID %d: логин '%s' уже занят", user.ID, user.Login)
			return ErrLoginTaken
		}
		log.Printf("[Repo] Непредвиденная ошибка при обновлении пользователя ID %d: %v", user.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление пользователя: %w", err)
	}

	log.Printf("[Repo] Пользователь '%s' (ID %d) успешно обновлен", user.Login, user.ID)
	return nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности (duplicate key).
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}
