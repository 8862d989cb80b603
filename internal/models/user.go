package models

import "time"

// AdminLogin - логин учетной записи администратора. Запись администратора
// хранится в той же таблице users и структурно не отличается от обычных
// пользователей, но обработчики не показывают ее в списках и не позволяют
// удалить через пользовательские маршруты.
const AdminLogin = "admin"

// User представляет запись таблицы users.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `validate` описывают ограничения полей (см. internal/validation).
// Пароль хранится и сравнивается в открытом виде: аутентификация определена
// как точное совпадение пары логин/пароль в таблице users.
type User struct {
	ID        int        `db:"id"`
	Login     string     `db:"login" validate:"required,min=4,max=10"`
	Password  string     `db:"password" validate:"required,min=4,max=10"`
	Name      string     `db:"name" validate:"max=15"`
	Surname   string     `db:"surname" validate:"max=15"`
	Address   string     `db:"address" validate:"max=100"`
	BirthDate *time.Time `db:"birth_date"`
	Info      string     `db:"info" validate:"max=1000"`
}

// IsAdmin сообщает, является ли запись учетной записью администратора.
func (u *User) IsAdmin() bool {
	return u.Login == AdminLogin
}

// LoginForm - форма входа с главной страницы. Не сохраняется в БД,
// используется только для запуска сценария аутентификации.
type LoginForm struct {
	Login    string `validate:"required,min=4,max=10"`
	Password string `validate:"required,min=4,max=10"`
}
