// Пакет validation проверяет входные данные форм на уровне отдельных полей.
// Правила описаны тэгами `validate` на структурах пакета models, тексты
// сообщений пользователю фиксированы в таблице messages. Уникальность логина
// на этом уровне не проверяется - она обеспечивается сервисным слоем через
// явный запрос количества записей.
package validation

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError - нарушение ограничения одного поля формы.
type FieldError struct {
	Field   string // имя поля формы: login, password, name, surname, address, info
	Message string // текст служебного сообщения для пользователя
}

// validate - единственный экземпляр валидатора, потокобезопасен.
var validate = validator.New(validator.WithRequiredStructEnabled())

// messages - тексты сообщений по ключу "Структура.Поле.тэг".
// Ограничения min и max одного поля сообщают об одной и той же ошибке длины.
var messages = map[string]string{
	"User.Login.required":    "Заполните поле login",
	"User.Login.min":         "Длинна логина от 4 до 10 символов!",
	"User.Login.max":         "Длинна логина от 4 до 10 символов!",
	"User.Password.required": "Заполните поле password",
	"User.Password.min":      "Длинна пароля от 4 до 10 символов!",
	"User.Password.max":      "Длинна пароля от 4 до 10 символов!",
	"User.Name.max":          "Длинна имени от 0 до 15 символов!",
	"User.Surname.max":       "Длинна фамилии от 0 до 15 символов!",
	"User.Address.max":       "Длинна адреса от 0 до 100 символов!",
	"User.Info.max":          "Длинна сообщения от 0 до 1000 символов!",

	"LoginForm.Login.required":    "Ошибка! \"Логин\" не введен",
	"LoginForm.Login.min":         "Длинна логина от 4 до 10 символов!",
	"LoginForm.Login.max":         "Длинна логина от 4 до 10 символов!",
	"LoginForm.Password.required": "Ошибка! \"Пароль\" не введен",
	"LoginForm.Password.min":      "Длинна пароля от 4 до 10 символов!",
	"LoginForm.Password.max":      "Длинна пароля от 4 до 10 символов!",
}

// Check проверяет структуру формы и возвращает список нарушений.
// Пустой список означает, что данные корректны.
func Check(form any) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok {
		// Некорректное использование валидатора (не структура и т.п.) -
		// ошибка программиста, а не пользователя.
		log.Printf("[Validation] Непредвиденная ошибка валидатора: %v", err)
		return []FieldError{{Field: "", Message: "Ошибка ввода данных"}}
	}

	result := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.StructNamespace() + "." + fe.Tag()
		msg, found := messages[key]
		if !found {
			msg = "Недопустимое значение поля " + fieldName(fe.StructField())
		}
		result = append(result, FieldError{
			Field:   fieldName(fe.StructField()),
			Message: msg,
		})
	}
	return result
}

// AsMap преобразует список нарушений в отображение "поле формы - сообщение"
// для подстановки в шаблоны. При нескольких нарушениях одного поля
// сохраняется первое.
func AsMap(errs []FieldError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, exists := m[e.Field]; !exists {
			m[e.Field] = e.Message
		}
	}
	return m
}

// fieldName преобразует имя поля структуры в имя поля формы:
// Login -> login, BirthDate -> birthDate.
func fieldName(structField string) string {
	if structField == "" {
		return ""
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
