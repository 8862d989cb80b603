package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/berezin/school/internal/models"
)

// birthDateLayout - формат даты рождения в формах и колонке birth_date.
const birthDateLayout = "2006-01-02"

// userFromForm собирает модель пользователя из полей urlencoded-формы.
// Идентификатор записи из формы не принимается: при обновлении он берется
// из записи, найденной при повторной аутентификации.
func userFromForm(r *http.Request) models.User {
	user := models.User{
		Login:    r.PostFormValue("login"),
		Password: r.PostFormValue("password"),
		Name:     r.PostFormValue("name"),
		Surname:  r.PostFormValue("surname"),
		Address:  r.PostFormValue("address"),
		Info:     r.PostFormValue("info"),
	}

	// Дата рождения необязательна; значение в неверном формате отбрасывается.
	if raw := r.PostFormValue("birthDate"); raw != "" {
		if date, err := time.Parse(birthDateLayout, raw); err == nil {
			user.BirthDate = &date
		}
	}

	return user
}

// redirect отправляет перенаправление на path с параметрами запроса params.
func redirect(w http.ResponseWriter, r *http.Request, path string, params url.Values) {
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}
