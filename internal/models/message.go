package models

// Message - обертка служебных сообщений, выводимых на главной странице
// после выполнения операций. Пустое сообщение означает, что выводить нечего
// (первая загрузка страницы).
type Message struct {
	Text string
}

// NewMessage создает служебное сообщение с указанным текстом.
func NewMessage(text string) Message {
	return Message{Text: text}
}

// Empty сообщает, есть ли текст для вывода.
func (m Message) Empty() bool {
	return m.Text == ""
}
