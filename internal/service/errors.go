package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("некорректные параметры запроса")
	ErrUserNotFound      = errors.New("пользователь не найден")
	ErrUserExists        = errors.New("имя пользователя уже занято")
	ErrPasswordIncorrect = errors.New("неверное имя пользователя или пароль")
	ErrGroupNotFound     = errors.New("сообщество не найдено")
	ErrPostNotFound      = errors.New("публикация не найдена")
	ErrNotPostAuthor     = errors.New("редактировать публикацию может только её автор")
	ErrFollowSelf        = errors.New("Подписка возможна только на других авторов")
	ErrFileNotSupported  = errors.New("неподдерживаемый тип файла")
	UnExpectedError      = errors.New("внутренняя ошибка, попробуйте позже")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExists:        BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrGroupNotFound:     NotFound,
	ErrPostNotFound:      NotFound,
	ErrNotPostAuthor:     Unauthorized,
	ErrFollowSelf:        BadRequest,
	ErrFileNotSupported:  BadRequest,
	UnExpectedError:      InternalServerError,
}

const (
	TextRequiredMessage    = "Текст сообщения - обязателен"
	CommentRequiredMessage = "Текст комментария - обязателен"
)

// ValidationError carries a user-facing message about rejected input.
// Handlers surface it as an inline warning, not a hard failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
