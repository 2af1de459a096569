package model

import "errors"

// Виды доменных ошибок. Хендлеры маппят их в HTTP-статусы.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error - доменная ошибка с сообщением, которое можно показать клиенту.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap позволяет проверять вид ошибки через errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NewError создаёт доменную ошибку указанного вида.
func NewError(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}
