// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"strings"
)

var (
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован (нет токена, токен битый или пользователь уже удалён)
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс существует, но принадлежит другому пользователю
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Нарушены ограничения полей, подробности в ValidationError
	ErrValidation = errors.New("validation failed")
)

// ValidationError хранит упорядоченный список сообщений о нарушенных
// ограничениях полей. Все нарушения собираются сразу, а не до первого.
//
// errors.Is(err, ErrValidation) срабатывает для любой *ValidationError.
//
// Cause — необязательная причина для логов и errors.Is; в ответ клиенту
// она не попадает.
type ValidationError struct {
	Messages []string
	Cause    error
}

// NewValidationError создаёт ошибку валидации из набора сообщений.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// WithCause добавляет причину к ошибке валидации.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.Cause = cause
	return e
}

func (e *ValidationError) Error() string {
	msg := ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
	if e.Cause != nil {
		msg += " (" + e.Cause.Error() + ")"
	}
	return msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Messages достаёт сообщения валидации из цепочки ошибок.
// Если в цепочке нет ValidationError, возвращает nil.
func Messages(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}
	return nil
}
