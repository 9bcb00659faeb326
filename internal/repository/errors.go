package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Доменные ошибки, по которым обработчики выбирают HTTP-статус.
var (
	ErrNotFound      = errors.New("запись не найдена")
	ErrForbidden     = errors.New("доступ запрещен")
	ErrAlreadyExists = errors.New("запись уже существует")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
