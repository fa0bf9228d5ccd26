package tablestore

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("tablestore client: service not found")

	// ErrRecordNotFound возвращается, когда запись не найдена в таблице
	ErrRecordNotFound = errors.New("tablestore client: record not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tablestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("tablestore client: invalid response")

	// ErrUnauthorized возвращается при некорректном API-ключе
	ErrUnauthorized = errors.New("tablestore client: unauthorized")
)
