package pushchannel

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pushchannel client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе канала
	ErrInvalidResponse = errors.New("pushchannel client: invalid response")

	// ErrUnauthorized возвращается при некорректном API-ключе
	ErrUnauthorized = errors.New("pushchannel client: unauthorized")

	// ErrChannelDegraded возвращается при недоступности канала
	// Вызывающий код решает, критична ли доставка уведомления
	ErrChannelDegraded = errors.New("pushchannel client: channel degraded")
)
