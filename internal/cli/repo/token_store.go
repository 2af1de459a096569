package repo

// TokenStore описывает абстракцию хранилища bearer-токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// AuthStore объединяет токен и контекст пользователя.
type AuthStore interface {
	TokenStore
	UserContextStore
}
