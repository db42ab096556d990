package catalogseed

import "errors"

var (
	// ErrInvalidSeedFile файл не читается или содержит некорректные товары
	ErrInvalidSeedFile = errors.New("catalogseed: invalid seed file")

	// ErrCatalogNotEmpty каталог уже заполнен, а перезапись не запрошена
	ErrCatalogNotEmpty = errors.New("catalogseed: catalog is not empty")

	// ErrStorage ошибка при работе с хранилищем
	ErrStorage = errors.New("catalogseed: storage error")
)
