package handlers

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"
)

// QueryInt читает целый query-параметр в десятичной записи.
// Пустое или нечисловое значение дает 0, ведущие нули не меняют основание ("010" = 10).
func QueryInt(r *http.Request, key string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))

	sign := ""
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		sign, raw = raw[:1], raw[1:]
	}
	raw = strings.TrimLeft(raw, "0")
	if raw == "" {
		return 0
	}

	v, err := cast.ToIntE(sign + raw)
	if err != nil {
		return 0
	}
	return v
}
