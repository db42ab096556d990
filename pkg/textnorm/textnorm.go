// Package textnorm приводит строки к виду для сравнения без учета регистра и диакритики
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ/Đ не раскладываются через NFD, их заменяем явно
var letterReplacer = strings.NewReplacer("đ", "d", "Đ", "d")

// Fold возвращает строку в нижнем регистре без диакритических знаков: "Giặt Khô" -> "giat kho"
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(letterReplacer.Replace(folded))
}

// ContainsAny сообщает, содержит ли s (после Fold) хотя бы одно из ключевых слов (после Fold)
func ContainsAny(s string, keywords ...string) bool {
	folded := Fold(s)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(folded, Fold(kw)) {
			return true
		}
	}
	return false
}
