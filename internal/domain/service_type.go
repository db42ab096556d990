package domain

import "github.com/m04kA/SMC-LaundryService/pkg/textnorm"

// IsWashService returns true if the service label belongs to the wash family ("giat-say", "Giặt ủi", "wash-dry")
func IsWashService(service string) bool {
	return textnorm.ContainsAny(service, WashKeywords...)
}

// IsDryCleanService returns true if the service label belongs to the dry-clean family ("giat-kho", "dry-clean")
func IsDryCleanService(service string) bool {
	return textnorm.ContainsAny(service, DryCleanKeywords...)
}
