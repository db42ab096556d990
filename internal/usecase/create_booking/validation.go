package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет обязательные поля
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"address", req.Address},
		{"service", req.Service},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	return nil
}
