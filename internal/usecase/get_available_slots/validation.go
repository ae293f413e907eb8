package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// isDateInPast дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return types.DateOnly(date).Before(types.DateOnly(now))
}
