package add_blocked_date

import "github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"

// AddBlockedDateResponse HTTP response model
type AddBlockedDateResponse struct {
	Success     bool                        `json:"success"`
	BlockedDate *models.BlockedDateResponse `json:"blockedDate"`
}
