package domain

import "time"

// AdminUser администратор панели записей
type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
