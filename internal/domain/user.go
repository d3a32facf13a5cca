package domain

import "time"

// User é o dono das vendas, identificado pelo chat do Telegram
type User struct {
	ID         int       `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   *string   `json:"username"`
	FirstName  *string   `json:"first_name"`
	CreatedAt  time.Time `json:"created_at"`
	IsDemo     bool      `json:"is_demo"`
}

// DisplayName retorna o nome exibido nos relatórios
func (u *User) DisplayName() string {
	if u.FirstName != nil && *u.FirstName != "" {
		return *u.FirstName
	}
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return "User " + formatInt(u.TelegramID)
}
