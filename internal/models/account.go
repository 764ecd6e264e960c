package models

import "time"

// Account represents a player identity. Password holds a hash, never the plaintext.
type Account struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"userID" gorm:"uniqueIndex:idx_accounts_user_id;type:varchar(20);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_accounts_email;type:varchar(255);not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AccountView is the public projection of an Account.
type AccountView struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
}

// View returns the fields safe to hand back to a client.
func (a *Account) View() AccountView {
	return AccountView{UserID: a.UserID, Email: a.Email}
}
