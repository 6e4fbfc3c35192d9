package models

import "github.com/uptrace/bun"

type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Username     string `bun:"username,notnull,unique" json:"username"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"` // don’t expose hash
	IsAdmin      bool   `bun:"is_admin,notnull,default:false" json:"isAdmin"`
}

// PublicUser is the sanitized view returned to clients after login.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
