package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Category groups links for display. Order is ascending.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c" json:"-"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Order     int       `bun:"sort_order,notnull,default:0" json:"order"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

// PublicCategory is a category with its active links, as served to anonymous callers.
type PublicCategory struct {
	Category
	Links []Link `json:"links"`
}
