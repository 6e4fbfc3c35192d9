package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Link struct {
	bun.BaseModel `bun:"table:links,alias:l" json:"-"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Name       string    `bun:"name,notnull" json:"name"`
	URL        string    `bun:"url,notnull" json:"url"`
	CategoryID int64     `bun:"category_id,notnull" json:"categoryId"`
	Order      int       `bun:"sort_order,notnull,default:0" json:"order"`
	IsActive   bool      `bun:"is_active,notnull,default:false" json:"isActive"`
	Tag        string    `bun:"tag,nullzero" json:"tag,omitempty"` // SHOPEE | BLIBLI | LAZADA | TIKTOK | TOKOPEDIA
	CreatedAt  time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,notnull" json:"updatedAt"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// Category tags used by the grouped public view.
const (
	TagShopee    = "SHOPEE"
	TagBlibli    = "BLIBLI"
	TagLazada    = "LAZADA"
	TagTiktok    = "TIKTOK"
	TagTokopedia = "TOKOPEDIA"
)

// LinkTags lists the fixed tag enumeration in display order.
var LinkTags = []string{TagShopee, TagBlibli, TagLazada, TagTiktok, TagTokopedia}

// LinksByTag is the legacy grouped view: active links partitioned by tag.
type LinksByTag struct {
	Shopee    []Link `json:"shopeeLinks"`
	Blibli    []Link `json:"blibliLinks"`
	Lazada    []Link `json:"lazadaLinks"`
	Tiktok    []Link `json:"tiktokLinks"`
	Tokopedia []Link `json:"tokopediaLinks"`
}
