package service

import (
	"strings"

	"linkhub/internal/apperr"
	"linkhub/internal/models"
)

const (
	MsgCategoryNameRequired = "Category name is required"
	MsgLinkFieldsRequired   = "Name, URL, and category are required"
	MsgInvalidTag           = "Tag must be one of SHOPEE, BLIBLI, LAZADA, TIKTOK, TOKOPEDIA"
)

// normalizeIsActive treats only a boolean true as active.
func normalizeIsActive(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func orderOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// normalizeTag trims and uppercases a tag. Empty is allowed.
func normalizeTag(s string) (string, error) {
	tag := strings.ToUpper(strings.TrimSpace(s))
	if tag == "" {
		return "", nil
	}
	for _, known := range models.LinkTags {
		if tag == known {
			return tag, nil
		}
	}
	return "", apperr.Validation(MsgInvalidTag)
}

type normalizedLink struct {
	name       string
	url        string
	categoryID int64
	order      int
	isActive   bool
	tag        string
}

// normalizeLinkInput validates required fields before any store access.
func normalizeLinkInput(in LinkInput) (normalizedLink, error) {
	n := normalizedLink{
		name:       strings.TrimSpace(in.Name),
		url:        strings.TrimSpace(in.URL),
		categoryID: in.CategoryID,
		order:      orderOrZero(in.Order),
		isActive:   normalizeIsActive(in.IsActive),
	}
	if n.name == "" || n.url == "" || n.categoryID <= 0 {
		return normalizedLink{}, apperr.Validation(MsgLinkFieldsRequired)
	}
	tag, err := normalizeTag(in.Tag)
	if err != nil {
		return normalizedLink{}, err
	}
	n.tag = tag
	return n, nil
}

func normalizeCategoryInput(in CategoryInput) (string, int, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", 0, apperr.Validation(MsgCategoryNameRequired)
	}
	return name, orderOrZero(in.Order), nil
}

func (n normalizedLink) apply(l *models.Link) {
	l.Name = n.name
	l.URL = n.url
	l.CategoryID = n.categoryID
	l.Order = n.order
	l.IsActive = n.isActive
	l.Tag = n.tag
}
