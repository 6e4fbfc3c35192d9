package service

import (
	"context"

	"linkhub/internal/apperr"
	"linkhub/internal/models"
)

// ListPublicLinksByTag returns active tagged links partitioned by tag. Every
// partition is present, empty or not.
func (s *CatalogService) ListPublicLinksByTag(ctx context.Context) (*models.LinksByTag, error) {
	if v, ok := s.cache.GetGrouped(ctx); ok {
		return v, nil
	}
	res, err := s.shared(ctx, groupedFlightKey, func(loadCtx context.Context) (interface{}, error) {
		gen := s.gen.Load()
		out, err := s.loadLinksByTag(loadCtx)
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(gen, func() { s.cache.SetGrouped(loadCtx, out) })
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*models.LinksByTag), nil
}

func (s *CatalogService) loadLinksByTag(ctx context.Context) (*models.LinksByTag, error) {
	links, err := s.links.ListActiveTagged(ctx, models.LinkTags)
	if err != nil {
		return nil, apperr.Internal(err, "list tagged links")
	}
	return groupByTag(links), nil
}

// groupByTag keeps the store order within each partition.
func groupByTag(links []models.Link) *models.LinksByTag {
	out := &models.LinksByTag{
		Shopee:    []models.Link{},
		Blibli:    []models.Link{},
		Lazada:    []models.Link{},
		Tiktok:    []models.Link{},
		Tokopedia: []models.Link{},
	}
	for _, l := range links {
		switch l.Tag {
		case models.TagShopee:
			out.Shopee = append(out.Shopee, l)
		case models.TagBlibli:
			out.Blibli = append(out.Blibli, l)
		case models.TagLazada:
			out.Lazada = append(out.Lazada, l)
		case models.TagTiktok:
			out.Tiktok = append(out.Tiktok, l)
		case models.TagTokopedia:
			out.Tokopedia = append(out.Tokopedia, l)
		}
	}
	return out
}
