package handler

import (
	"github.com/skillforge/catalog-api/internal/core/ports"
)

func toBadgeResponse(v ports.BadgeView) badgeResponse {
	return badgeResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Level:       v.Level,
		Status:      v.Status,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListBadgesResult) listBadgesResponse {
	items := make([]badgeResponse, len(r.Items))
	for i, v := range r.Items {
		items[i] = toBadgeResponse(v)
	}
	return listBadgesResponse{
		Badges:  items,
		Total:   r.Total,
		Limit:   r.Limit,
		Offset:  r.Offset,
		HasMore: r.HasMore,
	}
}
