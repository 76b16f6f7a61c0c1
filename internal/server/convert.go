package server

import (
	"time"

	snapdishv1 "github.com/snapdish/snapdish/gen/proto/snapdish/v1"
	"github.com/snapdish/snapdish/internal/entity"
)

func toPBRecipe(r *entity.Recipe) *snapdishv1.Recipe {
	pb := &snapdishv1.Recipe{
		Id:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Category:    string(r.Category),
		Source:      r.Source,
		Archived:    r.Archived,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339Nano),
	}
	if r.PrepTimeMin != nil {
		pb.PrepTimeMinutes = int32(*r.PrepTimeMin)
	}
	if r.CookTimeMin != nil {
		pb.CookTimeMinutes = int32(*r.CookTimeMin)
	}
	if r.Servings != nil {
		pb.Servings = int32(*r.Servings)
	}
	for _, ing := range r.Ingredients {
		pbi := &snapdishv1.Ingredient{Text: ing.Text, Position: int32(ing.Order)}
		if ing.Amount != nil {
			pbi.Amount = *ing.Amount
		}
		if ing.Unit != nil {
			pbi.Unit = *ing.Unit
		}
		pb.Ingredients = append(pb.Ingredients, pbi)
	}
	for _, dir := range r.Directions {
		pb.Directions = append(pb.Directions, &snapdishv1.Direction{
			Text:       dir.Text,
			Position:   int32(dir.Order),
			IsListItem: dir.IsListItem,
		})
	}
	for _, t := range r.Tags {
		pbt := &snapdishv1.Tag{Name: t.Name}
		if t.Color != nil {
			pbt.Color = *t.Color
		}
		pb.Tags = append(pb.Tags, pbt)
	}
	return pb
}
