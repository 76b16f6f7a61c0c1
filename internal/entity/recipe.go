package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
)

// Field limits enforced by the validating constructors.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxSourceLen      = 200
	MaxIngredientLen  = 500
	MaxDirectionLen   = 1000
)

// Ingredient is an owned sub-entity of Recipe. Order is 1-based.
type Ingredient struct {
	Text   string  `json:"text"`
	Amount *string `json:"amount,omitempty"`
	Unit   *string `json:"unit,omitempty"`
	Order  int     `json:"order"`
}

// Direction is an owned sub-entity of Recipe. Order is 1-based.
type Direction struct {
	Text       string `json:"text"`
	Order      int    `json:"order"`
	IsListItem bool   `json:"is_list_item"`
}

// Tag is an owned sub-entity of Recipe.
type Tag struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// Recipe is the aggregate root produced by the capture pipeline. Instances are
// treated as immutable: every With*/Archive call returns a fresh copy and the
// original is never modified in place.
type Recipe struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     constants.Category `json:"category"`
	PrepTimeMin  *int               `json:"prep_time_minutes,omitempty"`
	CookTimeMin  *int               `json:"cook_time_minutes,omitempty"`
	Servings     *int               `json:"servings,omitempty"`
	Source       string             `json:"source,omitempty"`
	Archived     bool               `json:"archived"`
	Ingredients  []Ingredient       `json:"ingredients"`
	Directions   []Direction        `json:"directions"`
	Tags         []Tag              `json:"tags"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewIngredient validates and builds an ingredient.
func NewIngredient(text string, amount, unit *string, order int) (Ingredient, error) {
	text = strings.TrimSpace(text)
	v := common.NewValidator()
	v.Require("ingredient text", text)
	v.MaxLen("ingredient text", text, MaxIngredientLen)
	v.Min("ingredient order", order, 1)
	if err := v.Err(); err != nil {
		return Ingredient{}, common.E(common.CodeInvalidInput, err.Error(), common.ErrValidation)
	}
	return Ingredient{Text: text, Amount: trimPtr(amount), Unit: trimPtr(unit), Order: order}, nil
}

// NewDirection validates and builds a direction step.
func NewDirection(text string, order int, isListItem bool) (Direction, error) {
	text = strings.TrimSpace(text)
	v := common.NewValidator()
	v.Require("direction text", text)
	v.MaxLen("direction text", text, MaxDirectionLen)
	v.Min("direction order", order, 1)
	if err := v.Err(); err != nil {
		return Direction{}, common.E(common.CodeInvalidInput, err.Error(), common.ErrValidation)
	}
	return Direction{Text: text, Order: order, IsListItem: isListItem}, nil
}

// NewTag validates and builds a tag.
func NewTag(name string, color *string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, common.E(common.CodeInvalidInput, "tag name is required", common.ErrValidation)
	}
	return Tag{Name: name, Color: trimPtr(color)}, nil
}

// NewRecipeParams carries the inputs for the Recipe factory. Optional fields
// are nil pointers; collections may be empty.
type NewRecipeParams struct {
	Title       string
	Description string
	Category    constants.Category
	PrepTimeMin *int
	CookTimeMin *int
	Servings    *int
	Source      string
	Ingredients []Ingredient
	Directions  []Direction
	Tags        []Tag
}

// NewRecipe is the validating factory for the aggregate. It trims scalar text,
// enforces the field limits, and stamps identity and timestamps.
func NewRecipe(p NewRecipeParams) (*Recipe, error) {
	title := strings.TrimSpace(p.Title)
	desc := strings.TrimSpace(p.Description)
	source := strings.TrimSpace(p.Source)

	v := common.NewValidator()
	v.Require("title", title)
	v.MaxLen("title", title, MaxTitleLen)
	v.MaxLen("description", desc, MaxDescriptionLen)
	v.MaxLen("source", source, MaxSourceLen)
	if p.PrepTimeMin != nil {
		v.Min("prep time", *p.PrepTimeMin, 0)
	}
	if p.CookTimeMin != nil {
		v.Min("cook time", *p.CookTimeMin, 0)
	}
	if p.Servings != nil {
		v.Min("servings", *p.Servings, 1)
	}
	if err := v.Err(); err != nil {
		return nil, common.E(common.CodeInvalidInput, err.Error(), common.ErrValidation)
	}

	category := p.Category
	if category == "" {
		category = constants.Other
	}

	now := time.Now().UTC()
	r := &Recipe{
		ID:          uuid.New(),
		Title:       title,
		Description: desc,
		Category:    category,
		PrepTimeMin: p.PrepTimeMin,
		CookTimeMin: p.CookTimeMin,
		Servings:    p.Servings,
		Source:      source,
		Ingredients: append([]Ingredient(nil), p.Ingredients...),
		Directions:  append([]Direction(nil), p.Directions...),
		Tags:        append([]Tag(nil), p.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return r, nil
}

// clone copies the aggregate including its collections.
func (r *Recipe) clone() *Recipe {
	c := *r
	c.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	c.Directions = append([]Direction(nil), r.Directions...)
	c.Tags = append([]Tag(nil), r.Tags...)
	return &c
}

// WithTitle returns a copy with a new validated title.
func (r *Recipe) WithTitle(title string) (*Recipe, error) {
	title = strings.TrimSpace(title)
	v := common.NewValidator()
	v.Require("title", title)
	v.MaxLen("title", title, MaxTitleLen)
	if err := v.Err(); err != nil {
		return nil, common.E(common.CodeInvalidInput, err.Error(), common.ErrValidation)
	}
	c := r.clone()
	c.Title = title
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

// WithDescription returns a copy with a new validated description.
func (r *Recipe) WithDescription(desc string) (*Recipe, error) {
	desc = strings.TrimSpace(desc)
	v := common.NewValidator()
	v.MaxLen("description", desc, MaxDescriptionLen)
	if err := v.Err(); err != nil {
		return nil, common.E(common.CodeInvalidInput, err.Error(), common.ErrValidation)
	}
	c := r.clone()
	c.Description = desc
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

// WithCategory returns a copy with the category replaced.
func (r *Recipe) WithCategory(cat constants.Category) *Recipe {
	c := r.clone()
	c.Category = cat
	c.UpdatedAt = time.Now().UTC()
	return c
}

// AddIngredient returns a copy with the ingredient appended.
func (r *Recipe) AddIngredient(ing Ingredient) *Recipe {
	c := r.clone()
	c.Ingredients = append(c.Ingredients, ing)
	c.UpdatedAt = time.Now().UTC()
	return c
}

// AddDirection returns a copy with the direction appended.
func (r *Recipe) AddDirection(dir Direction) *Recipe {
	c := r.clone()
	c.Directions = append(c.Directions, dir)
	c.UpdatedAt = time.Now().UTC()
	return c
}

// AddTag returns a copy with the tag appended.
func (r *Recipe) AddTag(tag Tag) *Recipe {
	c := r.clone()
	c.Tags = append(c.Tags, tag)
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Archive returns a soft-deleted copy. The row survives; only the flag flips.
func (r *Recipe) Archive() *Recipe {
	c := r.clone()
	c.Archived = true
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Unarchive returns a copy with the archived flag cleared.
func (r *Recipe) Unarchive() *Recipe {
	c := r.clone()
	c.Archived = false
	c.UpdatedAt = time.Now().UTC()
	return c
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
