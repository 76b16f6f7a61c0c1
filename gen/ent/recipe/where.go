// Code generated by ent, DO NOT EDIT.

package recipe

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCategory, v))
}

// PrepTimeMinutes applies equality check predicate on the "prep_time_minutes" field. It's identical to PrepTimeMinutesEQ.
func PrepTimeMinutes(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldPrepTimeMinutes, v))
}

// CookTimeMinutes applies equality check predicate on the "cook_time_minutes" field. It's identical to CookTimeMinutesEQ.
func CookTimeMinutes(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCookTimeMinutes, v))
}

// Servings applies equality check predicate on the "servings" field. It's identical to ServingsEQ.
func Servings(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldServings, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldSource, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldArchived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldCategory, v))
}

// PrepTimeMinutesEQ applies the EQ predicate on the "prep_time_minutes" field.
func PrepTimeMinutesEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesNEQ applies the NEQ predicate on the "prep_time_minutes" field.
func PrepTimeMinutesNEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesIn applies the In predicate on the "prep_time_minutes" field.
func PrepTimeMinutesIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldPrepTimeMinutes, vs...))
}

// PrepTimeMinutesNotIn applies the NotIn predicate on the "prep_time_minutes" field.
func PrepTimeMinutesNotIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldPrepTimeMinutes, vs...))
}

// PrepTimeMinutesGT applies the GT predicate on the "prep_time_minutes" field.
func PrepTimeMinutesGT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesGTE applies the GTE predicate on the "prep_time_minutes" field.
func PrepTimeMinutesGTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesLT applies the LT predicate on the "prep_time_minutes" field.
func PrepTimeMinutesLT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesLTE applies the LTE predicate on the "prep_time_minutes" field.
func PrepTimeMinutesLTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesIsNil applies the IsNil predicate on the "prep_time_minutes" field.
func PrepTimeMinutesIsNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldIsNull(FieldPrepTimeMinutes))
}

// PrepTimeMinutesNotNil applies the NotNil predicate on the "prep_time_minutes" field.
func PrepTimeMinutesNotNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldNotNull(FieldPrepTimeMinutes))
}

// CookTimeMinutesEQ applies the EQ predicate on the "cook_time_minutes" field.
func CookTimeMinutesEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCookTimeMinutes, v))
}

// CookTimeMinutesNEQ applies the NEQ predicate on the "cook_time_minutes" field.
func CookTimeMinutesNEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldCookTimeMinutes, v))
}

// CookTimeMinutesIn applies the In predicate on the "cook_time_minutes" field.
func CookTimeMinutesIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldCookTimeMinutes, vs...))
}

// CookTimeMinutesNotIn applies the NotIn predicate on the "cook_time_minutes" field.
func CookTimeMinutesNotIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldCookTimeMinutes, vs...))
}

// CookTimeMinutesGT applies the GT predicate on the "cook_time_minutes" field.
func CookTimeMinutesGT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldCookTimeMinutes, v))
}

// CookTimeMinutesGTE applies the GTE predicate on the "cook_time_minutes" field.
func CookTimeMinutesGTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldCookTimeMinutes, v))
}

// CookTimeMinutesLT applies the LT predicate on the "cook_time_minutes" field.
func CookTimeMinutesLT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldCookTimeMinutes, v))
}

// CookTimeMinutesLTE applies the LTE predicate on the "cook_time_minutes" field.
func CookTimeMinutesLTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldCookTimeMinutes, v))
}

// CookTimeMinutesIsNil applies the IsNil predicate on the "cook_time_minutes" field.
func CookTimeMinutesIsNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldIsNull(FieldCookTimeMinutes))
}

// CookTimeMinutesNotNil applies the NotNil predicate on the "cook_time_minutes" field.
func CookTimeMinutesNotNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldNotNull(FieldCookTimeMinutes))
}

// ServingsEQ applies the EQ predicate on the "servings" field.
func ServingsEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldServings, v))
}

// ServingsNEQ applies the NEQ predicate on the "servings" field.
func ServingsNEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldServings, v))
}

// ServingsIn applies the In predicate on the "servings" field.
func ServingsIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldServings, vs...))
}

// ServingsNotIn applies the NotIn predicate on the "servings" field.
func ServingsNotIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldServings, vs...))
}

// ServingsGT applies the GT predicate on the "servings" field.
func ServingsGT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldServings, v))
}

// ServingsGTE applies the GTE predicate on the "servings" field.
func ServingsGTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldServings, v))
}

// ServingsLT applies the LT predicate on the "servings" field.
func ServingsLT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldServings, v))
}

// ServingsLTE applies the LTE predicate on the "servings" field.
func ServingsLTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldServings, v))
}

// ServingsIsNil applies the IsNil predicate on the "servings" field.
func ServingsIsNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldIsNull(FieldServings))
}

// ServingsNotNil applies the NotNil predicate on the "servings" field.
func ServingsNotNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldNotNull(FieldServings))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Recipe {
	return predicate.Recipe(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldSource, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIngredients applies the HasEdge predicate on the "ingredients" edge.
func HasIngredients() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IngredientsTable, IngredientsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIngredientsWith applies the HasEdge predicate on the "ingredients" edge with a given conditions (other predicates).
func HasIngredientsWith(preds ...predicate.Ingredient) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newIngredientsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDirections applies the HasEdge predicate on the "directions" edge.
func HasDirections() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DirectionsTable, DirectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDirectionsWith applies the HasEdge predicate on the "directions" edge with a given conditions (other predicates).
func HasDirectionsWith(preds ...predicate.Direction) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newDirectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTags applies the HasEdge predicate on the "tags" edge.
func HasTags() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TagsTable, TagsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTagsWith applies the HasEdge predicate on the "tags" edge with a given conditions (other predicates).
func HasTagsWith(preds ...predicate.Tag) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newTagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.NotPredicates(p))
}
