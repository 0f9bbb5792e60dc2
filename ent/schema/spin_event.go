package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SpinEvent records one resolved prize wheel spin.
type SpinEvent struct {
	ent.Schema
}

func (SpinEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SpinEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("spin_id").
			NotEmpty().
			Comment("UUID of the spin"),
		field.Int("slot"),
		field.String("outcome_kind").
			Comment("character, tokens or none"),
		field.String("label"),
		field.String("character_id").
			Default(""),
		field.Int("tokens_awarded").
			Default(0),
		field.Bool("new_unlock").
			Default(false),
		field.Int("cost"),
	}
}
