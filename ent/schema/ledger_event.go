package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerEvent records one token ledger mutation.
type LedgerEvent struct {
	ent.Schema
}

func (LedgerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LedgerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("add, spend, unlock or reset"),
		field.Int("amount").
			Default(0),
		field.String("character_id").
			Default("").
			Comment("Unlocked character (unlock only)"),
		field.Int("balance_after"),
	}
}

func (LedgerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
