package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriviaEvent records one finished trivia game.
type TriviaEvent struct {
	ent.Schema
}

func (TriviaEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TriviaEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the game"),
		field.Int("questions"),
		field.Int("correct"),
		field.Int("streak"),
		field.Int("time_remaining").
			Comment("Seconds left on the final question"),
		field.Int("tokens"),
		field.String("tier"),
	}
}

func (TriviaEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
