// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/chatstream/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldID, id))
}

// ChatInteractionID applies equality check predicate on the "chat_interaction_id" field. It's identical to ChatInteractionIDEQ.
func ChatInteractionID(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldChatInteractionID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURL, v))
}

// URLHash applies equality check predicate on the "url_hash" field. It's identical to URLHashEQ.
func URLHash(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURLHash, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTitle, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDomain, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// ChatInteractionIDEQ applies the EQ predicate on the "chat_interaction_id" field.
func ChatInteractionIDEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldChatInteractionID, v))
}

// ChatInteractionIDNEQ applies the NEQ predicate on the "chat_interaction_id" field.
func ChatInteractionIDNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldChatInteractionID, v))
}

// ChatInteractionIDIn applies the In predicate on the "chat_interaction_id" field.
func ChatInteractionIDIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldChatInteractionID, vs...))
}

// ChatInteractionIDNotIn applies the NotIn predicate on the "chat_interaction_id" field.
func ChatInteractionIDNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldChatInteractionID, vs...))
}

// ChatInteractionIDGT applies the GT predicate on the "chat_interaction_id" field.
func ChatInteractionIDGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldChatInteractionID, v))
}

// ChatInteractionIDGTE applies the GTE predicate on the "chat_interaction_id" field.
func ChatInteractionIDGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldChatInteractionID, v))
}

// ChatInteractionIDLT applies the LT predicate on the "chat_interaction_id" field.
func ChatInteractionIDLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldChatInteractionID, v))
}

// ChatInteractionIDLTE applies the LTE predicate on the "chat_interaction_id" field.
func ChatInteractionIDLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldChatInteractionID, v))
}

// ChatInteractionIDContains applies the Contains predicate on the "chat_interaction_id" field.
func ChatInteractionIDContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldChatInteractionID, v))
}

// ChatInteractionIDHasPrefix applies the HasPrefix predicate on the "chat_interaction_id" field.
func ChatInteractionIDHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldChatInteractionID, v))
}

// ChatInteractionIDHasSuffix applies the HasSuffix predicate on the "chat_interaction_id" field.
func ChatInteractionIDHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldChatInteractionID, v))
}

// ChatInteractionIDEqualFold applies the EqualFold predicate on the "chat_interaction_id" field.
func ChatInteractionIDEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldChatInteractionID, v))
}

// ChatInteractionIDContainsFold applies the ContainsFold predicate on the "chat_interaction_id" field.
func ChatInteractionIDContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldChatInteractionID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldURL, v))
}

// URLHashEQ applies the EQ predicate on the "url_hash" field.
func URLHashEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURLHash, v))
}

// URLHashNEQ applies the NEQ predicate on the "url_hash" field.
func URLHashNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldURLHash, v))
}

// URLHashIn applies the In predicate on the "url_hash" field.
func URLHashIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldURLHash, vs...))
}

// URLHashNotIn applies the NotIn predicate on the "url_hash" field.
func URLHashNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldURLHash, vs...))
}

// URLHashGT applies the GT predicate on the "url_hash" field.
func URLHashGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldURLHash, v))
}

// URLHashGTE applies the GTE predicate on the "url_hash" field.
func URLHashGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldURLHash, v))
}

// URLHashLT applies the LT predicate on the "url_hash" field.
func URLHashLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldURLHash, v))
}

// URLHashLTE applies the LTE predicate on the "url_hash" field.
func URLHashLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldURLHash, v))
}

// URLHashContains applies the Contains predicate on the "url_hash" field.
func URLHashContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldURLHash, v))
}

// URLHashHasPrefix applies the HasPrefix predicate on the "url_hash" field.
func URLHashHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldURLHash, v))
}

// URLHashHasSuffix applies the HasSuffix predicate on the "url_hash" field.
func URLHashHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldURLHash, v))
}

// URLHashEqualFold applies the EqualFold predicate on the "url_hash" field.
func URLHashEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldURLHash, v))
}

// URLHashContainsFold applies the ContainsFold predicate on the "url_hash" field.
func URLHashContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldURLHash, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldTitle, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldDomain, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInteraction applies the HasEdge predicate on the "interaction" edge.
func HasInteraction() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInteractionWith applies the HasEdge predicate on the "interaction" edge with a given conditions (other predicates).
func HasInteractionWith(preds ...predicate.Interaction) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newInteractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Source) predicate.Source {
	return predicate.Source(sql.NotPredicates(p))
}
