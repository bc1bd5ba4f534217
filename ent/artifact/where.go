// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/chatstream/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSessionID, v))
}

// ChatInteractionID applies equality check predicate on the "chat_interaction_id" field. It's identical to ChatInteractionIDEQ.
func ChatInteractionID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldChatInteractionID, v))
}

// ArtifactKey applies equality check predicate on the "artifact_key" field. It's identical to ArtifactKeyEQ.
func ArtifactKey(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldArtifactKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTitle, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContentType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldSessionID, v))
}

// ChatInteractionIDEQ applies the EQ predicate on the "chat_interaction_id" field.
func ChatInteractionIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldChatInteractionID, v))
}

// ChatInteractionIDNEQ applies the NEQ predicate on the "chat_interaction_id" field.
func ChatInteractionIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldChatInteractionID, v))
}

// ChatInteractionIDIn applies the In predicate on the "chat_interaction_id" field.
func ChatInteractionIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldChatInteractionID, vs...))
}

// ChatInteractionIDNotIn applies the NotIn predicate on the "chat_interaction_id" field.
func ChatInteractionIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldChatInteractionID, vs...))
}

// ChatInteractionIDGT applies the GT predicate on the "chat_interaction_id" field.
func ChatInteractionIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldChatInteractionID, v))
}

// ChatInteractionIDGTE applies the GTE predicate on the "chat_interaction_id" field.
func ChatInteractionIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldChatInteractionID, v))
}

// ChatInteractionIDLT applies the LT predicate on the "chat_interaction_id" field.
func ChatInteractionIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldChatInteractionID, v))
}

// ChatInteractionIDLTE applies the LTE predicate on the "chat_interaction_id" field.
func ChatInteractionIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldChatInteractionID, v))
}

// ChatInteractionIDContains applies the Contains predicate on the "chat_interaction_id" field.
func ChatInteractionIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldChatInteractionID, v))
}

// ChatInteractionIDHasPrefix applies the HasPrefix predicate on the "chat_interaction_id" field.
func ChatInteractionIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldChatInteractionID, v))
}

// ChatInteractionIDHasSuffix applies the HasSuffix predicate on the "chat_interaction_id" field.
func ChatInteractionIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldChatInteractionID, v))
}

// ChatInteractionIDEqualFold applies the EqualFold predicate on the "chat_interaction_id" field.
func ChatInteractionIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldChatInteractionID, v))
}

// ChatInteractionIDContainsFold applies the ContainsFold predicate on the "chat_interaction_id" field.
func ChatInteractionIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldChatInteractionID, v))
}

// ArtifactKeyEQ applies the EQ predicate on the "artifact_key" field.
func ArtifactKeyEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldArtifactKey, v))
}

// ArtifactKeyNEQ applies the NEQ predicate on the "artifact_key" field.
func ArtifactKeyNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldArtifactKey, v))
}

// ArtifactKeyIn applies the In predicate on the "artifact_key" field.
func ArtifactKeyIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldArtifactKey, vs...))
}

// ArtifactKeyNotIn applies the NotIn predicate on the "artifact_key" field.
func ArtifactKeyNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldArtifactKey, vs...))
}

// ArtifactKeyGT applies the GT predicate on the "artifact_key" field.
func ArtifactKeyGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldArtifactKey, v))
}

// ArtifactKeyGTE applies the GTE predicate on the "artifact_key" field.
func ArtifactKeyGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldArtifactKey, v))
}

// ArtifactKeyLT applies the LT predicate on the "artifact_key" field.
func ArtifactKeyLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldArtifactKey, v))
}

// ArtifactKeyLTE applies the LTE predicate on the "artifact_key" field.
func ArtifactKeyLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldArtifactKey, v))
}

// ArtifactKeyContains applies the Contains predicate on the "artifact_key" field.
func ArtifactKeyContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldArtifactKey, v))
}

// ArtifactKeyHasPrefix applies the HasPrefix predicate on the "artifact_key" field.
func ArtifactKeyHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldArtifactKey, v))
}

// ArtifactKeyHasSuffix applies the HasSuffix predicate on the "artifact_key" field.
func ArtifactKeyHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldArtifactKey, v))
}

// ArtifactKeyEqualFold applies the EqualFold predicate on the "artifact_key" field.
func ArtifactKeyEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldArtifactKey, v))
}

// ArtifactKeyContainsFold applies the ContainsFold predicate on the "artifact_key" field.
func ArtifactKeyContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldArtifactKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldTitle, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldContentType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.NotPredicates(p))
}
