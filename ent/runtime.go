// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/chatstream/ent/artifact"
	"github.com/codeready-toolchain/chatstream/ent/event"
	"github.com/codeready-toolchain/chatstream/ent/interaction"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
	"github.com/codeready-toolchain/chatstream/ent/queuestatus"
	"github.com/codeready-toolchain/chatstream/ent/schema"
	"github.com/codeready-toolchain/chatstream/ent/source"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescSessionID is the schema descriptor for session_id field.
	artifactDescSessionID := artifactFields[1].Descriptor()
	// artifact.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	artifact.SessionIDValidator = artifactDescSessionID.Validators[0].(func(string) error)
	// artifactDescChatInteractionID is the schema descriptor for chat_interaction_id field.
	artifactDescChatInteractionID := artifactFields[2].Descriptor()
	// artifact.DefaultChatInteractionID holds the default value on creation for the chat_interaction_id field.
	artifact.DefaultChatInteractionID = artifactDescChatInteractionID.Default.(string)
	// artifactDescArtifactKey is the schema descriptor for artifact_key field.
	artifactDescArtifactKey := artifactFields[3].Descriptor()
	// artifact.ArtifactKeyValidator is a validator for the "artifact_key" field. It is called by the builders before save.
	artifact.ArtifactKeyValidator = artifactDescArtifactKey.Validators[0].(func(string) error)
	// artifactDescTitle is the schema descriptor for title field.
	artifactDescTitle := artifactFields[4].Descriptor()
	// artifact.DefaultTitle holds the default value on creation for the title field.
	artifact.DefaultTitle = artifactDescTitle.Default.(string)
	// artifactDescContentType is the schema descriptor for content_type field.
	artifactDescContentType := artifactFields[5].Descriptor()
	// artifact.DefaultContentType holds the default value on creation for the content_type field.
	artifact.DefaultContentType = artifactDescContentType.Default.(string)
	// artifactDescContent is the schema descriptor for content field.
	artifactDescContent := artifactFields[6].Descriptor()
	// artifact.DefaultContent holds the default value on creation for the content field.
	artifact.DefaultContent = artifactDescContent.Default.(string)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescChatSessionID is the schema descriptor for chat_session_id field.
	interactionDescChatSessionID := interactionFields[1].Descriptor()
	// interaction.ChatSessionIDValidator is a validator for the "chat_session_id" field. It is called by the builders before save.
	interaction.ChatSessionIDValidator = interactionDescChatSessionID.Validators[0].(func(string) error)
	// interactionDescQuestion is the schema descriptor for question field.
	interactionDescQuestion := interactionFields[2].Descriptor()
	// interaction.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	interaction.QuestionValidator = interactionDescQuestion.Validators[0].(func(string) error)
	// interactionDescAnswer is the schema descriptor for answer field.
	interactionDescAnswer := interactionFields[3].Descriptor()
	// interaction.DefaultAnswer holds the default value on creation for the answer field.
	interaction.DefaultAnswer = interactionDescAnswer.Default.(string)
	// interactionDescExecutionID is the schema descriptor for execution_id field.
	interactionDescExecutionID := interactionFields[4].Descriptor()
	// interaction.DefaultExecutionID holds the default value on creation for the execution_id field.
	interaction.DefaultExecutionID = interactionDescExecutionID.Default.(string)
	// interactionDescInputTriggerID is the schema descriptor for input_trigger_id field.
	interactionDescInputTriggerID := interactionFields[5].Descriptor()
	// interaction.DefaultInputTriggerID holds the default value on creation for the input_trigger_id field.
	interaction.DefaultInputTriggerID = interactionDescInputTriggerID.Default.(string)
	// interactionDescCompleted is the schema descriptor for completed field.
	interactionDescCompleted := interactionFields[6].Descriptor()
	// interaction.DefaultCompleted holds the default value on creation for the completed field.
	interaction.DefaultCompleted = interactionDescCompleted.Default.(bool)
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[7].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	// interactionDescUpdatedAt is the schema descriptor for updated_at field.
	interactionDescUpdatedAt := interactionFields[8].Descriptor()
	// interaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interaction.DefaultUpdatedAt = interactionDescUpdatedAt.Default.(func() time.Time)
	// interaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interaction.UpdateDefaultUpdatedAt = interactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	interactionstepFields := schema.InteractionStep{}.Fields()
	_ = interactionstepFields
	// interactionstepDescSource is the schema descriptor for source field.
	interactionstepDescSource := interactionstepFields[2].Descriptor()
	// interactionstep.DefaultSource holds the default value on creation for the source field.
	interactionstep.DefaultSource = interactionstepDescSource.Default.(string)
	// interactionstepDescIsSignificant is the schema descriptor for is_significant field.
	interactionstepDescIsSignificant := interactionstepFields[4].Descriptor()
	// interactionstep.DefaultIsSignificant holds the default value on creation for the is_significant field.
	interactionstep.DefaultIsSignificant = interactionstepDescIsSignificant.Default.(bool)
	// interactionstepDescCreatedAt is the schema descriptor for created_at field.
	interactionstepDescCreatedAt := interactionstepFields[6].Descriptor()
	// interactionstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	interactionstep.DefaultCreatedAt = interactionstepDescCreatedAt.Default.(func() time.Time)
	queuestatusFields := schema.QueueStatus{}.Fields()
	_ = queuestatusFields
	// queuestatusDescUpdatedAt is the schema descriptor for updated_at field.
	queuestatusDescUpdatedAt := queuestatusFields[2].Descriptor()
	// queuestatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queuestatus.DefaultUpdatedAt = queuestatusDescUpdatedAt.Default.(func() time.Time)
	// queuestatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queuestatus.UpdateDefaultUpdatedAt = queuestatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescTitle is the schema descriptor for title field.
	sourceDescTitle := sourceFields[4].Descriptor()
	// source.DefaultTitle holds the default value on creation for the title field.
	source.DefaultTitle = sourceDescTitle.Default.(string)
	// sourceDescDomain is the schema descriptor for domain field.
	sourceDescDomain := sourceFields[5].Descriptor()
	// source.DefaultDomain holds the default value on creation for the domain field.
	source.DefaultDomain = sourceDescDomain.Default.(string)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[6].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
}
