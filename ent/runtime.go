// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/homeworkgoat/goat/ent/answerevent"
	"github.com/homeworkgoat/goat/ent/hintevent"
	"github.com/homeworkgoat/goat/ent/llmrequestevent"
	"github.com/homeworkgoat/goat/ent/questevent"
	"github.com/homeworkgoat/goat/ent/schema"
	"github.com/homeworkgoat/goat/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestID is the schema descriptor for quest_id field.
	answereventDescQuestID := answereventFields[1].Descriptor()
	// answerevent.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	answerevent.QuestIDValidator = answereventDescQuestID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSkill is the schema descriptor for skill field.
	answereventDescSkill := answereventFields[3].Descriptor()
	// answerevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	answerevent.SkillValidator = answereventDescSkill.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescElapsedMs is the schema descriptor for elapsed_ms field.
	answereventDescElapsedMs := answereventFields[8].Descriptor()
	// answerevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	answerevent.DefaultElapsedMs = answereventDescElapsedMs.Default.(int64)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[9].Descriptor()
	// answerevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	answerevent.DefaultHintsUsed = answereventDescHintsUsed.Default.(int)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[10].Descriptor()
	// answerevent.DefaultAttempt holds the default value on creation for the attempt field.
	answerevent.DefaultAttempt = answereventDescAttempt.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescQuestID is the schema descriptor for quest_id field.
	hinteventDescQuestID := hinteventFields[1].Descriptor()
	// hintevent.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	hintevent.QuestIDValidator = hinteventDescQuestID.Validators[0].(func(string) error)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[2].Descriptor()
	// hintevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	hintevent.QuestionIDValidator = hinteventDescQuestionID.Validators[0].(func(string) error)
	// hinteventDescSkill is the schema descriptor for skill field.
	hinteventDescSkill := hinteventFields[3].Descriptor()
	// hintevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	hintevent.SkillValidator = hinteventDescSkill.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultModel holds the default value on creation for the model field.
	llmrequestevent.DefaultModel = llmrequesteventDescModel.Default.(string)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questeventMixin := schema.QuestEvent{}.Mixin()
	questeventMixinFields0 := questeventMixin[0].Fields()
	_ = questeventMixinFields0
	questeventFields := schema.QuestEvent{}.Fields()
	_ = questeventFields
	// questeventDescTimestamp is the schema descriptor for timestamp field.
	questeventDescTimestamp := questeventMixinFields0[1].Descriptor()
	// questevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questevent.DefaultTimestamp = questeventDescTimestamp.Default.(func() time.Time)
	// questeventDescSessionID is the schema descriptor for session_id field.
	questeventDescSessionID := questeventFields[0].Descriptor()
	// questevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questevent.SessionIDValidator = questeventDescSessionID.Validators[0].(func(string) error)
	// questeventDescQuestID is the schema descriptor for quest_id field.
	questeventDescQuestID := questeventFields[1].Descriptor()
	// questevent.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	questevent.QuestIDValidator = questeventDescQuestID.Validators[0].(func(string) error)
	// questeventDescTitle is the schema descriptor for title field.
	questeventDescTitle := questeventFields[2].Descriptor()
	// questevent.DefaultTitle holds the default value on creation for the title field.
	questevent.DefaultTitle = questeventDescTitle.Default.(string)
	// questeventDescAction is the schema descriptor for action field.
	questeventDescAction := questeventFields[3].Descriptor()
	// questevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	questevent.ActionValidator = questeventDescAction.Validators[0].(func(string) error)
	// questeventDescAnswered is the schema descriptor for answered field.
	questeventDescAnswered := questeventFields[4].Descriptor()
	// questevent.DefaultAnswered holds the default value on creation for the answered field.
	questevent.DefaultAnswered = questeventDescAnswered.Default.(int)
	// questeventDescScore is the schema descriptor for score field.
	questeventDescScore := questeventFields[5].Descriptor()
	// questevent.DefaultScore holds the default value on creation for the score field.
	questevent.DefaultScore = questeventDescScore.Default.(int)
	// questeventDescTotal is the schema descriptor for total field.
	questeventDescTotal := questeventFields[6].Descriptor()
	// questevent.DefaultTotal holds the default value on creation for the total field.
	questevent.DefaultTotal = questeventDescTotal.Default.(int)
	// questeventDescXpReward is the schema descriptor for xp_reward field.
	questeventDescXpReward := questeventFields[7].Descriptor()
	// questevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	questevent.DefaultXpReward = questeventDescXpReward.Default.(int)
	// questeventDescDurationSecs is the schema descriptor for duration_secs field.
	questeventDescDurationSecs := questeventFields[8].Descriptor()
	// questevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	questevent.DefaultDurationSecs = questeventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
