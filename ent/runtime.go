// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/eduvoyager/ent/account"
	"github.com/abhisek/eduvoyager/ent/appsession"
	"github.com/abhisek/eduvoyager/ent/llmrequestevent"
	"github.com/abhisek/eduvoyager/ent/progressevent"
	"github.com/abhisek/eduvoyager/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[0].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescFirstName is the schema descriptor for first_name field.
	accountDescFirstName := accountFields[1].Descriptor()
	// account.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	account.FirstNameValidator = accountDescFirstName.Validators[0].(func(string) error)
	// accountDescAge is the schema descriptor for age field.
	accountDescAge := accountFields[5].Descriptor()
	// account.DefaultAge holds the default value on creation for the age field.
	account.DefaultAge = accountDescAge.Default.(int)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[10].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	appsessionFields := schema.AppSession{}.Fields()
	_ = appsessionFields
	// appsessionDescEmail is the schema descriptor for email field.
	appsessionDescEmail := appsessionFields[0].Descriptor()
	// appsession.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	appsession.EmailValidator = appsessionDescEmail.Validators[0].(func(string) error)
	// appsessionDescStartedAt is the schema descriptor for started_at field.
	appsessionDescStartedAt := appsessionFields[1].Descriptor()
	// appsession.DefaultStartedAt holds the default value on creation for the started_at field.
	appsession.DefaultStartedAt = appsessionDescStartedAt.Default.(func() time.Time)
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
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
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
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescEmail is the schema descriptor for email field.
	progresseventDescEmail := progresseventFields[0].Descriptor()
	// progressevent.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	progressevent.EmailValidator = progresseventDescEmail.Validators[0].(func(string) error)
	// progresseventDescAction is the schema descriptor for action field.
	progresseventDescAction := progresseventFields[1].Descriptor()
	// progressevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	progressevent.ActionValidator = progresseventDescAction.Validators[0].(func(string) error)
	// progresseventDescNsqfLevel is the schema descriptor for nsqf_level field.
	progresseventDescNsqfLevel := progresseventFields[4].Descriptor()
	// progressevent.DefaultNsqfLevel holds the default value on creation for the nsqf_level field.
	progressevent.DefaultNsqfLevel = progresseventDescNsqfLevel.Default.(int)
	// progresseventDescXpDelta is the schema descriptor for xp_delta field.
	progresseventDescXpDelta := progresseventFields[5].Descriptor()
	// progressevent.DefaultXpDelta holds the default value on creation for the xp_delta field.
	progressevent.DefaultXpDelta = progresseventDescXpDelta.Default.(int)
}
