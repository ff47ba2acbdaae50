package store

import (
	"context"
	"time"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AccountRecord is the full persisted state of one learner account.
type AccountRecord struct {
	Profile        learner.Profile
	Password       string
	Stats          learner.Stats
	CurrentRoadmap *roadmap.Roadmap
	History        []roadmap.Roadmap
}

// AccountRepo manages learner accounts keyed by email.
type AccountRepo interface {
	// Register creates the account if the email is unused. Returns false
	// without modifying anything when an account already exists.
	Register(ctx context.Context, rec AccountRecord) (bool, error)

	// Authenticate returns the account when email and password match,
	// nil otherwise. A missing account and a wrong password are
	// indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (*AccountRecord, error)

	// Get returns the account for email, or nil if none exists.
	Get(ctx context.Context, email string) (*AccountRecord, error)

	// SaveProgress writes stats, the current roadmap and the history
	// stack as one atomic update. A nil roadmap clears the stored one.
	// Writes against a missing account are silent no-ops.
	SaveProgress(ctx context.Context, email string, stats learner.Stats, rm *roadmap.Roadmap, history []roadmap.Roadmap) error

	// ReplaceStats overwrites only the stats blob. Silent no-op when the
	// account does not exist.
	ReplaceStats(ctx context.Context, email string, stats learner.Stats) error

	// ReplaceRoadmap overwrites only the current roadmap. Silent no-op
	// when the account does not exist.
	ReplaceRoadmap(ctx context.Context, email string, rm *roadmap.Roadmap) error

	// ReplaceHistory overwrites only the roadmap history stack. Silent
	// no-op when the account does not exist.
	ReplaceHistory(ctx context.Context, email string, history []roadmap.Roadmap) error

	// Delete removes the account. Deleting a missing account is not an
	// error.
	Delete(ctx context.Context, email string) error
}

// SessionRepo manages the active-session scalar: which account, if any,
// is currently signed in on this machine.
type SessionRepo interface {
	// Set marks email as the signed-in account, replacing any previous
	// session.
	Set(ctx context.Context, email string) error

	// Current returns the signed-in email, or "" when logged out.
	Current(ctx context.Context) (string, error)

	// Clear ends the session. Clearing an absent session is not an error.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one request purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ProgressEventData captures one progression transition: a step toggle,
// a level change, an XP award or a badge unlock.
type ProgressEventData struct {
	Email        string
	Action       string
	StepID       *string
	RoadmapTitle string
	NSQFLevel    int
	XPDelta      int
	BadgeID      *string
}

// ProgressEventRecord is a persisted progression event.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendProgressEvent records a progression transition.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model, for cost estimates.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QueryProgressEvents returns progression events, newest first.
	QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error)
}
