package intake

import (
	"context"
	"time"

	"cryoflow/services/mailer"
	"cryoflow/services/records"

	"go.uber.org/zap"
)

// ResultKind classifies the single outcome of one intake request.
type ResultKind int

const (
	// ResultMissing means at least one field was absent or empty; the
	// platform should re-run the collection step.
	ResultMissing ResultKind = iota
	// ResultInvalid means all fields were present but at least one failed
	// validation; Message names the failing field(s).
	ResultInvalid
	// ResultAccepted means the record was persisted and the confirmation
	// mail sent.
	ResultAccepted
	// ResultFailed means persistence or notification failed downstream.
	ResultFailed
)

// Result is the orchestrator's verdict for one request.
type Result struct {
	Kind    ResultKind
	Message string
}

// IntakeService validates a raw parameter bag and runs the side effects for
// accepted submissions.
type IntakeService interface {
	Process(ctx context.Context, params map[string]interface{}) Result
}

// DefaultIntakeService is the production implementation.
type DefaultIntakeService struct {
	Recorder  records.Recorder
	Mailer    mailer.Mailer
	Validator Validator
	Logger    *zap.Logger

	// Now is the wall clock used to stamp persisted rows. Nil means time.Now.
	Now func() time.Time
}
