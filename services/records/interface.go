package records

import (
	"context"
	"time"

	"cryoflow/models"
)

// Recorder appends one validated submission to the backing store. The store
// is append-only from this service's point of view.
type Recorder interface {
	Append(ctx context.Context, sub models.Submission, at time.Time) error
}
