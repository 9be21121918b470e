package faq

import (
	"context"

	"cryoflow/services/facility"

	"go.uber.org/zap"
)

// Chooser picks an index in [0, n). Injectable so tests can pin the pick.
type Chooser func(n int) int

// FAQService turns a matched intent plus parameters into reply text.
type FAQService interface {
	Dispatch(ctx context.Context, intent string, params map[string]interface{}) (string, error)
}

// DefaultFAQService is the production implementation, backed by the facility
// cache.
type DefaultFAQService struct {
	Facilities *facility.Store
	Logger     *zap.Logger

	// Choose selects among response templates. Nil means uniform rand.Intn.
	Choose Chooser
}
