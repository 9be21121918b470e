package faq

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cryoflow/models"
	"cryoflow/services/facility"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func staticLoader(ctx context.Context) (map[string]models.FacilityRecord, error) {
	return facility.SeedCenters(), nil
}

// newFAQService pins the chooser to the first template so branch output is
// deterministic; random selection is covered separately.
func newFAQService() *DefaultFAQService {
	return &DefaultFAQService{
		Facilities: facility.NewStore(time.Hour, staticLoader, nil),
		Logger:     zap.NewNop(),
		Choose:     func(n int) int { return 0 },
	}
}

func dispatch(t *testing.T, svc *DefaultFAQService, intent string, params map[string]interface{}) string {
	t.Helper()
	text, err := svc.Dispatch(context.Background(), intent, params)
	assert.NoError(t, err)
	return text
}

func TestBookAppointmentCenterAndService(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"center":  "davis",
		"service": "whole-body cryotherapy",
	})
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-davis/whole-body")
}

func TestBookAppointmentCaseFolding(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"center":  "  Davis ",
		"service": "Whole-Body Cryotherapy",
	})
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-davis/whole-body")
}

func TestBookAppointmentNeitherSupplied(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{})
	assert.Contains(t, text, "Which of our centers")
	assert.Contains(t, text, "Davis")
	assert.Contains(t, text, "Reno")
	assert.Contains(t, text, "Roseville")
}

func TestBookAppointmentServiceOnly(t *testing.T) {
	svc := newFAQService()

	// Only Roseville offers infrared sauna.
	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"service": "infrared sauna",
	})
	assert.Contains(t, text, "Roseville")
	assert.NotContains(t, text, "Davis")

	text = dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"service": "hot yoga",
	})
	assert.Contains(t, text, "none of our centers")
}

func TestBookAppointmentCenterOnly(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"center": "reno",
	})
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-reno")
}

func TestBookAppointmentUnmatchedServiceListsOfferings(t *testing.T) {
	svc := newFAQService()

	// Reno has no infrared sauna: expect its service list plus the general link.
	text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{
		"center":  "reno",
		"service": "infrared sauna",
	})
	assert.Contains(t, text, "whole-body cryotherapy")
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-reno")
}

func TestBookingTemplateMembership(t *testing.T) {
	// With the default (random) chooser, output must always be one of the
	// general booking templates. Never assert an exact pick.
	svc := newFAQService()
	svc.Choose = nil

	centers, err := svc.Facilities.Centers(context.Background())
	assert.NoError(t, err)
	rec := centers["davis"]

	candidates := make([]string, len(generalBookingTemplates))
	for i, tpl := range generalBookingTemplates {
		candidates[i] = fmt.Sprintf(tpl, "Davis", rec.GeneralBookingLink)
	}

	for i := 0; i < 20; i++ {
		text := dispatch(t, svc, IntentBookAppointment, map[string]interface{}{"center": "davis"})
		assert.Contains(t, candidates, text)
	}
}

func TestExplainCryotherapyMembership(t *testing.T) {
	svc := newFAQService()
	svc.Choose = nil

	for i := 0; i < 20; i++ {
		text := dispatch(t, svc, IntentExplainCryo, nil)
		assert.Contains(t, cryoExplainers, text)
	}
}

func TestUnknownCenterShortCircuits(t *testing.T) {
	svc := newFAQService()

	for _, intent := range []string{IntentBookAppointment, IntentReschedule, IntentCenterInformation} {
		text := dispatch(t, svc, intent, map[string]interface{}{"center": "tahoe"})
		assert.Contains(t, text, "which one are you curious about")
		assert.Contains(t, text, "Davis")
	}
}

func TestReschedule(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentReschedule, map[string]interface{}{"center": "davis"})
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-davis/contact")

	text = dispatch(t, svc, IntentReschedule, nil)
	assert.Contains(t, text, "Which center is your appointment at?")
}

func TestAddressConcerns(t *testing.T) {
	svc := newFAQService()

	assert.Equal(t, concernsReassurance, dispatch(t, svc, IntentAddressConcerns, nil))
}

func TestCenterInformation(t *testing.T) {
	svc := newFAQService()

	text := dispatch(t, svc, IntentCenterInformation, map[string]interface{}{"center": "roseville"})
	assert.Contains(t, text, "infrared sauna")
	assert.Contains(t, text, "Mon-Sat 9am-7pm")
	assert.Contains(t, text, "https://hirefrederick.com/us-cryotherapy-roseville/contact")

	text = dispatch(t, svc, IntentCenterInformation, nil)
	assert.Contains(t, text, "which one are you curious about")
}

func TestUnrecognizedIntentFallsBack(t *testing.T) {
	svc := newFAQService()

	assert.Equal(t, fallbackMessage, dispatch(t, svc, "Order Pizza", nil))
	assert.Equal(t, fallbackMessage, dispatch(t, svc, "", nil))
}
