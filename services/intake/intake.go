package intake

import (
	"context"
	"strings"
	"time"

	"cryoflow/models"

	"go.uber.org/zap"
)

const missingFieldsPrompt = "I still need your full name, email address and phone number to get you booked in. Could you share them with me?"

// Process produces exactly one of the four outcomes for a raw parameter bag.
// For accepted submissions, persistence always precedes notification; if
// persistence fails the confirmation mail is never sent.
func (s *DefaultIntakeService) Process(ctx context.Context, params map[string]interface{}) Result {
	sub := models.Submission{
		Name:  nameParam(params["fullname"]),
		Email: stringParam(params["email"]),
		Phone: stringParam(params["phone-number"]),
	}

	if !sub.Complete() {
		return Result{Kind: ResultMissing, Message: missingFieldsPrompt}
	}

	res := s.Validator.Validate(sub)
	if !res.OK() {
		return Result{Kind: ResultInvalid, Message: invalidFieldsMessage(res)}
	}

	now := s.now()
	if err := s.Recorder.Append(ctx, sub, now); err != nil {
		s.Logger.Error("Failed to persist submission", zap.String("email", sub.Email), zap.Error(err))
		return Result{Kind: ResultFailed}
	}
	if err := s.Mailer.SendConfirmation(ctx, sub.Email, sub.Name); err != nil {
		// The row is already written; no compensation, just report failure.
		s.Logger.Error("Failed to send confirmation mail", zap.String("email", sub.Email), zap.Error(err))
		return Result{Kind: ResultFailed}
	}

	s.Logger.Info("Submission accepted", zap.String("email", sub.Email))
	return Result{Kind: ResultAccepted}
}

// invalidFieldsMessage names exactly the failing field(s), one phrase per
// field, trailing separator trimmed.
func invalidFieldsMessage(res models.ValidationResult) string {
	msg := ""
	if !res.NameOK {
		msg += "Please enter your full name using letters only, first and last name. "
	}
	if !res.EmailOK {
		msg += "Please enter a valid email address. "
	}
	if !res.PhoneOK {
		msg += "Please enter a valid phone number. "
	}
	return strings.TrimSuffix(msg, " ")
}

func (s *DefaultIntakeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
