package intake

import (
	"regexp"
	"strings"

	"cryoflow/models"

	"github.com/nyaruka/phonenumbers"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validator applies the canonical field rules. Handler variants historically
// disagreed on how many name words to accept, so the word-count bounds are
// knobs rather than constants.
type Validator struct {
	MinNameWords  int
	MaxNameWords  int // 0 means uncapped
	DefaultRegion string
}

// NewValidator returns a validator with the canonical defaults: at least two
// name words, no upper cap, US numbering plan.
func NewValidator() Validator {
	return Validator{MinNameWords: 2, DefaultRegion: "US"}
}

// ValidName accepts names made of letters and spaces only, with a word count
// inside the configured bounds.
func (v Validator) ValidName(input string) bool {
	words := strings.Fields(input)
	min := v.MinNameWords
	if min <= 0 {
		min = 2
	}
	if len(words) < min {
		return false
	}
	if v.MaxNameWords > 0 && len(words) > v.MaxNameWords {
		return false
	}
	return nameRe.MatchString(strings.Join(words, " "))
}

// ValidEmail is a shape check only (something@something.something), not RFC
// validation or a deliverability check.
func (v Validator) ValidEmail(input string) bool {
	return emailRe.MatchString(strings.TrimSpace(input))
}

// ValidPhone parses the input under the configured numbering plan. Parse
// failures mean "invalid", never an error.
func (v Validator) ValidPhone(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	num, err := phonenumbers.Parse(input, v.DefaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Validate runs all three predicates over a submission.
func (v Validator) Validate(sub models.Submission) models.ValidationResult {
	return models.ValidationResult{
		NameOK:  v.ValidName(sub.Name),
		EmailOK: v.ValidEmail(sub.Email),
		PhoneOK: v.ValidPhone(sub.Phone),
	}
}
