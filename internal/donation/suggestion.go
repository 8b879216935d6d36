package donation

import (
	"strings"

	"impacttracker/pkg/types"
)

const (
	MsgEmailInvalid        = "Please enter a valid email address"
	MsgCharityNameRequired = "Please enter the charity's name"
	MsgReasonRequired      = "Please tell us why we should collaborate with them"
)

var suggestionFieldOrder = map[string]int{
	"UserEmail":   0,
	"CharityName": 1,
	"Reason":      2,
}

var suggestionMessages = map[string]string{
	"UserEmail":   MsgEmailInvalid,
	"CharityName": MsgCharityNameRequired,
	"Reason":      MsgReasonRequired,
}

// ValidateSuggestion trims the suggestion in place and returns the first
// problem with it, or "".
func ValidateSuggestion(s *types.CharitySuggestion) string {
	s.UserEmail = strings.TrimSpace(s.UserEmail)
	s.CharityName = strings.TrimSpace(s.CharityName)
	s.Reason = strings.TrimSpace(s.Reason)

	err := validate.Struct(s)
	if err == nil {
		return ""
	}

	if fe := firstFieldError(err, suggestionFieldOrder); fe != nil {
		if msg, ok := suggestionMessages[fe.Field()]; ok {
			return msg
		}
	}
	return MsgEmailInvalid
}
