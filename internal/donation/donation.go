package donation

import (
	"strings"

	"impacttracker/pkg/types"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameRequired     = "Please enter your name"
	MsgPostcodeRequired = "Please enter your postcode"
	MsgPostcodeInvalid  = "Please enter a valid London postcode"
	MsgAmountInvalid    = "Please choose an amount between £10 and £1,000"
)

const amountRules = "min=10,max=1000,donation_step"

var donationFieldOrder = map[string]int{
	"Name":     0,
	"Postcode": 1,
	"Amount":   2,
}

func donationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return MsgNameRequired
	case "Postcode":
		if fe.Tag() == "required" {
			return MsgPostcodeRequired
		}
		return MsgPostcodeInvalid
	default:
		return MsgAmountInvalid
	}
}

// Validate checks the intake form. Name is checked before postcode and
// postcode before amount; the first failure is returned as a user facing
// message. On success the record carries the name as entered and the
// postcode trimmed.
func Validate(form types.DonationForm) (types.DonationRecord, string) {
	trimmed := types.DonationForm{
		Amount:   form.Amount,
		Name:     strings.TrimSpace(form.Name),
		Postcode: strings.TrimSpace(form.Postcode),
	}

	if err := validate.Struct(trimmed); err != nil {
		if fe := firstFieldError(err, donationFieldOrder); fe != nil {
			return types.DonationRecord{}, donationMessage(fe)
		}
		return types.DonationRecord{}, MsgAmountInvalid
	}

	return types.DonationRecord{
		Amount:   form.Amount,
		Name:     form.Name,
		Postcode: trimmed.Postcode,
	}, ""
}

// ValidAmount reports whether amount is a slider position.
func ValidAmount(amount int) bool {
	return validate.Var(amount, amountRules) == nil
}

// SupportedCount is the number of nearby charities a donation directly supports:
// one per £50, and never fewer than one.
func SupportedCount(amount int) int {
	return max(1, amount/50)
}

// CharityNoun picks the singular or plural noun for n charities.
func CharityNoun(n int) string {
	if n == 1 {
		return "charity"
	}
	return "charities"
}
