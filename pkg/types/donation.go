package types

const (
	MinDonationAmount  = 10
	MaxDonationAmount  = 1000
	DonationAmountStep = 10

	// DefaultDonationAmount is where the amount slider starts.
	DefaultDonationAmount = 100
)

// DonationRecord is the validated output of the intake form. It is passed
// by value and never mutated after validation.
type DonationRecord struct {
	Amount   int    `json:"amount"`
	Name     string `json:"name"`
	Postcode string `json:"postcode"`
}

// DonationForm is the raw intake form as posted by the browser.
type DonationForm struct {
	Amount   int    `form:"amount" validate:"min=10,max=1000,donation_step"`
	Name     string `form:"name" validate:"required"`
	Postcode string `form:"postcode" validate:"required,london_postcode"`
}
