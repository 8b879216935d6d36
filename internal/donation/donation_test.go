package donation

import (
	"testing"

	"impacttracker/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestValidPostcode(t *testing.T) {
	valid := []string{
		"SW1A 1AA",
		"E1 6AN",
		"EC1A 1BB",
		"ec1a1bb",
		" wc2n 5dn ",
		"N1 9GU",
		"NW1 6XE",
		"SE1 7PB",
		"W1A 0AX",
		"BR1 1AA",
		"CR0 1AA",
		"DA1 1AA",
		"EN1 1AA",
		"HA1 1AA",
		"IG1 1AA",
		"KT1 1AA",
		"RM1 1AA",
		"SM1 1AA",
		"TW1 1AA",
		"UB1 1AA",
		"WD1 1AA",
		"sw1a\t1aa",
	}
	for _, pc := range valid {
		assert.True(t, ValidPostcode(pc), "expected %q to be a London postcode", pc)
	}

	invalid := []string{
		"",
		"   ",
		"M1 1AA",
		"EH1 1AA",
		"B1 1AA",
		"GU1 1AA",
		"SWA 1AA",
		"ECA1 1BB",
		"1SW 1AA",
		"XSW1 1AA",
	}
	for _, pc := range invalid {
		assert.False(t, ValidPostcode(pc), "expected %q to be rejected", pc)
	}
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "SW1A1AA", NormalizePostcode(" sw1a 1aa "))
	assert.Equal(t, "E16AN", NormalizePostcode("e1\n6an"))
	assert.Equal(t, "", NormalizePostcode(""))
}

func TestSupportedCount(t *testing.T) {
	cases := map[int]int{
		10:   1,
		49:   1,
		50:   1,
		99:   1,
		100:  2,
		150:  3,
		500:  10,
		990:  19,
		1000: 20,
	}
	for amount, want := range cases {
		assert.Equal(t, want, SupportedCount(amount), "amount %d", amount)
	}

	for amount := types.MinDonationAmount; amount <= types.MaxDonationAmount; amount += types.DonationAmountStep {
		assert.Equal(t, max(1, amount/50), SupportedCount(amount))
	}
}

func TestValidateAcceptsLondonDonation(t *testing.T) {
	record, msg := Validate(types.DonationForm{Amount: 100, Name: "Jane", Postcode: " SW1A 1AA "})

	assert.Empty(t, msg)
	assert.Equal(t, types.DonationRecord{Amount: 100, Name: "Jane", Postcode: "SW1A 1AA"}, record)
}

func TestValidateOrderOfChecks(t *testing.T) {
	tests := []struct {
		name string
		form types.DonationForm
		want string
	}{
		{"missing everything", types.DonationForm{}, MsgNameRequired},
		{"blank name", types.DonationForm{Amount: 100, Name: "  ", Postcode: "M1 1AA"}, MsgNameRequired},
		{"missing postcode", types.DonationForm{Amount: 100, Name: "Jane"}, MsgPostcodeRequired},
		{"outside london", types.DonationForm{Amount: 100, Name: "Jane", Postcode: "M1 1AA"}, MsgPostcodeInvalid},
		{"scotland", types.DonationForm{Amount: 100, Name: "Jane", Postcode: "EH1 1AA"}, MsgPostcodeInvalid},
		{"amount too small", types.DonationForm{Amount: 0, Name: "Jane", Postcode: "E1 6AN"}, MsgAmountInvalid},
		{"amount too large", types.DonationForm{Amount: 1010, Name: "Jane", Postcode: "E1 6AN"}, MsgAmountInvalid},
		{"amount off step", types.DonationForm{Amount: 55, Name: "Jane", Postcode: "E1 6AN"}, MsgAmountInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, msg := Validate(tt.form)
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, types.DonationRecord{}, record)
		})
	}
}

func TestCharityNoun(t *testing.T) {
	assert.Equal(t, "charity", CharityNoun(1))
	assert.Equal(t, "charities", CharityNoun(2))
	assert.Equal(t, "charities", CharityNoun(20))
}

func TestValidAmount(t *testing.T) {
	for _, amount := range []int{10, 20, 100, 990, 1000} {
		assert.True(t, ValidAmount(amount), "amount %d", amount)
	}
	for _, amount := range []int{-10, 0, 5, 15, 999, 1010, 5000} {
		assert.False(t, ValidAmount(amount), "amount %d", amount)
	}
}

func TestValidateKeepsNameAsEntered(t *testing.T) {
	record, msg := Validate(types.DonationForm{Amount: 50, Name: " Jane Doe ", Postcode: "e1 6an"})

	assert.Empty(t, msg)
	assert.Equal(t, " Jane Doe ", record.Name)
	assert.Equal(t, "e1 6an", record.Postcode)
}

func TestValidateNameCheckedBeforeAmount(t *testing.T) {
	_, msg := Validate(types.DonationForm{Amount: 5, Name: "", Postcode: "SW1A 1AA"})
	assert.Equal(t, MsgNameRequired, msg)

	_, msg = Validate(types.DonationForm{Amount: 5, Name: "Jane", Postcode: "M1 1AA"})
	assert.Equal(t, MsgPostcodeInvalid, msg)
}
