package donation

import (
	"errors"

	"impacttracker/pkg/types"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("london_postcode", func(fl validator.FieldLevel) bool {
		return ValidPostcode(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("donation_step", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%types.DonationAmountStep == 0
	}); err != nil {
		panic(err)
	}

	return v
}

// firstFieldError picks the failing field that ranks lowest in order.
// Fields missing from order sort last.
func firstFieldError(err error, order map[string]int) validator.FieldError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return nil
	}

	rank := func(fe validator.FieldError) int {
		if r, ok := order[fe.Field()]; ok {
			return r
		}
		return len(order)
	}

	first := errs[0]
	for _, fe := range errs[1:] {
		if rank(fe) < rank(first) {
			first = fe
		}
	}
	return first
}
