package server

import (
	"net/http"

	"impacttracker/internal/donation"
	"impacttracker/pkg/types"
)

func newDonationPageData(form types.DonationForm, errMsg string) *types.DonationPageData {
	amount := form.Amount
	if !donation.ValidAmount(amount) {
		amount = types.DefaultDonationAmount
	}

	return &types.DonationPageData{
		BasePageData:   types.BasePageData{Title: "Make a Difference Today"},
		Amount:         amount,
		Name:           form.Name,
		Postcode:       form.Postcode,
		MinAmount:      types.MinDonationAmount,
		MaxAmount:      types.MaxDonationAmount,
		AmountStep:     types.DonationAmountStep,
		SupportedCount: donation.SupportedCount(amount),
		Error:          errMsg,
	}
}

func (s *Service) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.readDonation(r); ok {
		http.Redirect(w, r, "/impact", http.StatusSeeOther)
		return
	}

	data := newDonationPageData(types.DonationForm{Amount: types.DefaultDonationAmount}, "")

	if err := s.renderTemplate(w, http.StatusOK, "page.donation", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render donation page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostDonation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to parse form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	var form types.DonationForm
	record, errMsg := types.DonationRecord{}, ""
	if err := decoder.Decode(&form, r.Form); err != nil {
		s.requestLogger(r).WithError(err).Info("failed to decode donation form")
		form.Name = r.FormValue("name")
		form.Postcode = r.FormValue("postcode")
		errMsg = donation.MsgAmountInvalid
	} else {
		record, errMsg = donation.Validate(form)
	}

	if errMsg != "" {
		s.requestLogger(r).WithField("error", errMsg).Info("donation form rejected")

		data := newDonationPageData(form, errMsg)
		if err := s.renderTemplate(w, http.StatusUnprocessableEntity, "page.donation", data); err != nil {
			s.requestLogger(r).WithError(err).Error("failed to render donation page with validation error")
			s.internalServerError(w)
		}
		return
	}

	if err := s.writeDonation(w, record); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to encode donation cookie")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/impact", http.StatusSeeOther)
}

func (s *Service) handlePostReset(w http.ResponseWriter, r *http.Request) {
	s.clearDonation(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
