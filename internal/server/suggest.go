package server

import (
	"context"
	"net/http"
	"net/url"

	"impacttracker/internal/donation"
	"impacttracker/pkg/types"
)

const msgSuggestionFailed = "Failed to submit suggestion. Please try again."

func newSuggestionPageData(userName string, s *types.CharitySuggestion) *types.SuggestionPageData {
	return &types.SuggestionPageData{
		BasePageData: types.BasePageData{Title: "Suggest a Charity"},
		UserName:     userName,
		Email:        s.UserEmail,
		CharityName:  s.CharityName,
		Reason:       s.Reason,
	}
}

func (s *Service) handleGetSuggest(w http.ResponseWriter, r *http.Request) {
	record, err := s.donationFromContext(r.Context())
	if err != nil {
		s.requestLogger(r).WithError(err).Error("ctx doesn't contain donation")
		s.internalServerError(w)
		return
	}

	data := newSuggestionPageData(record.Name, &types.CharitySuggestion{})
	if err := s.renderTemplate(w, http.StatusOK, "page.suggest", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render suggestion page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostSuggest(w http.ResponseWriter, r *http.Request) {
	record, err := s.donationFromContext(r.Context())
	if err != nil {
		s.requestLogger(r).WithError(err).Error("ctx doesn't contain donation")
		s.internalServerError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to parse form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	var suggestion = new(types.CharitySuggestion)
	if err := decoder.Decode(suggestion, r.Form); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to decode suggestion form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	suggestion.UserName = record.Name
	msg := donation.ValidateSuggestion(suggestion)

	data := newSuggestionPageData(record.Name, suggestion)

	if msg != "" {
		data.Error = msg
		if err := s.renderTemplate(w, http.StatusUnprocessableEntity, "page.suggest", data); err != nil {
			s.requestLogger(r).WithError(err).Error("failed to render suggestion page with validation error")
			s.internalServerError(w)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	if err := s.backend.SubmitSuggestion(ctx, suggestion); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to submit charity suggestion")

		data.Error = msgSuggestionFailed
		if err := s.renderTemplate(w, http.StatusBadGateway, "page.suggest", data); err != nil {
			s.requestLogger(r).WithError(err).Error("failed to render suggestion page with submit error")
			s.internalServerError(w)
		}
		return
	}

	s.requestLogger(r).WithField("charity_name", suggestion.CharityName).Info("charity suggestion received")

	data.Submitted = true
	data.ReturnURL = impactNotice("Thank you! Your suggestion has been submitted.")
	if err := s.renderTemplate(w, http.StatusOK, "page.suggest", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render suggestion confirmation")
		s.internalServerError(w)
	}
}

func impactNotice(notice string) string {
	v := url.Values{}
	v.Set("notice", notice)
	return "/impact?" + v.Encode()
}
