package server

import (
	"net/http"

	"impacttracker/internal/donation"
	"impacttracker/pkg/types"
)

func (s *Service) writeDonation(w http.ResponseWriter, record types.DonationRecord) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, record)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.CookieMaxAgeSec,
		Path:     "/",
	})

	return nil
}

// readDonation decodes the donation cookie. A cookie that no longer passes
// validation is treated as absent.
func (s *Service) readDonation(r *http.Request) (types.DonationRecord, bool) {
	c, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return types.DonationRecord{}, false
	}

	var record types.DonationRecord
	if err := s.cookie.Decode(s.config.CookieName, c.Value, &record); err != nil {
		s.requestLogger(r).WithError(err).Debug("discarding undecodable donation cookie")
		return types.DonationRecord{}, false
	}

	if _, msg := donation.Validate(types.DonationForm(record)); msg != "" {
		return types.DonationRecord{}, false
	}

	return record, true
}

func (s *Service) clearDonation(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
