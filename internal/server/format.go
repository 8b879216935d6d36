package server

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// formatPounds renders whole pounds the way UK donors read them, e.g. £1,000.
func formatPounds(amount int) string {
	return gbPrinter.Sprintf("£%d", amount)
}

// formatKM renders a distance to one decimal place.
func formatKM(distance float64) string {
	return gbPrinter.Sprintf("%.1fkm", distance)
}
