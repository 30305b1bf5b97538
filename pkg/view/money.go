package view

import "fmt"

// MoneyFromCents converts minor units to a human-readable currency string,
// e.g. 1000 THB -> "฿10.00".
func MoneyFromCents(cents int, currency string) string {
	major := cents / 100
	remainder := cents % 100
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), float64(major)+float64(remainder)/100)
}

func currencySymbol(code string) string {
	switch code {
	case "THB":
		return "฿"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	default:
		return code + " "
	}
}
