package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatDollar renders an amount the way the admin pages display it.
func FormatDollar(amount float64) string {
	return "$" + FormatMoney(amount)
}
