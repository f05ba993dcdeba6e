// Package valueobject holds small immutable domain values.
package valueobject

// Month names keyed 1-12. English is the canonical table; the Spanish table
// matches the original LanaApp deployment and can be selected per locale.
var (
	monthNamesEN = [13]string{"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthNamesES = [13]string{"",
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
)

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

// MonthName returns the English name for month m, or "" when m is out of
// range.
func MonthName(m int) string {
	if !ValidMonth(m) {
		return ""
	}
	return monthNamesEN[m]
}

// MonthNameES returns the Spanish name for month m, or "" when m is out of
// range.
func MonthNameES(m int) string {
	if !ValidMonth(m) {
		return ""
	}
	return monthNamesES[m]
}
