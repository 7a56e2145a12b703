// Package checkout holds the buyer-form helpers: the progressive input
// masks and the format patterns the create-sale request validates with.
package checkout

import "regexp"

const (
	// TelefonePattern accepts landlines and mobiles: (DD) DDDD-DDDD or
	// (DD) DDDDD-DDDD.
	TelefonePattern = `^\(\d{2}\) \d{4,5}-\d{4}$`
	// CPFPattern is the fully masked national id: DDD.DDD.DDD-DD.
	CPFPattern = `^\d{3}\.\d{3}\.\d{3}-\d{2}$`
)

var (
	TelefoneRegex = regexp.MustCompile(TelefonePattern)
	CPFRegex      = regexp.MustCompile(CPFPattern)

	naoDigitos = regexp.MustCompile(`\D`)
)

// FormatarTelefone strips non-digits, caps at 11 digits and re-inserts
// the literal separators as the user types.
func FormatarTelefone(entrada string) string {
	digitos := naoDigitos.ReplaceAllString(entrada, "")
	if len(digitos) > 11 {
		digitos = digitos[:11]
	}

	switch {
	case len(digitos) > 7:
		corte := 6
		if len(digitos) == 11 {
			corte = 7
		}
		return "(" + digitos[:2] + ") " + digitos[2:corte] + "-" + digitos[corte:]
	case len(digitos) > 2:
		return "(" + digitos[:2] + ") " + digitos[2:]
	default:
		return digitos
	}
}

// FormatarCPF strips non-digits, caps at 11 digits and re-inserts the
// dots and dash at the fixed offsets.
func FormatarCPF(entrada string) string {
	digitos := naoDigitos.ReplaceAllString(entrada, "")
	if len(digitos) > 11 {
		digitos = digitos[:11]
	}

	switch {
	case len(digitos) > 9:
		return digitos[:3] + "." + digitos[3:6] + "." + digitos[6:9] + "-" + digitos[9:]
	case len(digitos) > 6:
		return digitos[:3] + "." + digitos[3:6] + "." + digitos[6:]
	case len(digitos) > 3:
		return digitos[:3] + "." + digitos[3:]
	default:
		return digitos
	}
}
