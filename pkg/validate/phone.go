package validate

import (
	"regexp"
	"strings"

	"github.com/stellar/go/strkey"
)

var kenyanMSISDN = regexp.MustCompile(`^254[17]\d{8}$`)

var phoneNoise = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

// NormalizePhone converts local, international and +-prefixed Kenyan numbers to 254XXXXXXXXX.
func NormalizePhone(raw string) (string, bool) {
	p := phoneNoise.Replace(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(p, "254"):
	case strings.HasPrefix(p, "0"):
		p = "254" + p[1:]
	case len(p) == 9:
		p = "254" + p
	}
	if !kenyanMSISDN.MatchString(p) {
		return "", false
	}
	return p, true
}

// E164 renders a normalized number with the leading plus SMS providers expect.
func E164(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}

func IsPublicKey(s string) bool {
	return strkey.IsValidEd25519PublicKey(s)
}
