package validators

import (
	"strings"
)

var (
	gmailDomains   = []string{"gmail.com", "googlemail.com"}
	outlookDomains = []string{"hotmail.at", "hotmail.be", "hotmail.ca", "hotmail.cl", "hotmail.co.il", "hotmail.co.nz", "hotmail.co.th", "hotmail.co.uk", "hotmail.com", "hotmail.com.ar", "hotmail.com.au", "hotmail.com.br", "hotmail.com.gr", "hotmail.com.mx", "hotmail.com.pe", "hotmail.com.tr", "hotmail.com.vn", "hotmail.cz", "hotmail.de", "hotmail.dk", "hotmail.es", "hotmail.fr", "hotmail.hu", "hotmail.id", "hotmail.ie", "hotmail.in", "hotmail.it", "hotmail.jp", "hotmail.kr", "hotmail.lv", "hotmail.my", "hotmail.ph", "hotmail.pt", "hotmail.sa", "hotmail.sg", "hotmail.sk", "live.be", "live.co.uk", "live.com", "live.com.ar", "live.com.mx", "live.de", "live.es", "live.eu", "live.fr", "live.it", "live.nl", "msn.com", "outlook.at", "outlook.be", "outlook.cl", "outlook.co.il", "outlook.co.nz", "outlook.co.th", "outlook.com", "outlook.com.ar", "outlook.com.au", "outlook.com.br", "outlook.com.gr", "outlook.com.pe", "outlook.com.tr", "outlook.com.vn", "outlook.cz", "outlook.de", "outlook.dk", "outlook.es", "outlook.fr", "outlook.hu", "outlook.id", "outlook.ie", "outlook.in", "outlook.it", "outlook.jp", "outlook.kr", "outlook.lv", "outlook.my", "outlook.ph", "outlook.pt", "outlook.sa", "outlook.sg", "outlook.sk", "passport.com"}
	yahooDomains   = []string{"rocketmail.com", "yahoo.ca", "yahoo.co.uk", "yahoo.com", "yahoo.de", "yahoo.fr", "yahoo.in", "yahoo.it", "ymail.com"}
	icloudDomains  = []string{"icloud.com", "me.com"}
)

// NormalizeEmail returns the canonical form of an address:
//   - surrounding whitespace is removed and the address is lower-cased;
//   - Gmail addresses lose the dots of the local part and googlemail.com
//     becomes gmail.com, the "+tag" subaddress is kept;
//   - Outlook, iCloud ("+tag") and Yahoo ("-tag") subaddresses are removed.
//
// It returns ErrEmailNormalization when the address has no "@" or an empty
// local part or domain.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrEmailNormalization
	}
	local, domain := email[:at], email[at+1:]

	switch {
	case contains(gmailDomains, domain):
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	case contains(outlookDomains, domain), contains(icloudDomains, domain):
		local = cutAt(local, "+")
	case contains(yahooDomains, domain):
		local = cutAt(local, "-")
	}

	if local == "" {
		return "", ErrEmailNormalization
	}

	return local + "@" + domain, nil
}

func cutAt(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
