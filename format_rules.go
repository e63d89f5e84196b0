package anchor

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// A single DNS label: 1-63 chars, no leading or trailing hyphen.
	hostLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

	tldRegex = regexp.MustCompile(`^[a-zA-Z]{2,63}$`)

	// Something dotted followed by something else, e.g. "example.com/a".
	urlishRegex = regexp.MustCompile(`^\s*([^/]+\.)+.+\s*$`)

	digitsRegex = regexp.MustCompile(`^[0-9]+$`)

	// A leading "scheme:" as in "mailto:x" or "javascript:x".
	schemePrefixRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

var urlSchemes = []string{"http", "https", "ftp"}

func formatRules() []Rule {
	return []Rule{
		{Name: RuleEmail, Check: unary(isEmail)},
		{Name: RuleURL, Check: unary(isURL)},
		{Name: RuleURLish, Check: unary(matches(urlishRegex))},
		{Name: RuleIP, Check: unary(isIP)},
		{Name: RuleCreditCard, Check: unary(isCreditCard)},
	}
}

// isEmail validates a bare RFC 5322 address. Display names
// ("Jane <jane@example.com>") are rejected, and the domain must be dotted.
func isEmail(value any) bool {
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 {
		return false
	}
	domain := addr.Address[at+1:]

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// isURL accepts http, https and ftp URLs. The scheme may be omitted, in
// which case http is assumed. The host must be an IP literal or a domain
// name with a top level domain, and the port, if any, must be 1-65535.
//
// Without "://", a leading "name:" is only read as host and port when a
// digit follows the colon; "mailto:x@y.com" is a foreign scheme, not a host.
func isURL(value any) bool {
	s := stringify(value)
	if s == "" || len(s) > maxURLLength || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	raw := s
	implicitScheme := !strings.Contains(raw, "://")
	if implicitScheme {
		if prefix := schemePrefixRegex.FindString(raw); prefix != "" {
			if len(raw) == len(prefix) || !isDigit(raw[len(prefix)]) {
				return false
			}
		}
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if implicitScheme && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return false
		}
	}

	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return false
		}
	}

	if !slices.Contains(urlSchemes, strings.ToLower(u.Scheme)) {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return isDomainName(host)
}

// isDomainName reports whether host is a dotted name ending in an
// alphabetic top level domain.
func isDomainName(host string) bool {
	host = strings.TrimSuffix(host, ".")
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels[:len(labels)-1] {
		if !hostLabelRegex.MatchString(label) {
			return false
		}
	}

	return tldRegex.MatchString(labels[len(labels)-1])
}

func isIP(value any) bool {
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return false
	}
	return net.ParseIP(s) != nil
}

// isCreditCard strips spaces and dashes, then requires 13-19 digits that
// pass the Luhn checksum.
func isCreditCard(value any) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(stringify(value), " ", ""), "-", "")

	if !digitsRegex.MatchString(cleaned) {
		return false
	}
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	return luhn(cleaned)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// luhn expects a string of ASCII digits.
func luhn(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}
