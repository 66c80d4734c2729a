package validators

import (
	"regexp"
	"strings"
	"time"
)

var (
	// 24h clock, zero padded: 09:00, 17:30.
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	// Hungarian mobile/landline with +36 or 06 prefix, or a generic
	// international number. Spaces, dashes and slashes are ignored.
	phoneRe = regexp.MustCompile(`^(\+36|06)(1|[2-9]\d)\d{6,7}$|^\+[1-9]\d{7,14}$`)

	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

func IsTime(s string) bool {
	return timeRe.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(NormalizePhone(s))
}

// NormalizePhone strips the separators people type between digit groups.
func NormalizePhone(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "/", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(s))
}

func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsSlug(s string) bool {
	return slugRe.MatchString(s)
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
