// Package weekday holds the fixed Monday-first day order used by weekly
// availability and the English/Hungarian day names shown to users.
package weekday

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

const (
	LangEnglish   = "en"
	LangHungarian = "hu"
)

var order = map[Day]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

var week = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var hungarian = map[Day]string{
	Monday:    "Hétfő",
	Tuesday:   "Kedd",
	Wednesday: "Szerda",
	Thursday:  "Csütörtök",
	Friday:    "Péntek",
	Saturday:  "Szombat",
	Sunday:    "Vasárnap",
}

// lookup maps folded (lowercase, accents stripped) names of both languages.
var lookup = func() map[string]Day {
	m := make(map[string]Day, 14)
	for _, d := range week {
		m[fold(string(d))] = d
		m[fold(hungarian[d])] = d
	}
	return m
}()

// All returns the seven days in display order.
func All() []Day {
	out := make([]Day, len(week))
	copy(out, week[:])
	return out
}

// Parse accepts an English or Hungarian day name in any case, with or
// without Hungarian accents.
func Parse(s string) (Day, error) {
	if d, ok := lookup[fold(s)]; ok {
		return d, nil
	}
	return "", httperr.ErrBusiness("invalid_day")
}

func (d Day) Valid() bool {
	_, ok := order[d]
	return ok
}

// Order is the zero-based position of d in the week, or -1 when d is unknown.
func (d Day) Order() int {
	if i, ok := order[d]; ok {
		return i
	}
	return -1
}

func (d Day) Label(lang string) string {
	if NormalizeLang(lang) == LangHungarian {
		if hu, ok := hungarian[d]; ok {
			return hu
		}
	}
	return string(d)
}

func (d Day) Weekday() time.Weekday {
	return time.Weekday((d.Order() + 1) % 7)
}

func FromTime(wd time.Weekday) Day {
	return week[(int(wd)+6)%7]
}

// Translate maps a day name written in either language into lang.
func Translate(s, lang string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}
	return d.Label(lang), nil
}

// Less orders by position in the week; unknown days sort last.
func Less(a, b Day) bool {
	ai, bi := a.Order(), b.Order()
	if ai < 0 {
		ai = len(week)
	}
	if bi < 0 {
		bi = len(week)
	}
	return ai < bi
}

func NormalizeLang(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(l, LangEnglish) {
		return LangEnglish
	}
	return LangHungarian
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
