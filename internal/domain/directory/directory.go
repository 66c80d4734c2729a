// Package directory holds the rules for stores, workers, clients and the
// client friend list.
package directory

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// Slugify turns a store name into a URL slug: "Hajvarázs Szalon" becomes
// "hajvarazs-szalon".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Hungarian).String(folded)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// CheckContact validates optional phone and email values and returns them
// normalized.
func CheckContact(phone, email string) (string, string, error) {
	if phone != "" {
		if !validators.IsPhone(phone) {
			return "", "", httperr.ErrBusiness("invalid_phone")
		}
		phone = validators.NormalizePhone(phone)
	}
	if email != "" {
		if !validators.IsEmail(email) {
			return "", "", httperr.ErrBusiness("invalid_email")
		}
		email = validators.NormalizeEmail(email)
	}
	return phone, email, nil
}

// CheckFriend rejects befriending yourself.
func CheckFriend(clientID, friendID uint) error {
	if clientID == friendID {
		return httperr.ErrBusiness("invalid_friend")
	}
	return nil
}

// SortClients orders by name, then id for equal names.
func SortClients(clients []models.Client) {
	collate := cases.Fold()
	sort.SliceStable(clients, func(i, j int) bool {
		a, b := collate.String(clients[i].Name), collate.String(clients[j].Name)
		if a != b {
			return a < b
		}
		return clients[i].ID < clients[j].ID
	})
}

// SortWorkers orders by name, then id.
func SortWorkers(workers []models.Worker) {
	collate := cases.Fold()
	sort.SliceStable(workers, func(i, j int) bool {
		a, b := collate.String(workers[i].Name), collate.String(workers[j].Name)
		if a != b {
			return a < b
		}
		return workers[i].ID < workers[j].ID
	})
}
