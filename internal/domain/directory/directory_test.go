package directory

import (
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hajvarázs Szalon":     "hajvarazs-szalon",
		"  Fodrász & Társa  ":  "fodrasz-tarsa",
		"Szépség Stúdió 2000!": "szepseg-studio-2000",
		"Őrség Ütő":            "orseg-uto",
		"---":                  "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckContact(t *testing.T) {
	phone, email, err := CheckContact("+36 30 123 4567", " Anna@Example.HU ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phone != "+36301234567" || email != "anna@example.hu" {
		t.Fatalf("unexpected normalization %q %q", phone, email)
	}

	if _, _, err := CheckContact("12", ""); !httperr.IsBusiness(err, "invalid_phone") {
		t.Fatalf("expected invalid_phone, got %v", err)
	}
	if _, _, err := CheckContact("", "not-an-email"); !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("expected invalid_email, got %v", err)
	}
	if _, _, err := CheckContact("", ""); err != nil {
		t.Fatalf("empty contact is allowed: %v", err)
	}
}

func TestCheckFriend(t *testing.T) {
	if err := CheckFriend(3, 3); !httperr.IsBusiness(err, "invalid_friend") {
		t.Fatalf("expected invalid_friend, got %v", err)
	}
	if err := CheckFriend(3, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSortClients(t *testing.T) {
	clients := []models.Client{
		{ID: 3, Name: "zoltán"},
		{ID: 1, Name: "Anna"},
		{ID: 2, Name: "anna"},
		{ID: 4, Name: "Bence"},
	}
	SortClients(clients)

	want := []uint{1, 2, 4, 3}
	for i, id := range want {
		if clients[i].ID != id {
			t.Fatalf("position %d: got %d, want %d", i, clients[i].ID, id)
		}
	}
}
