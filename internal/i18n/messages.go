package i18n

type text struct {
	hu string
	en string
}

var catalog = map[string]text{
	"internal_error":  {"Váratlan hiba történt, kérjük próbálja újra később.", "An unexpected error occurred, please try again later."},
	"invalid_request": {"Érvénytelen kérés.", "Invalid request."},
	"rate_limited":    {"Túl sok kérés, kérjük várjon egy kicsit.", "Too many requests, please slow down."},

	"invalid_day":         {"Érvénytelen nap.", "Invalid day."},
	"invalid_time":        {"Érvénytelen időpont (ÓÓ:PP formátum szükséges).", "Invalid time (HH:MM expected)."},
	"invalid_status":      {"Érvénytelen állapot.", "Invalid status."},
	"invalid_date":        {"Érvénytelen dátum.", "Invalid date."},
	"invalid_phone":       {"Érvénytelen telefonszám.", "Invalid phone number."},
	"invalid_email":       {"Érvénytelen e-mail cím.", "Invalid email address."},
	"invalid_timezone":    {"Érvénytelen időzóna.", "Invalid timezone."},
	"invalid_id":          {"Érvénytelen azonosító.", "Invalid identifier."},
	"invalid_slug":        {"Érvénytelen üzletazonosító (kisbetűk, számok és kötőjel).", "Invalid store slug (lowercase letters, digits and dashes)."},
	"missing_date":        {"A dátum megadása kötelező.", "Date is required."},
	"invalid_year":        {"Érvénytelen év.", "Invalid year."},
	"invalid_month":       {"Érvénytelen hónap.", "Invalid month."},
	"duplicate_slot":      {"Ugyanarra a napra és időpontra csak egy idősáv adható meg.", "Only one slot per day and time is allowed."},
	"slot_already_exists": {"Ezen a napon már van idősáv ebben az időpontban.", "That day already has a slot at this time."},
	"slot_in_use":         {"Az idősávra még van élő foglalás.", "The slot still has upcoming bookings."},

	"store_not_found":       {"Az üzlet nem található.", "Store not found."},
	"store_slug_taken":      {"Ez az üzletazonosító már foglalt.", "This store slug is already taken."},
	"worker_not_found":      {"A munkatárs nem található.", "Worker not found."},
	"worker_inactive":       {"A munkatárs jelenleg nem fogad foglalást.", "This worker is not taking bookings."},
	"slot_not_found":        {"Az idősáv nem található.", "Slot not found."},
	"client_not_found":      {"A felhasználó nem található.", "Client not found."},
	"email_taken":           {"Ez az e-mail cím már regisztrálva van.", "This email address is already registered."},
	"appointment_not_found": {"A foglalás nem található.", "Appointment not found."},

	"slot_unavailable": {"Ez az idősáv nem foglalható.", "This slot is not available."},
	"slot_taken":       {"Ez az időpont már foglalt.", "This time is already booked."},
	"day_mismatch":     {"A kiválasztott dátum nem az idősáv napjára esik.", "The chosen date does not fall on the slot's day."},
	"in_the_past":      {"Múltbeli időpontra nem lehet foglalni.", "Appointments cannot be booked in the past."},
	"invalid_state":    {"A foglalás ebben az állapotban nem módosítható.", "The appointment cannot be changed in its current state."},

	"invalid_friend":   {"Saját magát nem jelölheti ismerősnek.", "You cannot add yourself as a friend."},
	"already_friends":  {"Már ismerősök vagytok.", "You are already friends."},
	"friend_not_found": {"Az ismerős nem található.", "Friend not found."},
}
