package i18n

import "github.com/szabodaniel/boardgame-collection/internal/model"

// Message keys.
const (
	KeyTitle            = "title"
	KeyAddGame          = "addGame"
	KeyAllGames         = "allGames"
	KeyAvailable        = "available"
	KeyBorrowed         = "borrowed"
	KeyMyGames          = "myGames"
	KeySearchCollection = "searchCollection"
	KeyNoGamesYet       = "noGamesYet"
	KeyPlayers          = "players"
	KeyTime             = "time"
	KeyComplexity       = "complexity"
	KeyDesigner         = "designer"
	KeyCategories       = "categories"
	KeyDescription      = "description"
	KeyYear             = "year"
	KeyMinAge           = "minAge"
	KeyRating           = "rating"
	KeyBorrowedBy       = "borrowedBy"
	KeyBorrowedDate     = "borrowedDate"
	KeyReturnDate       = "returnDate"
	KeyLendGame         = "lendGame"
	KeyMarkReturned     = "markReturned"
	KeyRemove           = "remove"
	KeySearchResults    = "searchResults"
	KeyReleased         = "released"
	KeyBorrowerName     = "borrowerName"
	KeyExpectedReturn   = "expectedReturn"
	KeyPersonalNotes    = "personalNotes"
	KeyStatusAvailable  = "statusAvailable"
	KeyStatusBorrowed   = "statusBorrowed"
	KeyOwners           = "owners"
	KeySignedInAs       = "signedInAs"
	KeyNotSignedIn      = "notSignedIn"

	KeyGameAlreadyExists = "gameAlreadyExists"
	KeyFailedToAdd       = "failedToAdd"
	KeyFailedToBorrow    = "failedToBorrow"
	KeyFailedToReturn    = "failedToReturn"
	KeyFailedToDelete    = "failedToDelete"
	KeyFailedToUpdate    = "failedToUpdate"
	KeyFailedToSearch    = "failedToSearch"
	KeyConfirmDelete     = "confirmDelete"
	KeyLoginFailed       = "loginFailed"
	KeySessionExpired    = "sessionExpired"
)

var tables = map[model.Language]map[string]string{
	model.LanguageHU: {
		KeyTitle:            "Társasjáték Gyűjteményem",
		KeyAddGame:          "Játék hozzáadása",
		KeyAllGames:         "Összes játék",
		KeyAvailable:        "Elérhető",
		KeyBorrowed:         "Kölcsönadva",
		KeyMyGames:          "Saját játékaim",
		KeySearchCollection: "Keresés a gyűjteményben...",
		KeyNoGamesYet:       "Még nincsenek játékok a gyűjteményben",
		KeyPlayers:          "Játékosok",
		KeyTime:             "Idő",
		KeyComplexity:       "Bonyolultság",
		KeyDesigner:         "Tervező",
		KeyCategories:       "Kategóriák",
		KeyDescription:      "Leírás",
		KeyYear:             "Év",
		KeyMinAge:           "Ajánlott életkor",
		KeyRating:           "Értékelés",
		KeyBorrowedBy:       "Kölcsönvevő",
		KeyBorrowedDate:     "Kölcsönadás dátuma",
		KeyReturnDate:       "Visszahozás",
		KeyLendGame:         "Játék kölcsönadása",
		KeyMarkReturned:     "Visszahozva",
		KeyRemove:           "Eltávolítás",
		KeySearchResults:    "Találatok:",
		KeyReleased:         "Kiadás",
		KeyBorrowerName:     "Kölcsönvevő neve",
		KeyExpectedReturn:   "Várható visszahozás",
		KeyPersonalNotes:    "Saját megjegyzések",
		KeyStatusAvailable:  "Elérhető",
		KeyStatusBorrowed:   "Kölcsönadva",
		KeyOwners:           "Tulajdonosok",
		KeySignedInAs:       "Bejelentkezve mint",
		KeyNotSignedIn:      "Nincs bejelentkezve",

		KeyGameAlreadyExists: "Ez a játék már szerepel a gyűjteményben!",
		KeyFailedToAdd:       "Nem sikerült hozzáadni a játékot",
		KeyFailedToBorrow:    "Nem sikerült kölcsönadni a játékot",
		KeyFailedToReturn:    "Nem sikerült visszahozni a játékot",
		KeyFailedToDelete:    "Nem sikerült törölni a játékot",
		KeyFailedToUpdate:    "Nem sikerült frissíteni a játékot",
		KeyFailedToSearch:    "A keresés nem sikerült",
		KeyConfirmDelete:     "Biztosan el szeretnéd távolítani ezt a játékot a gyűjteményből?",
		KeyLoginFailed:       "Bejelentkezés sikertelen. Kérjük próbálja újra!",
		KeySessionExpired:    "A munkamenet lejárt, jelentkezz be újra",
	},
	model.LanguageEN: {
		KeyTitle:            "My Board Game Collection",
		KeyAddGame:          "Add Game",
		KeyAllGames:         "All Games",
		KeyAvailable:        "Available",
		KeyBorrowed:         "Borrowed",
		KeyMyGames:          "My Games",
		KeySearchCollection: "Search your collection...",
		KeyNoGamesYet:       "No games in your collection yet",
		KeyPlayers:          "Players",
		KeyTime:             "Time",
		KeyComplexity:       "Complexity",
		KeyDesigner:         "Designer",
		KeyCategories:       "Categories",
		KeyDescription:      "Description",
		KeyYear:             "Year",
		KeyMinAge:           "Recommended age",
		KeyRating:           "Rating",
		KeyBorrowedBy:       "Borrowed by",
		KeyBorrowedDate:     "Borrowed on",
		KeyReturnDate:       "Return date",
		KeyLendGame:         "Lend Game",
		KeyMarkReturned:     "Mark Returned",
		KeyRemove:           "Remove",
		KeySearchResults:    "Search Results:",
		KeyReleased:         "Released",
		KeyBorrowerName:     "Borrower Name",
		KeyExpectedReturn:   "Expected Return Date",
		KeyPersonalNotes:    "Personal notes",
		KeyStatusAvailable:  "Available",
		KeyStatusBorrowed:   "Borrowed",
		KeyOwners:           "Owners",
		KeySignedInAs:       "Signed in as",
		KeyNotSignedIn:      "Not signed in",

		KeyGameAlreadyExists: "This game is already in your collection!",
		KeyFailedToAdd:       "Failed to add game to collection",
		KeyFailedToBorrow:    "Failed to mark game as borrowed",
		KeyFailedToReturn:    "Failed to mark game as returned",
		KeyFailedToDelete:    "Failed to delete game",
		KeyFailedToUpdate:    "Failed to update game",
		KeyFailedToSearch:    "Search failed",
		KeyConfirmDelete:     "Are you sure you want to remove this game from your collection?",
		KeyLoginFailed:       "Sign-in failed. Please try again!",
		KeySessionExpired:    "Session expired, please sign in again",
	},
}

// Translate returns the message for (lang, key), or the key itself when no
// entry exists. It never returns an empty string for a non-empty key.
func Translate(lang model.Language, key string) string {
	if table, ok := tables[lang]; ok {
		if msg, found := table[key]; found {
			return msg
		}
	}
	return key
}

// Toggle flips between the two supported UI languages.
func Toggle(current model.Language) model.Language {
	if current == model.LanguageHU {
		return model.LanguageEN
	}
	return model.LanguageHU
}
