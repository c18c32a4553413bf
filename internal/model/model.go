package model

import (
	"html"
	"strings"
	"time"
)

type Language string

const (
	LanguageHU    Language = "hu"
	LanguageEN    Language = "en"
	LanguageMulti Language = "multilang"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
)

// Date marshals as a calendar day (2006-01-02), the wire format the
// backend uses for return dates.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Game is a collection record. The same shape (minus id, lending and
// ownership fields) comes back from the external-database details endpoint.
type Game struct {
	ID                 string   `json:"id,omitempty"`
	BggID              string   `json:"bgg_id"`
	Title              string   `json:"title"`
	TitleHU            string   `json:"title_hu,omitempty"`
	Authors            []string `json:"authors"`
	CoverImage         string   `json:"cover_image,omitempty"`
	MinPlayers         int      `json:"min_players"`
	MaxPlayers         int      `json:"max_players"`
	PlayTime           int      `json:"play_time"`
	ComplexityRating   float64  `json:"complexity_rating"`
	BggRating          float64  `json:"bgg_rating"`
	MinAge             int      `json:"min_age"`
	RulesLink          string   `json:"rules_link,omitempty"`
	ReleaseYear        int      `json:"release_year"`
	Categories         []string `json:"categories"`
	Description        string   `json:"description"`
	DescriptionShort   string   `json:"description_short"`
	DescriptionHU      string   `json:"description_hu,omitempty"`
	DescriptionShortHU string   `json:"description_short_hu,omitempty"`
	PersonalNotes      string   `json:"personal_notes,omitempty"`
	Language           Language `json:"language"`
	Status             Status   `json:"status"`
	BorrowedBy         string   `json:"borrowed_by,omitempty"`
	BorrowedDate       *Date    `json:"borrowed_date,omitempty"`
	ReturnDate         *Date    `json:"return_date,omitempty"`
	Owners             []Owner  `json:"owners,omitempty"`
}

// OwnedBy reports whether the given user appears among the record's owners.
func (g Game) OwnedBy(userID string) bool {
	for _, o := range g.Owners {
		if o.ID == userID {
			return true
		}
	}
	return false
}

// DisplayTitle resolves the title under the active language: the Hungarian
// variant wins when the UI runs in Hungarian and the variant is non-empty.
func (g Game) DisplayTitle(lang Language) string {
	if lang == LanguageHU && g.TitleHU != "" {
		return g.TitleHU
	}
	return g.Title
}

func (g Game) DisplayDescription(lang Language) string {
	if lang == LanguageHU && g.DescriptionHU != "" {
		return g.DescriptionHU
	}
	return g.Description
}

func (g Game) DisplayShortDescription(lang Language) string {
	if lang == LanguageHU && g.DescriptionShortHU != "" {
		return g.DescriptionShortHU
	}
	return g.DescriptionShort
}

// DecodeEntities unescapes HTML entities in every textual field. The
// external database delivers escaped text; decoding is idempotent and must
// run before any comparison or display.
func (g *Game) DecodeEntities() {
	g.Title = html.UnescapeString(g.Title)
	g.TitleHU = html.UnescapeString(g.TitleHU)
	g.Description = html.UnescapeString(g.Description)
	g.DescriptionHU = html.UnescapeString(g.DescriptionHU)
	g.DescriptionShort = html.UnescapeString(g.DescriptionShort)
	g.DescriptionShortHU = html.UnescapeString(g.DescriptionShortHU)
}

// SearchResult is an ephemeral external-database hit. It lives between a
// search call and either a details fetch or a discard.
type SearchResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      string `json:"year,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

type BorrowRequest struct {
	GameID       string `json:"game_id"`
	BorrowerName string `json:"borrower_name" validate:"required"`
	ReturnDate   Date   `json:"return_date" validate:"required,dateafternow"`
}

// UpdateRequest carries the record fields a user may edit.
type UpdateRequest struct {
	TitleHU            string   `json:"title_hu"`
	DescriptionHU      string   `json:"description_hu"`
	DescriptionShortHU string   `json:"description_short_hu"`
	Language           Language `json:"language" validate:"omitempty,oneof=hu en multilang"`
	PersonalNotes      string   `json:"personal_notes"`
}

type LoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
