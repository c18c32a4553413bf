package model

type SortKey string

const (
	SortByRating       SortKey = "rating"
	SortByAlphabetical SortKey = "alphabetical"
	SortByPlaytime     SortKey = "playtime"
)

type SortDirection string

const (
	SortDescending SortDirection = "desc"
	SortAscending  SortDirection = "asc"
)

// AdvancedFilter is the client-side secondary predicate set. Nil bounds
// impose no constraint; a populated pair with min > max matches nothing.
type AdvancedFilter struct {
	MinPlayers    *int
	MaxPlayers    *int
	PlayTimeMin   *int
	PlayTimeMax   *int
	ComplexityMin *float64
	ComplexityMax *float64
	YearMin       *int
	YearMax       *int
	Category      string
	Author        string
}

// Empty reports whether no bound is populated.
func (f AdvancedFilter) Empty() bool {
	return f.MinPlayers == nil && f.MaxPlayers == nil &&
		f.PlayTimeMin == nil && f.PlayTimeMax == nil &&
		f.ComplexityMin == nil && f.ComplexityMax == nil &&
		f.YearMin == nil && f.YearMax == nil &&
		f.Category == "" && f.Author == ""
}

// FilterState drives one run of the collection query engine. It is
// client-local and never persisted.
type FilterState struct {
	Status      Status // empty means "all"
	Search      string
	MyGamesOnly bool

	AdvancedActive bool
	Advanced       AdvancedFilter

	SortKey       SortKey
	SortDirection SortDirection
}
