package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "day", in: `"2024-05-01"`, want: `"2024-05-01"`},
		{name: "null", in: `null`, want: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			out, err := json.Marshal(d)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(out))
		})
	}

	var d Date
	require.Error(t, json.Unmarshal([]byte(`"01/05/2024"`), &d))
}

func TestDateUnmarshalKeepsDay(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-24"`), &d))
	require.Equal(t, time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDisplayTitle(t *testing.T) {
	g := Game{Title: "Wingspan", TitleHU: "Fesztáv"}

	require.Equal(t, "Fesztáv", g.DisplayTitle(LanguageHU))
	require.Equal(t, "Wingspan", g.DisplayTitle(LanguageEN))

	g.TitleHU = ""
	require.Equal(t, "Wingspan", g.DisplayTitle(LanguageHU))
}

func TestDisplayDescription(t *testing.T) {
	g := Game{
		Description:        "A card-driven engine builder.",
		DescriptionHU:      "Kártyavezérelt motorépítő.",
		DescriptionShort:   "Engine builder.",
		DescriptionShortHU: "",
	}

	require.Equal(t, "Kártyavezérelt motorépítő.", g.DisplayDescription(LanguageHU))
	require.Equal(t, "A card-driven engine builder.", g.DisplayDescription(LanguageEN))
	require.Equal(t, "Engine builder.", g.DisplayShortDescription(LanguageHU))
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	g := Game{
		Title:       "Crokinole &amp; Friends",
		Description: "Flick discs &quot;gently&quot; &#8211; or not.",
	}

	g.DecodeEntities()
	require.Equal(t, "Crokinole & Friends", g.Title)
	require.Equal(t, `Flick discs "gently" – or not.`, g.Description)

	// Decoding an already decoded record must not change it again.
	before := g
	g.DecodeEntities()
	require.Equal(t, before, g)
}

func TestOwnedBy(t *testing.T) {
	g := Game{Owners: []Owner{{ID: "u1", Name: "Anna"}, {ID: "u2", Name: "Bence"}}}

	require.True(t, g.OwnedBy("u2"))
	require.False(t, g.OwnedBy("u3"))
	require.False(t, Game{}.OwnedBy("u1"))
}
