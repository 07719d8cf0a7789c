// Package catalog holds the static list of externally hosted games the
// portal embeds. It is read-only configuration: the score ledger never
// validates submitted game IDs against it.
package catalog

import "github.com/batarcade/arcade-api/internal/core/domain"

var games = []domain.Game{
	{
		ID:          "asdd",
		Title:       "AS-DD",
		Description: "A mysterious data-stream challenge from the deep web.",
		Thumbnail:   "https://picsum.photos/seed/asdd/400/225",
		IframeURL:   "https://html-classic.itch.zone/html/15867499/asdd/index.html",
		Category:    domain.CategoryAction,
	},
	{
		ID:          "compass",
		Title:       "Compass",
		Description: "A high-security navigation protocol recovered from a forgotten server.",
		Thumbnail:   "https://picsum.photos/seed/compass/400/225",
		IframeURL:   "https://harshulmoon.github.io/FNAE-HTML5-1.2.3/index.html",
		Category:    domain.CategoryArcade,
	},
}

// Games returns the full catalog. Callers must not mutate the result.
func Games() []domain.Game {
	return games
}

// Find returns the catalog entry with the given ID, if any.
func Find(id string) (domain.Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Game{}, false
}
