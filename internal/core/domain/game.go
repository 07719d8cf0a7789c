package domain

// GameCategory classifies a catalog entry.
type GameCategory string

const (
	CategoryAction GameCategory = "Action"
	CategoryPuzzle GameCategory = "Puzzle"
	CategoryArcade GameCategory = "Arcade"
	CategoryRetro  GameCategory = "Retro"
)

// Game is a read-only catalog entry for an externally hosted game. The score
// ledger treats game IDs as opaque and never checks them against the catalog.
type Game struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnail   string       `json:"thumbnail"`
	IframeURL   string       `json:"iframeUrl"`
	Category    GameCategory `json:"category"`
}
