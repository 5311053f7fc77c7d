package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// Result is the outcome recorded for a team.
type Result string

const (
	ResultWin     Result = "Win"
	ResultLoss    Result = "Loss"
	ResultUnknown Result = "Unknown"
)

// Team groups the players sharing an outcome. Teams live in a Roster arena
// and are addressed through TeamID handles; Number is the team's position as
// the lobby counted it, starting at 1.
type Team struct {
	Number  int       `json:"number"`
	Players []*Player `json:"players"`
	Result  Result    `json:"result"`

	// Lineup is the single-letter race picks of the members in join order,
	// random picks excluded. It is fixed when the roster is built, not
	// derived on access.
	Lineup string `json:"lineup"`
}

// Hash fingerprints the team by its membership: each member's profile URL,
// sorted and comma-joined, digested with SHA-256. The digest is recomputed on
// every call so membership changes are always reflected.
func (t *Team) Hash() (string, error) {
	urls := make([]string, 0, len(t.Players))
	for _, player := range t.Players {
		url, err := player.URL()
		if err != nil {
			return "", err
		}
		urls = append(urls, url)
	}
	slices.Sort(urls)

	sum := sha256.Sum256([]byte(strings.Join(urls, ",")))
	return hex.EncodeToString(sum[:]), nil
}
