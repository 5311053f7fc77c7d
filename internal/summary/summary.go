package summary

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStatCode = errors.New("unknown stat code")

// statNames maps the summary file's short stat codes to the labels shown on
// the score screen. The set is fixed; writers validate codes against it
// before storing, so an unknown code at render time is a defect, not data.
var statNames = map[string]string{
	"R":   "Resources",
	"U":   "Units",
	"S":   "Structures",
	"O":   "Overview",
	"AUR": "Average Unspent Resources",
	"RCR": "Resource Collection Rate",
	"WC":  "Workers Created",
	"UT":  "Units Trained",
	"KUC": "Killed Unit Count",
	"SB":  "Structures Built",
	"SRC": "Structures Razed Count",
}

// KnownStatCode reports whether a short code has a display label.
func KnownStatCode(code string) bool {
	_, ok := statNames[code]
	return ok
}

// StatCodes lists every short code with a display label.
func StatCodes() []string {
	codes := make([]string, 0, len(statNames))
	for code := range statNames {
		codes = append(codes, code)
	}
	return codes
}

// StatEntry is one recorded stat, addressed by its short code.
type StatEntry struct {
	Code  string `json:"code"`
	Value int64  `json:"value"`
}

// PlayerSummary is one player's block of a score screen summary. Identity and
// graphs are filled in stages as the summary file is walked; stats keep
// accepting entries throughout.
type PlayerSummary struct {
	Pid       int    `json:"pid"`
	TeamID    int    `json:"team_id"`
	Race      string `json:"race"`
	IsAI      bool   `json:"is_ai"`
	BnetID    int64  `json:"bnet_id"`
	Subregion int    `json:"subregion"`

	ArmyGraph   *Graph `json:"army_graph,omitempty"`
	IncomeGraph *Graph `json:"income_graph,omitempty"`

	stats map[string]int64
	order []string
}

func NewPlayerSummary(pid int) *PlayerSummary {
	return &PlayerSummary{
		Pid:   pid,
		stats: make(map[string]int64),
		order: make([]string, 0),
	}
}

// SetStat records a stat value. The first write of a code fixes its render
// position; later writes update the value in place.
func (ps *PlayerSummary) SetStat(code string, value int64) {
	if _, ok := ps.stats[code]; !ok {
		ps.order = append(ps.order, code)
	}
	ps.stats[code] = value
}

// Stat returns the recorded value for a code.
func (ps *PlayerSummary) Stat(code string) (int64, bool) {
	value, ok := ps.stats[code]
	return value, ok
}

// Stats lists the recorded stats in render order.
func (ps *PlayerSummary) Stats() []StatEntry {
	entries := make([]StatEntry, 0, len(ps.order))
	for _, code := range ps.order {
		entries = append(entries, StatEntry{Code: code, Value: ps.stats[code]})
	}
	return entries
}

// GetStats renders the stats block as the score screen shows it, one
// "Label: value" line per stat, trimmed of surrounding whitespace. A code
// without a label fails the whole render.
func (ps *PlayerSummary) GetStats() (string, error) {
	var b strings.Builder
	for _, code := range ps.order {
		label, ok := statNames[code]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownStatCode, code)
		}
		fmt.Fprintf(&b, "%s: %d\n", label, ps.stats[code])
	}
	return strings.TrimSpace(b.String()), nil
}

func (ps *PlayerSummary) String() string {
	if ps.IsAI {
		return fmt.Sprintf("%d - %s - AI", ps.TeamID, ps.Race)
	}
	return fmt.Sprintf("%d - %s - %d/%d", ps.TeamID, ps.Race, ps.Subregion, ps.BnetID)
}
