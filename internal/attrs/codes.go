package attrs

// Attribute names for the codes the decoder knows how to interpret. Team
// grouping attributes share the "Teams" prefix; exactly one of them appears
// per player, picked by the lobby's game format.
const (
	NamePlayerType = "Player Type"
	NameGameType   = "Game Type"
	NameGameSpeed  = "Game Speed"
	NameRace       = "Race"
	NameColor      = "Color"
	NameHandicap   = "Handicap"
	NameDifficulty = "Difficulty"
	NameCategory   = "Category"

	TeamsPrefix = "Teams"
)

// Entry is one row of the attribute code table: the display name for a code
// plus the optional transform applied to its stripped value.
type Entry struct {
	Name      string
	transform transform
}

// codeTable maps the numeric attribute codes found in replay files to their
// display names and value transforms. Codes absent here decode as Unknown
// with the stripped raw value kept.
var codeTable = map[uint16]Entry{
	0x01F4: {Name: NamePlayerType, transform: tableLookup{playerTypeNames}},
	0x07D1: {Name: NameGameType, transform: tableLookup{gameFormatNames}},
	0x07D2: {Name: TeamsPrefix + "1v1", transform: computed{firstDigit}},
	0x07D3: {Name: TeamsPrefix + "2v2", transform: computed{firstDigit}},
	0x07D4: {Name: TeamsPrefix + "3v3", transform: computed{firstDigit}},
	0x07D5: {Name: TeamsPrefix + "4v4", transform: computed{firstDigit}},
	0x07D6: {Name: TeamsPrefix + "FFA", transform: computed{firstDigit}},
	0x07D7: {Name: TeamsPrefix + "5v5", transform: computed{firstDigit}},
	0x0BB8: {Name: NameGameSpeed, transform: tableLookup{gameSpeedNames}},
	0x0BB9: {Name: NameRace, transform: tableLookup{raceNames}},
	0x0BBA: {Name: NameColor, transform: tableLookup{teamColorNames}},
	0x0BBB: {Name: NameHandicap},
	0x0BBC: {Name: NameDifficulty, transform: tableLookup{difficultyNames}},
	0x0BC1: {Name: NameCategory, transform: tableLookup{categoryNames}},
}

// Lookup returns the code table entry for a numeric attribute code.
func Lookup(code uint16) (Entry, bool) {
	entry, ok := codeTable[code]
	return entry, ok
}
