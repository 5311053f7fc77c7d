package attrs

// Secondary named-code tables. Raw attribute values are four-character
// mnemonics chosen by the game client; these map them to the names shown on
// the score screen. All tables are fixed at init and read-only afterwards, so
// concurrent decodes never need synchronization.

var raceNames = map[string]string{
	"rAnd": "Random",
	"Terr": "Terran",
	"Prot": "Protoss",
	"Zerg": "Zerg",
}

var playerTypeNames = map[string]string{
	"Humn": "Human",
	"Comp": "Computer",
	"Open": "Open",
	"Clsd": "Closed",
}

var difficultyNames = map[string]string{
	"VyEy": "Very easy",
	"Easy": "Easy",
	"Medi": "Medium",
	"Hard": "Hard",
	"VyHd": "Very hard",
	"Insa": "Insane",
}

var categoryNames = map[string]string{
	"Priv": "Private",
	"Amm":  "Ladder",
	"Pub":  "Public",
}

var gameSpeedNames = map[string]string{
	"Slor": "Slower",
	"Slow": "Slow",
	"Norm": "Normal",
	"Fast": "Fast",
	"Fasr": "Faster",
}

var gameFormatNames = map[string]string{
	"1v1": "1v1",
	"2v2": "2v2",
	"3v3": "3v3",
	"4v4": "4v4",
	"5v5": "5v5",
	"6v6": "6v6",
	"FFA": "Free For All",
}

var teamColorNames = map[string]string{
	"tc01": "Red",
	"tc02": "Blue",
	"tc03": "Teal",
	"tc04": "Purple",
	"tc05": "Yellow",
	"tc06": "Orange",
	"tc07": "Green",
	"tc08": "Light Pink",
	"tc09": "Violet",
	"tc10": "Light Grey",
	"tc11": "Dark Green",
	"tc12": "Brown",
	"tc13": "Light Green",
	"tc14": "Dark Grey",
	"tc15": "Pink",
	"tc16": "White",
}
