package replay

import "encoding/json"

// Person carries what players and observers have in common. It is never used
// on its own; Player and Observer embed it.
type Person struct {
	Pid  int    `json:"pid"`
	Name string `json:"name"`

	IsObserver bool `json:"is_observer"`
	IsHuman    bool `json:"is_human"`

	// Recorder is flipped once the message stream reveals whose client
	// saved the file. At most one person per replay has it set.
	Recorder bool `json:"recorder"`

	// Messages and Events stay opaque here: they are kept in arrival order
	// for the timeline collaborators that know how to read them.
	Messages []json.RawMessage `json:"-"`
	Events   []json.RawMessage `json:"-"`
}

func newPerson(pid int, name string) Person {
	return Person{
		Pid:      pid,
		Name:     name,
		Messages: make([]json.RawMessage, 0),
		Events:   make([]json.RawMessage, 0),
	}
}

// Observer is a person watching the game without a slot in it. Observers are
// always human and never carry a team, race, or color.
type Observer struct {
	Person
}
