package gametime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	strings2 "strings"
	"time"
)

var ErrInvalidDuration = errors.New("invalid game time string")

// Duration represents a game clock reading in the format "MM:SS"
type Duration string

// ToDuration converts string from format "MM:SS" to a time.Duration
func (gd Duration) ToDuration() (time.Duration, error) {
	strings := strings2.Split(string(gd), ":")
	if len(strings) != 2 {
		return 0, ErrInvalidDuration
	}
	minutes, err := strconv.Atoi(strings[0])
	if err != nil {
		return 0, errors.Join(ErrInvalidDuration, err)
	}
	seconds, err := strconv.Atoi(strings[1])
	if err != nil {
		return 0, errors.Join(ErrInvalidDuration, err)
	}
	if minutes < 0 || seconds < 0 {
		return 0, ErrInvalidDuration
	}
	if seconds >= 60 {
		return 0, ErrInvalidDuration
	}

	dur, err := time.ParseDuration(fmt.Sprintf("%dm%ds", minutes, seconds))
	if err != nil {
		return 0, errors.Join(ErrInvalidDuration, err)
	}

	return dur, nil
}

// FromDuration renders a time.Duration as a "MM:SS" game clock reading.
// Durations of an hour or more keep accumulating minutes ("72:03").
func FromDuration(d time.Duration) Duration {
	if d < 0 {
		d = 0
	}

	mins := int(math.Floor(d.Minutes()))
	minsDuration := time.Duration(mins) * time.Minute
	secs := int(math.Round((d - minsDuration).Seconds()))
	var padMin string
	var padSec string
	switch {
	case mins < 10:
		padMin = "0"
	default:
		padMin = ""
	}
	switch {
	case secs < 10:
		padSec = "0"
	default:
		padSec = ""
	}
	str := fmt.Sprintf(`%s%d:%s%d`, padMin, mins, padSec, secs)
	return Duration(str)
}

// FromSeconds renders a whole-second count as a "MM:SS" game clock reading.
func FromSeconds(seconds int64) Duration {
	return FromDuration(time.Duration(seconds) * time.Second)
}
