package form

import (
	_ "embed"
	"encoding/json"
	"strconv"
)

// The mood list is a fixed asset shipped with the client; the selector offers
// exactly these options and the chosen one becomes the opaque mood label.

//go:embed moods.json
var moodsJSON []byte

// MoodOption is one entry of the fixed mood list.
type MoodOption struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Display is the value stored when the option is chosen, e.g. "😊 Feliz / leve".
func (m MoodOption) Display() string { return m.Emoji + " " + m.Label }

// MoodOptions returns the embedded mood list.
func MoodOptions() ([]MoodOption, error) {
	var opts []MoodOption
	if err := json.Unmarshal(moodsJSON, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// LevelOptions returns the 1-5 scale shared by the stress and sleep
// selectors.
func LevelOptions() []string {
	out := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}
