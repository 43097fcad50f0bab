package domain

import "fmt"

// Mood is the closed set of affect labels a capture can resolve to.
// Lookup tables keyed by mood are arrays of length MoodCount, which keeps
// every mapping total.
type Mood uint8

const (
	MoodHappy Mood = iota
	MoodSad
	MoodNeutral
	MoodExcited
	MoodTired

	moodEnd
)

// MoodCount is the number of mood labels.
const MoodCount = int(moodEnd)

var moodNames = [MoodCount]string{
	MoodHappy:   "happy",
	MoodSad:     "sad",
	MoodNeutral: "neutral",
	MoodExcited: "excited",
	MoodTired:   "tired",
}

func (m Mood) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mood(%d)", uint8(m))
	}
	return moodNames[m]
}

func (m Mood) IsValid() bool { return m < moodEnd }

// AllMoods returns every mood label in declaration order.
func AllMoods() []Mood {
	out := make([]Mood, 0, MoodCount)
	for m := Mood(0); m < moodEnd; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMood converts a lowercase label into a Mood.
func ParseMood(s string) (Mood, error) {
	for i, name := range moodNames {
		if name == s {
			return Mood(i), nil
		}
	}
	return 0, NewValidationError("mood", fmt.Sprintf("unknown mood %q", s))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mood) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshal mood: invalid value %d", uint8(m))
	}
	return []byte(moodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mood) UnmarshalText(b []byte) error {
	parsed, err := ParseMood(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
