package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMood_RoundTripNames(t *testing.T) {
	t.Parallel()

	want := []string{"happy", "sad", "neutral", "excited", "tired"}
	moods := AllMoods()
	require.Len(t, moods, MoodCount)

	for i, m := range moods {
		assert.Equal(t, want[i], m.String())
		parsed, err := ParseMood(want[i])
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestMood_ParseUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseMood("angry")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMood_InvalidValue(t *testing.T) {
	t.Parallel()

	m := Mood(42)
	assert.False(t, m.IsValid())
	assert.Equal(t, "Mood(42)", m.String())

	_, err := json.Marshal(m)
	assert.Error(t, err)
}

func TestMood_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		Mood Mood `json:"mood"`
	}{Mood: MoodExcited})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mood":"excited"}`, string(b))

	var out struct {
		Mood Mood `json:"mood"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mood":"tired"}`), &out))
	assert.Equal(t, MoodTired, out.Mood)
}

func TestGender_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.False(t, Gender("male").IsValid())
	assert.False(t, Gender("").IsValid())
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	single := NewValidationError("email", "required")
	assert.Equal(t, "validation: email: required", single.Error())

	multi := NewValidationErrors([]FieldError{
		{Field: "email", Message: "required"},
		{Field: "password", Message: "too short"},
	})
	assert.Equal(t, "validation: email: required; password: too short", multi.Error())
	assert.ErrorIs(t, multi, ErrValidation)

	msg, ok := multi.Message("password")
	assert.True(t, ok)
	assert.Equal(t, "too short", msg)
	_, ok = multi.Message("name")
	assert.False(t, ok)
}
