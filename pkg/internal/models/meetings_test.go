package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMeetingStatus(t *testing.T) {
	for _, raw := range []string{"upcoming", "active", "completed", "processing", "cancelled"} {
		status, err := ParseMeetingStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, MeetingStatus(raw), status)
	}

	_, err := ParseMeetingStatus("archived")
	assert.Error(t, err)

	_, err = ParseMeetingStatus("")
	assert.Error(t, err)
}

func TestFillDuration(t *testing.T) {
	started := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	ended := started.Add(90 * time.Second)

	meeting := Meeting{StartedAt: &started, EndedAt: &ended}
	meeting.FillDuration()
	if assert.NotNil(t, meeting.Duration) {
		assert.Equal(t, float64(90), *meeting.Duration)
	}

	ongoing := Meeting{StartedAt: &started}
	ongoing.FillDuration()
	assert.Nil(t, ongoing.Duration)

	blank := Meeting{}
	blank.FillDuration()
	assert.Nil(t, blank.Duration)
}
