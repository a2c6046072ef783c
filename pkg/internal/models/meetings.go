package models

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

type MeetingStatus string

const (
	MeetingStatusUpcoming   = MeetingStatus("upcoming")
	MeetingStatusActive     = MeetingStatus("active")
	MeetingStatusCompleted  = MeetingStatus("completed")
	MeetingStatusProcessing = MeetingStatus("processing")
	MeetingStatusCancelled  = MeetingStatus("cancelled")
)

func ParseMeetingStatus(raw string) (MeetingStatus, error) {
	switch status := MeetingStatus(raw); status {
	case MeetingStatusUpcoming, MeetingStatusActive, MeetingStatusCompleted,
		MeetingStatusProcessing, MeetingStatusCancelled:
		return status, nil
	default:
		return status, fmt.Errorf("unknown meeting status: %s", raw)
	}
}

type Meeting struct {
	BaseModel

	Name   string        `json:"name"`
	Status MeetingStatus `json:"status" gorm:"default:upcoming"`

	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	AccountID string `json:"account_id"`
	AgentID   string `json:"agent_id"`
	Agent     *Agent `json:"agent,omitempty"`

	// Derived from started_at and ended_at at read time, never persisted.
	Duration *float64 `json:"duration" gorm:"-"`
}

func (v *Meeting) FillDuration() {
	if v.StartedAt != nil && v.EndedAt != nil {
		v.Duration = lo.ToPtr(v.EndedAt.Sub(*v.StartedAt).Seconds())
	}
}
