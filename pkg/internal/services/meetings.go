package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Deepak1230987/meetAI/pkg/internal/database"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/Deepak1230987/meetAI/pkg/internal/video"
	"gorm.io/gorm"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 10
)

type MeetingFilter struct {
	Page     int
	PageSize int
	Search   string
	AgentID  string
	Status   *models.MeetingStatus
}

func (v MeetingFilter) Validate() error {
	if v.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if v.PageSize < MinPageSize || v.PageSize > MaxPageSize {
		return fmt.Errorf("page size must be between %d and %d", MinPageSize, MaxPageSize)
	}
	return nil
}

// EscapeLike neutralizes LIKE wildcards in user-supplied search input so
// the pattern only ever matches literally.
func EscapeLike(raw string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(raw)
}

func PageCount(total int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}

// filterMeetings applies the owner scope plus every optional filter.
// Both the page query and the count query go through here so the two can
// never disagree. Columns are qualified since the agent join is in play.
func filterMeetings(tx *gorm.DB, user models.Account, filter MeetingFilter) *gorm.DB {
	tx = tx.Where("meetings.account_id = ?", user.ID)
	if len(filter.Search) > 0 {
		tx = tx.Where(`LOWER(meetings.name) LIKE LOWER(?) ESCAPE '\'`, "%"+EscapeLike(filter.Search)+"%")
	}
	if len(filter.AgentID) > 0 {
		tx = tx.Where("meetings.agent_id = ?", filter.AgentID)
	}
	if filter.Status != nil {
		tx = tx.Where("meetings.status = ?", *filter.Status)
	}
	return tx
}

func ListMeeting(user models.Account, filter MeetingFilter) ([]models.Meeting, int64, error) {
	var total int64
	if err := filterMeetings(
		database.C.Model(&models.Meeting{}).InnerJoins("Agent"),
		user, filter,
	).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meetings []models.Meeting
	if err := filterMeetings(
		database.C.InnerJoins("Agent"),
		user, filter,
	).
		Order("meetings.created_at DESC, meetings.id DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&meetings).Error; err != nil {
		return nil, 0, err
	}

	for idx := range meetings {
		meetings[idx].FillDuration()
	}

	return meetings, total, nil
}

func GetMeeting(id string, user models.Account) (models.Meeting, error) {
	var meeting models.Meeting
	if err := database.C.
		InnerJoins("Agent").
		Where("meetings.id = ? AND meetings.account_id = ?", id, user.ID).
		First(&meeting).Error; err != nil {
		return meeting, err
	}

	meeting.FillDuration()
	return meeting, nil
}

var ErrAgentNotFound = fmt.Errorf("agent not found")

// NewMeeting inserts the meeting row, provisions the call resource keyed
// by the new id, then validates and registers the referenced agent.
// The agent check runs after the insert and the call creation on purpose:
// a bad reference leaves the row and the room behind, matching how the
// provisioning sequence has always behaved.
func NewMeeting(ctx context.Context, user models.Account, name, agentId string) (models.Meeting, error) {
	meeting := models.Meeting{
		Name:      name,
		Status:    models.MeetingStatusUpcoming,
		AccountID: user.ID,
		AgentID:   agentId,
	}

	if err := database.C.Create(&meeting).Error; err != nil {
		return meeting, err
	}

	if err := Call.CreateCall(ctx, video.CreateCallParams{
		ID:        meeting.ID,
		Name:      meeting.Name,
		CreatedBy: user.ID,
	}); err != nil {
		return meeting, fmt.Errorf("%w: %v", ErrCallProvider, err)
	}

	agent, err := LookupAgent(meeting.AgentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meeting, ErrAgentNotFound
		}
		return meeting, err
	}

	if err := Call.UpsertUsers(ctx, []video.User{{
		ID:     agent.ID,
		Name:   agent.Name,
		Role:   "user",
		Avatar: GeneratedAvatarURI(agent.Name, "bottts-neutral"),
	}}); err != nil {
		return meeting, fmt.Errorf("%w: %v", ErrCallProvider, err)
	}

	meeting.Agent = &agent
	return meeting, nil
}

func UpdateMeeting(id string, user models.Account, patch map[string]any) (models.Meeting, error) {
	tx := database.C.
		Model(&models.Meeting{}).
		Where("id = ? AND account_id = ?", id, user.ID).
		Updates(patch)
	if tx.Error != nil {
		return models.Meeting{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Meeting{}, gorm.ErrRecordNotFound
	}

	var meeting models.Meeting
	if err := database.C.Where("id = ?", id).First(&meeting).Error; err != nil {
		return meeting, err
	}

	meeting.FillDuration()
	return meeting, nil
}

func DeleteMeeting(id string, user models.Account) (models.Meeting, error) {
	var meeting models.Meeting
	if err := database.C.
		Where("id = ? AND account_id = ?", id, user.ID).
		First(&meeting).Error; err != nil {
		return meeting, err
	}

	if err := database.C.Delete(&meeting).Error; err != nil {
		return meeting, err
	}

	return meeting, nil
}
