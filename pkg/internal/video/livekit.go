package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deepak1230987/meetAI/pkg/internal/database"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roomMetadata struct {
	MeetingID   string         `json:"meeting_id"`
	MeetingName string         `json:"meeting_name"`
	CreatedBy   string         `json:"created_by"`
	Settings    map[string]any `json:"settings"`
}

type LiveKitProvider struct {
	client *lksdk.RoomServiceClient
}

func NewLiveKit() *LiveKitProvider {
	host := "https://" + viper.GetString("calling.endpoint")

	return &LiveKitProvider{
		client: lksdk.NewRoomServiceClient(
			host,
			viper.GetString("calling.api_key"),
			viper.GetString("calling.api_secret"),
		),
	}
}

func (v *LiveKitProvider) CreateCall(ctx context.Context, params CreateCallParams) error {
	metadata, _ := jsoniter.Marshal(roomMetadata{
		MeetingID:   params.ID,
		MeetingName: params.Name,
		CreatedBy:   params.CreatedBy,
		Settings: map[string]any{
			"transcription": viper.GetStringMap("calling.transcription"),
			"recording":     viper.GetStringMap("calling.recording"),
		},
	})

	_, err := v.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            params.ID,
		EmptyTimeout:    viper.GetUint32("calling.empty_timeout_duration"),
		MaxParticipants: viper.GetUint32("calling.max_participants"),
		Metadata:        string(metadata),
	})
	if err != nil {
		return fmt.Errorf("remote livekit error: %v", err)
	}

	return nil
}

// UpsertUsers registers participant identities. LiveKit keeps no user
// directory, so identities are stored locally and consulted when join
// tokens are minted.
func (v *LiveKitProvider) UpsertUsers(ctx context.Context, users []User) error {
	if len(users) == 0 {
		return nil
	}

	identities := lo.Map(users, func(item User, idx int) models.CallIdentity {
		return models.CallIdentity{
			ID:     item.ID,
			Name:   item.Name,
			Role:   item.Role,
			Avatar: item.Avatar,
		}
	})

	return database.C.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&identities).Error
}

func (v *LiveKitProvider) IssueToken(user User, opts TokenOptions) (string, error) {
	var identity models.CallIdentity
	if err := database.C.Where("id = ?", user.ID).First(&identity).Error; err == nil {
		user.Name = identity.Name
		user.Role = identity.Role
		user.Avatar = identity.Avatar
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	grant := &auth.VideoGrant{
		RoomJoin: true,
	}

	metadata, _ := jsoniter.Marshal(user)

	tk := auth.NewAccessToken(viper.GetString("calling.api_key"), viper.GetString("calling.api_secret"))
	tk.AddGrant(grant).
		SetIdentity(user.ID).
		SetName(user.Name).
		SetMetadata(string(metadata)).
		SetValidFor(opts.ValidFor + opts.Leeway)

	return tk.ToJWT()
}
