package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/Deepak1230987/meetAI/pkg/internal/video"
	"github.com/spf13/viper"
)

var Call video.Provider

func SetupCallProvider() {
	Call = video.NewLiveKit()
}

var ErrCallProvider = errors.New("call provider request failed")

// GeneratedAvatarURI derives a deterministic avatar from a seed for
// identities that have no image of their own.
func GeneratedAvatarURI(seed, variant string) string {
	return fmt.Sprintf("https://api.dicebear.com/9.x/%s/svg?seed=%s", variant, url.QueryEscape(seed))
}

// EncodeCallToken registers the requester with the call provider and
// mints a join token valid for roughly an hour, with a leeway window
// absorbing clock skew between client and provider.
func EncodeCallToken(ctx context.Context, account models.Account) (string, error) {
	avatar := GeneratedAvatarURI(account.Name, "initials")
	if account.Avatar != nil && len(*account.Avatar) > 0 {
		avatar = *account.Avatar
	}

	participant := video.User{
		ID:     account.ID,
		Name:   account.Name,
		Role:   "admin",
		Avatar: avatar,
	}

	if err := Call.UpsertUsers(ctx, []video.User{participant}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCallProvider, err)
	}

	return Call.IssueToken(participant, video.TokenOptions{
		ValidFor: time.Second * time.Duration(viper.GetInt("calling.token_duration")),
		Leeway:   time.Second * time.Duration(viper.GetInt("calling.token_leeway")),
	})
}
