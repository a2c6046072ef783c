package services

import (
	"context"
	"fmt"

	localCache "github.com/Deepak1230987/meetAI/pkg/internal/cache"
	"github.com/Deepak1230987/meetAI/pkg/internal/database"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
)

func GetAgentCacheKey(id string) string {
	return fmt.Sprintf("agent#%s", id)
}

func CacheAgent(agent models.Agent) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Set(
		contx,
		GetAgentCacheKey(agent.ID),
		agent,
		store.WithTags([]string{"agent", fmt.Sprintf("account#%s", agent.AccountID)}),
	)
}

// LookupAgent resolves an agent by id alone, without ownership scoping.
// Meeting creation uses it to validate the referenced agent.
func LookupAgent(id string) (models.Agent, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	if val, err := marshal.Get(contx, GetAgentCacheKey(id), new(models.Agent)); err == nil {
		return *(val.(*models.Agent)), nil
	}

	var agent models.Agent
	if err := database.C.Where("id = ?", id).First(&agent).Error; err != nil {
		return agent, err
	}
	CacheAgent(agent)

	return agent, nil
}

func GetAgent(id string, user models.Account) (models.Agent, error) {
	var agent models.Agent
	if err := database.C.
		Where("id = ? AND account_id = ?", id, user.ID).
		First(&agent).Error; err != nil {
		return agent, err
	}

	return agent, nil
}

func ListAgent(user models.Account) ([]models.Agent, error) {
	var agents []models.Agent
	if err := database.C.
		Where("account_id = ?", user.ID).
		Order("created_at DESC").
		Find(&agents).Error; err != nil {
		return agents, err
	}

	return agents, nil
}

func NewAgent(user models.Account, name, instructions string) (models.Agent, error) {
	agent := models.Agent{
		Name:         name,
		Instructions: instructions,
		AccountID:    user.ID,
	}

	if err := database.C.Create(&agent).Error; err != nil {
		return agent, err
	}
	CacheAgent(agent)

	return agent, nil
}
