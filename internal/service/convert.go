package service

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/model"

	"github.com/jinzhu/copier"
)

// toResourceCard 模型转列表卡片，标签压平成名字数组
func toResourceCard(resource *model.Resource) (*dto.ResourceCard, error) {
	card := &dto.ResourceCard{}
	if err := copier.Copy(card, resource); err != nil {
		return nil, err
	}

	card.Creator = dto.CreatorInfo{
		ID:        resource.Creator.ID,
		Username:  resource.Creator.Username,
		AvatarURL: resource.Creator.AvatarURL,
		Verified:  resource.Creator.Verified,
	}

	card.Tags = make([]string, 0, len(resource.Tags))
	for _, tag := range resource.Tags {
		card.Tags = append(card.Tags, tag.Name)
	}
	return card, nil
}

func toResourceCards(resources []*model.Resource) ([]*dto.ResourceCard, error) {
	cards := make([]*dto.ResourceCard, 0, len(resources))
	for _, resource := range resources {
		card, err := toResourceCard(resource)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
