package tui

import (
	"fmt"

	"topicboard/internal/model"
)

type categoryItem struct {
	category model.Category
}

func (i categoryItem) FilterValue() string { return i.category.Name }
func (i categoryItem) Title() string {
	n := len(i.category.Topics)
	if n == 1 {
		return fmt.Sprintf("%s  (1 topic)", i.category.Name)
	}
	return fmt.Sprintf("%s  (%d topics)", i.category.Name, n)
}
func (i categoryItem) Description() string { return i.category.ID }

type topicItem struct {
	topic model.Topic
}

func (i topicItem) FilterValue() string { return i.topic.Name }
func (i topicItem) Title() string       { return i.topic.Name }
func (i topicItem) Description() string { return i.topic.ID }
