package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
)

var (
	_ list.Item = contactItem{}
	_ list.Item = celebrityItem{}
)

// contactItem wraps [models.ContactProfile] to implement [list.Item].
type contactItem struct {
	profile models.ContactProfile
}

func (i contactItem) FilterValue() string { return i.profile.Name }
func (i contactItem) Title() string {
	return fmt.Sprintf("%s %s", emotion.GlyphFor(i.profile.EmotionCode), i.profile.Name)
}
func (i contactItem) Description() string {
	if !i.profile.Known {
		return models.NotAUserText
	}
	desc := emotion.NameFor(i.profile.EmotionCode)
	if i.profile.City != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.profile.City)
	}
	return desc
}

// celebrityItem wraps [models.CelebrityMood] to implement [list.Item].
type celebrityItem struct {
	mood *models.CelebrityMood
}

func (i celebrityItem) FilterValue() string { return i.mood.Name() }
func (i celebrityItem) Title() string {
	return fmt.Sprintf("%s %s", emotion.GlyphFor(i.mood.EmotionCode()), i.mood.Name())
}
func (i celebrityItem) Description() string {
	if i.mood.ProfileText() != "" {
		return i.mood.ProfileText()
	}
	return emotion.NameFor(i.mood.EmotionCode())
}
