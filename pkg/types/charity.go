package types

import (
	"errors"
	"time"
)

var ErrCharityNotFound = errors.New("charity not found")

type Charity struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Latitude    float64   `db:"latitude" json:"latitude"`
	Longitude   float64   `db:"longitude" json:"longitude"`
	Address     string    `db:"address" json:"address"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CharityStory struct {
	ID        string    `db:"id" json:"id"`
	CharityID string    `db:"charity_id" json:"charity_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Author    *string   `db:"author" json:"author"`
	NewsURL   *string   `db:"news_url" json:"news_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CharityWithStories is a charity joined with the stories told about it.
type CharityWithStories struct {
	Charity
	Stories []*CharityStory `db:"-" json:"stories"`
}

// LeadStory returns the story shown in the charity popup, or nil.
func (c *CharityWithStories) LeadStory() *CharityStory {
	if len(c.Stories) == 0 {
		return nil
	}
	return c.Stories[0]
}
