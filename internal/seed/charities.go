package seed

import (
	"context"
	"fmt"

	"impacttracker/internal/store"
	"impacttracker/internal/utils"
	"impacttracker/pkg/types"
)

// Charities is the source of truth for the charity map. IDs are fixed so
// reseeding updates rows in place.
//
// To generate new IDs: `go run ./cmd/impacttracker nanoid`
func Charities() []*types.CharityWithStories {
	return []*types.CharityWithStories{
		{
			Charity: types.Charity{
				ID:          "Qm3v8XkT1pLr6YwZ0sNc4HdJ7uBe2aFg",
				Name:        "Covent Garden Community Kitchen",
				Latitude:    51.5117,
				Longitude:   -0.1240,
				Address:     "14 Floral Street, London WC2E 9DH",
				Description: utils.StringPtr("Hot evening meals for anyone sleeping rough in the West End."),
			},
			Stories: []*types.CharityStory{
				{
					ID:      "t0Hq5RmW2yLc9VbN3kXe7PsA1zDj6GuF",
					Title:   "Four hundred meals in one winter week",
					Content: "During the January cold snap our volunteers kept the kitchen open every night and served more than four hundred hot meals.",
					Author:  utils.StringPtr("Maria, kitchen coordinator"),
					NewsURL: utils.StringPtr("https://www.london.gov.uk/programmes-strategies/housing-and-land/homelessness"),
				},
			},
		},
		{
			Charity: types.Charity{
				ID:          "Lp8sD2fK6hN1jQ4wR9tY3uZ7xC0vB5mA",
				Name:        "Waterloo Youth Project",
				Latitude:    51.5033,
				Longitude:   -0.1128,
				Address:     "22 Lower Marsh, London SE1 7RJ",
				Description: utils.StringPtr("After school clubs and mentoring for young people in Lambeth."),
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Vb4nM8qE1rT6yU3iO9pA2sD7fG5hJ0kL",
					Title:   "Jamal's first job",
					Content: "After a year in our mentoring programme Jamal started an apprenticeship with a local electrician.",
					Author:  utils.StringPtr("Jamal's mentor"),
				},
				{
					ID:      "Xc7zB3nV9mQ1wE5rT2yU8iO4pA6sD0fG",
					Title:   "Summer football league",
					Content: "Sixty young people played in our first summer league on the South Bank.",
				},
			},
		},
		{
			Charity: types.Charity{
				ID:        "Hj2kL6zX9cV3bN7mQ1wE5rT8yU4iO0pA",
				Name:      "Soho Night Shelter",
				Latitude:  51.5136,
				Longitude: -0.1365,
				Address:   "9 Greek Street, London W1D 4DQ",
			},
			Stories: []*types.CharityStory{},
		},
		{
			Charity: types.Charity{
				ID:          "Rt5yU9iO2pA6sD1fG4hJ8kL3zX7cV0bN",
				Name:        "Bermondsey Food Bank",
				Latitude:    51.4980,
				Longitude:   -0.0810,
				Address:     "61 Tower Bridge Road, London SE1 4TL",
				Description: utils.StringPtr("Emergency food parcels for families referred by local schools and GPs."),
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Mn1bV5cX9zL3kJ7hG2fD6sA0pO4iU8yT",
					Title:   "A full pantry for half term",
					Content: "Donations from local shops meant every referred family received a week of groceries over half term.",
					Author:  utils.StringPtr("Food bank volunteers"),
					NewsURL: utils.StringPtr("https://www.trusselltrust.org/"),
				},
			},
		},
		{
			Charity: types.Charity{
				ID:          "Ws6eD0rF4tG8yH2uJ5iK9oL3pZ7xC1vB",
				Name:        "Camden Elders Network",
				Latitude:    51.5390,
				Longitude:   -0.1426,
				Address:     "3 Pratt Street, London NW1 0AE",
				Description: utils.StringPtr("Befriending calls and lunch clubs for older residents living alone."),
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Eq9wR3tY7uI1oP5aS8dF2gH6jK0lZ4xC",
					Title:   "Tuesday lunch club turns ten",
					Content: "Our lunch club celebrated ten years with a party for over eighty members.",
				},
			},
		},
		{
			Charity: types.Charity{
				ID:          "Ko3lP7zA1sX5dC9fV2gB6hN0jM4kQ8wE",
				Name:        "Hackney Literacy Trust",
				Latitude:    51.5450,
				Longitude:   -0.0553,
				Address:     "118 Mare Street, London E8 3SG",
				Description: utils.StringPtr("Reading volunteers in primary schools across Hackney."),
			},
			Stories: []*types.CharityStory{},
		},
		{
			Charity: types.Charity{
				ID:          "Fd8gH2jK6lZ0xC4vB7nM1qW5eR9tY3uI",
				Name:        "Brixton Refugee Welcome",
				Latitude:    51.4613,
				Longitude:   -0.1156,
				Address:     "40 Coldharbour Lane, London SW9 8PR",
				Description: utils.StringPtr("English classes and legal advice drop-ins for newly arrived families."),
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Ay2sD6fG0hJ4kL8zX3cV7bN1mQ5wE9rT",
					Title:   "Settled status secured",
					Content: "Our advice clinic helped forty families complete their applications this spring.",
					Author:  utils.StringPtr("Advice clinic team"),
				},
			},
		},
		{
			Charity: types.Charity{
				ID:        "Uz5xC9vB3nM7qW1eR4tY8uI2oP6aS0dF",
				Name:      "Greenwich Riverside Gardens",
				Latitude:  51.4826,
				Longitude: -0.0077,
				Address:   "Park Row, London SE10 9NF",
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Gh7jK1lZ5xC9vB3nM6qW0eR4tY8uI2oP",
					Title:   "A new community orchard",
					Content: "Volunteers planted thirty fruit trees along the river path.",
				},
			},
		},
		{
			Charity: types.Charity{
				ID:          "Ni4oP8aS2dF6gH0jK3lZ7xC1vB5nM9qW",
				Name:        "Ealing Carers Centre",
				Latitude:    51.5130,
				Longitude:   -0.3089,
				Address:     "2 The Broadway, London W5 2NR",
				Description: utils.StringPtr("Respite breaks and peer support for unpaid carers."),
			},
			Stories: []*types.CharityStory{},
		},
		{
			Charity: types.Charity{
				ID:        "Sx1cV5bN9mQ3wE7rT0yU4iO8pA2sD6fG",
				Name:      "Croydon Family Hub",
				Latitude:  51.3762,
				Longitude: -0.0982,
				Address:   "Katharine Street, Croydon CR0 1NX",
			},
			Stories: []*types.CharityStory{
				{
					ID:      "Jk8lZ2xC6vB0nM4qW7eR1tY5uI9oP3aS",
					Title:   "Baby bank opens",
					Content: "Our new baby bank has already equipped more than one hundred families with prams, cots and clothes.",
					Author:  utils.StringPtr("Hub manager"),
				},
			},
		},
	}
}

// SeedCharities syncs the database with Charities():
// - Inserts charities and stories that don't exist
// - Updates existing rows that have changed
// - Deletes charities and stories that aren't in the list
func SeedCharities(ctx context.Context, charityRepo *store.CharityRepository, storyRepo *store.StoryRepository) error {
	charities := Charities()

	fmt.Println("Starting charity sync...")
	fmt.Printf("  Seed file contains %d charities\n", len(charities))

	seedIDs := make(map[string]bool)
	for _, c := range charities {
		seedIDs[c.ID] = true
	}

	existing, err := charityRepo.AllCharities(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing charities: %w", err)
	}
	fmt.Printf("  Database contains %d charities\n", len(existing))

	// Stories cascade with their charity.
	deletedCount := 0
	for _, existingCharity := range existing {
		if !seedIDs[existingCharity.ID] {
			fmt.Printf("  Deleting charity: %s (id: %s)\n", existingCharity.Name, existingCharity.ID)
			if err := charityRepo.DeleteCharity(ctx, existingCharity.ID); err != nil {
				return fmt.Errorf("failed to delete charity %s: %w", existingCharity.ID, err)
			}
			deletedCount++
		}
	}

	storyIDs := make([]string, 0)
	upsertedCount := 0
	for _, c := range charities {
		fmt.Printf("  Upserting charity: %s\n", c.Name)
		if err := charityRepo.UpsertCharity(ctx, &c.Charity); err != nil {
			return fmt.Errorf("failed to upsert charity %s: %w", c.ID, err)
		}
		upsertedCount++

		for _, story := range c.Stories {
			story.CharityID = c.ID
			if err := storyRepo.UpsertStory(ctx, story); err != nil {
				return fmt.Errorf("failed to upsert story %s: %w", story.ID, err)
			}
			storyIDs = append(storyIDs, story.ID)
		}
	}

	removedStories, err := storyRepo.DeleteStoriesExcept(ctx, storyIDs)
	if err != nil {
		return err
	}

	fmt.Printf("\nSync complete: %d upserted, %d deleted, %d stale stories removed\n", upsertedCount, deletedCount, removedStories)
	return nil
}
