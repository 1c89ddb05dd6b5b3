package database

import (
	"fmt"

	"profilekit/logger"
	"profilekit/models"
)

type profileSeeder interface {
	ListProfiles() ([]models.Profile, error)
	InsertProfile(p models.Profile) (models.Profile, error)
}

// DefaultProfiles are inserted by SeedDefaultProfiles when no profile with the
// same name exists yet.
var DefaultProfiles = []models.Profile{
	{
		Name:        "DefaultHttpProfile",
		Description: "A default profile.",
		Enabled:     true,
		Kind:        models.ProfileKindHttp,
		HttpSettings: &models.HttpSettings{
			RequestHeaders: []models.HttpHeader{
				{Name: "User-Agent", Value: "Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2228.0 Safari/537.36"},
			},
			Urls: []string{
				"/en-us/index.html",
				"/en-us/docs.html",
				"/en-us/test.html",
			},
			Cookies:              []models.HttpCookie{},
			GetResponseTemplate:  "<html><head><script>Hello World!</script></head><body><h1>Hello World!</h1><p>// Hello World! {DATA} //</p></body></html>",
			PostRequestTemplate:  "i=a19ea23062db990386a3a478cb89d52e&data={DATA}&session=75db-99b1-25fe4e9afbe58696-320bea73",
			PostResponseTemplate: "<html><head><script>Hello World!</script></head><body><h1>Hello World!</h1><p>// Hello World! {DATA} //</p></body></html>",
		},
	},
}

// SeedDefaultProfiles inserts the missing DefaultProfiles and returns how many
// were added.
func SeedDefaultProfiles(store profileSeeder) (int, error) {
	existing, err := store.ListProfiles()
	if err != nil {
		return 0, fmt.Errorf("listing profiles before seeding: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	added := 0
	for _, p := range DefaultProfiles {
		if names[p.Name] {
			continue
		}
		if _, err := store.InsertProfile(p.Clone()); err != nil {
			return added, fmt.Errorf("seeding profile '%s': %w", p.Name, err)
		}
		added++
	}
	logger.Info("Default profile seeding attempted, %d added.", added)
	return added, nil
}
