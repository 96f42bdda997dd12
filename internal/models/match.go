package models

// Match is a single entry on the matches page.
type Match struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	House       string `json:"house"`
}

// PlaceholderMatches returns the built-in sample matches shown until real
// match data exists.
func PlaceholderMatches() []Match {
	return []Match{
		{Name: "Match 1", Description: "Description for Match 1", House: "House A"},
		{Name: "Match 2", Description: "Description for Match 2", House: "House B"},
		{Name: "Match 3", Description: "Description for Match 3", House: "House C"},
	}
}
