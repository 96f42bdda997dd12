package handlers

import (
	"github.com/gofiber/fiber/v3"

	"matchmaker/internal/config"
	"matchmaker/internal/models"
)

// PageHandler renders the landing and matches pages.
type PageHandler struct {
	cfg     *config.Config
	matches []models.Match
}

// NewPageHandler creates a new page handler. Matches come from the YAML
// config when it lists any, otherwise the built-in placeholders are used.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg, matches: matchesFromConfig(cfg)}
}

func matchesFromConfig(cfg *config.Config) []models.Match {
	configured := cfg.YAML.GetMatches()
	if len(configured) == 0 {
		return models.PlaceholderMatches()
	}

	matches := make([]models.Match, 0, len(configured))
	for _, m := range configured {
		matches = append(matches, models.Match{
			Name:        m.Name,
			Description: m.Description,
			House:       m.House,
		})
	}
	return matches
}

// Index renders the landing page with the email form.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Welcome",
	}, h.cfg))
}

// Matches renders the matches page for the email in the query string.
func (h *PageHandler) Matches(c fiber.Ctx) error {
	return c.Render("matches", MergeBranding(fiber.Map{
		"Title":   "Your Matches",
		"Email":   c.Query("email"),
		"Matches": h.matches,
	}, h.cfg))
}
