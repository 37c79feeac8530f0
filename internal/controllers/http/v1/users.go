package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-insights/internal/models"
)

// SearchLocations godoc
// @Summary Search locations
// @Description Resolves a place name to coordinates. A "lat, lon" query is returned as-is.
// @Tags Locations
// @Produce json
// @Param q query string true "Place name or coordinates" example(Lisbon)
// @Success 200 {array} models.GeoLocation
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/locations [get]
func (r *routes) handleLocations(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return r.fail(c, badRequest("Missing required parameter: q"))
	}

	locations, err := r.service.SearchLocations(c.Context(), query)
	if err != nil {
		return r.fail(c, err)
	}
	if locations == nil {
		locations = []models.GeoLocation{}
	}

	return c.JSON(locations)
}

// ListFavorites godoc
// @Summary List favorite locations
// @Tags Users
// @Produce json
// @Param user path string true "User id"
// @Success 200 {array} models.Favorite
// @Router /api/v1/users/{user}/favorites [get]
func (r *routes) handleListFavorites(c *fiber.Ctx) error {
	favorites := r.service.ListFavorites(c.Params("user"))
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return c.JSON(favorites)
}

// AddFavorite godoc
// @Summary Add a favorite location
// @Tags Users
// @Accept json
// @Produce json
// @Param user path string true "User id"
// @Param favorite body models.Favorite true "Location to save"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/{user}/favorites [post]
func (r *routes) handleAddFavorite(c *fiber.Ctx) error {
	var f models.Favorite
	if err := c.BodyParser(&f); err != nil {
		return r.fail(c, badRequest("Invalid request body"))
	}
	if err := validate.Struct(f); err != nil {
		return r.fail(c, err)
	}

	saved, err := r.service.AddFavorite(c.Params("user"), f)
	if err != nil {
		return r.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// RemoveFavorite godoc
// @Summary Remove a favorite location
// @Tags Users
// @Param user path string true "User id"
// @Param id path string true "Favorite id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{user}/favorites/{id} [delete]
func (r *routes) handleRemoveFavorite(c *fiber.Ctx) error {
	if err := r.service.RemoveFavorite(c.Params("user"), c.Params("id")); err != nil {
		return r.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListHistory godoc
// @Summary Saved analyses
// @Description Returns the user's saved analyses, newest first
// @Tags Users
// @Produce json
// @Param user path string true "User id"
// @Success 200 {array} models.SavedAnalysis
// @Router /api/v1/users/{user}/history [get]
func (r *routes) handleHistory(c *fiber.Ctx) error {
	history := r.service.History(c.Params("user"))
	if history == nil {
		history = []models.SavedAnalysis{}
	}
	return c.JSON(history)
}

// DeleteHistoryEntry godoc
// @Summary Delete a saved analysis
// @Tags Users
// @Param user path string true "User id"
// @Param id path string true "Analysis id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{user}/history/{id} [delete]
func (r *routes) handleDeleteHistory(c *fiber.Ctx) error {
	if err := r.service.DeleteHistoryEntry(c.Params("user"), c.Params("id")); err != nil {
		return r.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPreferences godoc
// @Summary User preferences
// @Tags Users
// @Produce json
// @Param user path string true "User id"
// @Success 200 {object} models.Preferences
// @Router /api/v1/users/{user}/preferences [get]
func (r *routes) handleGetPreferences(c *fiber.Ctx) error {
	return c.JSON(r.service.GetPreferences(c.Params("user")))
}

// SavePreferences godoc
// @Summary Update user preferences
// @Tags Users
// @Accept json
// @Produce json
// @Param user path string true "User id"
// @Param preferences body models.Preferences true "Preferences"
// @Success 200 {object} models.Preferences
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/{user}/preferences [put]
func (r *routes) handleSavePreferences(c *fiber.Ctx) error {
	var p models.Preferences
	if err := c.BodyParser(&p); err != nil {
		return r.fail(c, badRequest("Invalid request body"))
	}
	if err := validate.Struct(p); err != nil {
		return r.fail(c, err)
	}

	saved, err := r.service.SavePreferences(c.Params("user"), p)
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(saved)
}
