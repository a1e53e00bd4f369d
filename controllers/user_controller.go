package controllers

import (
	"errors"
	"net/http"

	"github.com/WangRL15/Health-Management-Web-Application/middlewares"
	"github.com/WangRL15/Health-Management-Web-Application/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type UserController struct {
	profiles *services.ProfileService
}

func NewUserController(profiles *services.ProfileService) *UserController {
	return &UserController{profiles: profiles}
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile, "notices": middlewares.Flashes(c)})
}

// UpdateProfile only touches height and weight. Missing or unparsable values
// clear the column instead of failing the request.
func (h *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	f, err := bindFields(c)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profiles.UpdateMetrics(c.Request.Context(), userID, f.LenientFloat("height"), f.LenientFloat("weight"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, err)
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Uint("user_id", userID).Msg("profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed, please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": "Profile updated successfully", "user": profile})
}
