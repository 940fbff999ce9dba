package handlers

import (
	"fusion/exif"
	"fusion/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard bundles everything the landing view renders: the profile,
// notification settings, recent activity and the current metadata summary.
func Dashboard(c *gin.Context, user *models.User) {
	setting, err := models.UserSettingFor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	entries, err := models.ActivityLogForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	activities := make([]ActivityInfo, 0, len(entries))
	for _, entry := range entries {
		activities = append(activities, ActivityInfo{
			Activity:  entry.Activity,
			CreatedAt: entry.CreatedAt.Unix(),
		})
	}
	merged := stateFor(user.ID).merged()
	var summary *exif.Summary
	if !merged.Empty() {
		s := exif.Summarize(merged)
		summary = &s
	}
	logActivity(user, "Viewed dashboard.")
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"username": user.Username,
		"name":     user.Name,
		"settings": SettingsResponse{
			NotifyTTS:      setting.NotifyTTS,
			NotifyClassify: setting.NotifyClassify,
			NotifyFeedback: setting.NotifyFeedback,
		},
		"activities": activities,
		"metadata":   merged,
		"summary":    summary,
	})
}
