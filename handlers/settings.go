package handlers

import (
	"fusion/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SettingsResponse struct {
	Error          string `json:"error"`
	NotifyTTS      bool   `json:"notify_tts"`
	NotifyClassify bool   `json:"notify_classification"`
	NotifyFeedback bool   `json:"notify_feedback"`
}

func SettingsGet(c *gin.Context, user *models.User) {
	setting, err := models.UserSettingFor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{
		NotifyTTS:      setting.NotifyTTS,
		NotifyClassify: setting.NotifyClassify,
		NotifyFeedback: setting.NotifyFeedback,
	})
}

type SettingsSaveRequest struct {
	NotifyTTS      *bool `json:"notify_tts" binding:"required"`
	NotifyClassify *bool `json:"notify_classification" binding:"required"`
	NotifyFeedback *bool `json:"notify_feedback" binding:"required"`
}

func SettingsSave(c *gin.Context, user *models.User) {
	postReq := SettingsSaveRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := models.UserSettingUpdate(user.ID, *postReq.NotifyTTS, *postReq.NotifyClassify, *postReq.NotifyFeedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	logActivity(user, "Updated notification settings.")
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
