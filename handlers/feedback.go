package handlers

import (
	"fusion/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type FeedbackRequest struct {
	Feedback string `form:"feedback" binding:"required"`
}

func FeedbackSubmit(c *gin.Context, user *models.User) {
	postReq := FeedbackRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := models.FeedbackAdd(user.ID, postReq.Feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	logActivity(user, "Feedback submitted.")
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

type FeedbackInfo struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Feedback  string `json:"feedback"`
	CreatedAt int64  `json:"created"`
}

// AdminFeedbackList returns all feedback, newest first
func AdminFeedbackList(c *gin.Context, user *models.User) {
	entries, err := models.FeedbackAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	result := make([]FeedbackInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, FeedbackInfo{
			ID:        entry.ID,
			Username:  entry.User.Username,
			Name:      entry.User.Name,
			Feedback:  entry.Feedback,
			CreatedAt: entry.CreatedAt.Unix(),
		})
	}
	c.JSON(http.StatusOK, result)
}
