package handlers

import (
	"fusion/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ActivityInfo struct {
	Activity  string `json:"activity"`
	CreatedAt int64  `json:"created"`
}

// ActivityList returns the caller's audit trail, most recent first
func ActivityList(c *gin.Context, user *models.User) {
	entries, err := models.ActivityLogForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	result := make([]ActivityInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ActivityInfo{
			Activity:  entry.Activity,
			CreatedAt: entry.CreatedAt.Unix(),
		})
	}
	c.JSON(http.StatusOK, result)
}
