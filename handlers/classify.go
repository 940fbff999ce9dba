package handlers

import (
	"bytes"
	"fusion/db"
	"fusion/models"
	"fusion/storage"
	"fusion/utils"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const thumbnailWidth = 512

// Classifier labels an image. The hosted-model client (Replicate etc.)
// is wired by the deployment; the server only records results.
type Classifier interface {
	Classify(imageData []byte) (string, error)
}

// ActiveClassifier is nil when no inference backend is configured
var ActiveClassifier Classifier

// ClassifyUpload runs the configured classifier on an uploaded image and
// records the result together with a stored thumbnail.
func ClassifyUpload(c *gin.Context, user *models.User) {
	if ActiveClassifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classification not configured"})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := readFileHeader(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	thumb, err := utils.Thumbnail(data, thumbnailWidth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read this image"})
		return
	}
	result, err := ActiveClassifier.Classify(data)
	if err != nil {
		log.Printf("Classification error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "classification failed"})
		return
	}
	path := "classify/" + strconv.FormatUint(user.ID, 10) + "/" + uuid.NewString() + ".jpg"
	if _, err = storage.GetDefaultStorage().Save(path, bytes.NewReader(thumb)); err != nil {
		log.Printf("Storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	record, err := models.ImageClassificationAdd(user.ID, path, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	logActivity(user, "Executed image classification.")
	c.JSON(http.StatusOK, gin.H{"error": "", "id": record.ID, "result": result})
}

// ClassificationFetch serves the stored thumbnail of one record. Owners
// see their own; admins see everything.
func ClassificationFetch(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record := models.ImageClassification{}
	if db.Instance.First(&record, id).Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if record.UserID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	storage.GetDefaultStorage().Serve(record.ImagePath, c.Request, c.Writer)
}

type ClassificationInfo struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	ImagePath string `json:"image_path"`
	Result    string `json:"result"`
	CreatedAt int64  `json:"created"`
}

func AdminClassificationList(c *gin.Context, user *models.User) {
	entries, err := models.ImageClassificationAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	result := make([]ClassificationInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ClassificationInfo{
			ID:        entry.ID,
			Username:  entry.User.Username,
			ImagePath: entry.ImagePath,
			Result:    entry.Result,
			CreatedAt: entry.CreatedAt.Unix(),
		})
	}
	c.JSON(http.StatusOK, result)
}
