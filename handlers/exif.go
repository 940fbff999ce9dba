package handlers

import (
	"fusion/exif"
	"fusion/models"
	"fusion/utils"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Images fetched from a URL are read at most this far
const maxURLImageSize = 50 << 20

// ExifUpload extracts metadata from one or more uploaded images. A file
// that cannot be decoded is reported back but does not abort its siblings.
func ExifUpload(c *gin.Context, user *models.User) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}
	state := stateFor(user.ID)
	failed := []string{}
	extracted := 0
	for _, fh := range files {
		data, err := readFileHeader(fh)
		if err != nil {
			failed = append(failed, fh.Filename)
			continue
		}
		tags, err := exif.Extract(data)
		if err != nil {
			failed = append(failed, fh.Filename)
			continue
		}
		state.addUpload(exif.NewTable(tags))
		extracted++
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "extracted": extracted, "failed": failed})
}

type ExifURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// ExifURL fetches an image by URL and extracts its metadata. The server
// checks the reported Content-Type before downloading the body.
func ExifURL(c *gin.Context, user *models.User) {
	req := ExifURLRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	head, err := http.Head(req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not reach URL"})
		return
	}
	head.Body.Close()
	if !strings.HasPrefix(head.Header.Get("Content-Type"), "image") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL does not point to an image"})
		return
	}
	resp, err := http.Get(req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch URL"})
		return
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxURLImageSize))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch URL"})
		return
	}
	tags, err := exif.Extract(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read this image"})
		return
	}
	stateFor(user.ID).setURL(exif.NewTable(tags))
	c.JSON(http.StatusOK, gin.H{"error": "", "tags": len(tags)})
}

// ExifTable returns the combined metadata table, uploads before URL image
func ExifTable(c *gin.Context, user *models.User) {
	c.JSON(http.StatusOK, stateFor(user.ID).merged())
}

// ExifStats recomputes the summary statistics from the current table
func ExifStats(c *gin.Context, user *models.User) {
	merged := stateFor(user.ID).merged()
	if merged.Empty() {
		c.JSON(http.StatusOK, gin.H{"error": "", "empty": true})
		return
	}
	c.JSON(http.StatusOK, exif.Summarize(merged))
}

func ExifClear(c *gin.Context, user *models.User) {
	clearStateFor(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

// ExifStrip re-encodes an uploaded image without any metadata segments
// and returns it for download.
func ExifStrip(c *gin.Context, user *models.User) {
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
	stripped, err := utils.StripMetadata(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read this image"})
		return
	}
	logActivity(user, "Downloaded image without EXIF data.")
	c.Header("Content-Disposition", `attachment; filename="image_no_exif.jpg"`)
	c.Data(http.StatusOK, "image/jpeg", stripped)
}

// ExifHistogram returns 256-bin HSV channel histograms of an uploaded image
func ExifHistogram(c *gin.Context, user *models.User) {
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
	img, err := utils.DecodeImage(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read this image"})
		return
	}
	c.JSON(http.StatusOK, utils.HistogramHSV(img))
}
