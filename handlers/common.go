package handlers

import (
	"fusion/models"
	"io"
	"log"
	"mime/multipart"
)

// logActivity appends an audit entry for the user after the fact. Append
// failures are logged and swallowed - the action being described already
// happened and must not be affected. A missing user (session desync)
// skips the append silently.
func logActivity(user *models.User, activity string) {
	if user == nil || user.ID == 0 {
		return
	}
	if _, err := models.ActivityLogAdd(user.ID, activity); err != nil && err != models.ErrUserNotFound {
		log.Printf("Activity log append failed for user %d: %v", user.ID, err)
	}
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
