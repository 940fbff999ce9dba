package handlers

import (
	"fusion/db"
	"fusion/models"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	var err error
	db.Instance, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	models.Init()
	os.Exit(m.Run())
}

func TestLogActivitySkipsUnresolvedIdentity(t *testing.T) {
	const ghostID = 424242
	require.NotPanics(t, func() {
		logActivity(nil, "ghost entry")
		logActivity(&models.User{}, "ghost entry")
		logActivity(&models.User{ID: ghostID}, "ghost entry")
	})
	// No row may appear for an identity that could not be resolved
	var count int64
	require.NoError(t, db.Instance.Model(&models.ActivityLog{}).
		Where("user_id = ?", ghostID).Count(&count).Error)
	require.Zero(t, count)
}

func TestLogActivityRecordsForExistingUser(t *testing.T) {
	user, err := models.UserCreate("gina", "Gina", "", "pw")
	require.NoError(t, err)

	logActivity(&user, "Viewed dashboard.")

	entries, err := models.ActivityLogForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Viewed dashboard.", entries[0].Activity)
}
