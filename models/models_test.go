package models

import (
	"fusion/db"
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
	Init()
	os.Exit(m.Run())
}

func TestUserCreateAndLogin(t *testing.T) {
	user, err := UserCreate("alice", "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotNil(t, user.Settings)
	require.True(t, user.Settings.NotifyTTS)

	_, success := UserLogin("alice", "wrong")
	require.False(t, success)

	loggedIn, success := UserLogin("alice", "secret")
	require.True(t, success)
	require.Equal(t, user.ID, loggedIn.ID)
}

func TestUserCreateDuplicates(t *testing.T) {
	_, err := UserCreate("bob", "Bob", "bob@example.com", "pw")
	require.NoError(t, err)

	_, err = UserCreate("bob", "Other Bob", "", "pw")
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = UserCreate("bob2", "Bob II", "bob@example.com", "pw")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestEmailTakenByOther(t *testing.T) {
	holder, err := UserCreate("hank", "Hank", "hank@example.com", "pw")
	require.NoError(t, err)
	other, err := UserCreate("ivy", "Ivy", "ivy@example.com", "pw")
	require.NoError(t, err)

	taken, err := EmailTakenByOther("hank@example.com", other.ID)
	require.NoError(t, err)
	require.True(t, taken)

	// Keeping your own address is not a collision
	taken, err = EmailTakenByOther("hank@example.com", holder.ID)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = EmailTakenByOther("nobody@example.com", other.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestActivityLogAppendAndList(t *testing.T) {
	user, err := UserCreate("carol", "Carol", "", "pw")
	require.NoError(t, err)

	_, err = ActivityLogAdd(user.ID, "first")
	require.NoError(t, err)
	_, err = ActivityLogAdd(user.ID, "second")
	require.NoError(t, err)

	entries, err := ActivityLogForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Most recent first, insertion order breaking same-second ties
	require.Equal(t, "second", entries[0].Activity)
	require.Equal(t, "first", entries[1].Activity)
}

func TestActivityLogUnknownUser(t *testing.T) {
	_, err := ActivityLogAdd(987654, "ghost entry")
	require.ErrorIs(t, err, ErrUserNotFound)

	entries, err := ActivityLogForUser(987654)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFeedback(t *testing.T) {
	user, err := UserCreate("dave", "Dave", "", "pw")
	require.NoError(t, err)

	_, err = FeedbackAdd(user.ID, "works great")
	require.NoError(t, err)

	entries, err := FeedbackAll()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.Equal(t, "works great", entries[0].Feedback)
	require.Equal(t, "dave", entries[0].User.Username)
}

func TestUserSettings(t *testing.T) {
	user, err := UserCreate("erin", "Erin", "", "pw")
	require.NoError(t, err)

	setting, err := UserSettingFor(user.ID)
	require.NoError(t, err)
	require.True(t, setting.NotifyTTS)
	require.True(t, setting.NotifyClassify)
	require.True(t, setting.NotifyFeedback)

	updated, err := UserSettingUpdate(user.ID, false, true, false)
	require.NoError(t, err)
	require.False(t, updated.NotifyTTS)

	reloaded, err := UserSettingFor(user.ID)
	require.NoError(t, err)
	require.False(t, reloaded.NotifyTTS)
	require.True(t, reloaded.NotifyClassify)
	require.False(t, reloaded.NotifyFeedback)
}

func TestImageClassificationRecords(t *testing.T) {
	user, err := UserCreate("frank", "Frank", "", "pw")
	require.NoError(t, err)

	_, err = ImageClassificationAdd(user.ID, "classify/1/abc.jpg", "golden retriever")
	require.NoError(t, err)

	entries, err := ImageClassificationAll()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.Equal(t, "golden retriever", entries[0].Result)
	require.Equal(t, "frank", entries[0].User.Username)
}
