package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStorageRoundTrip(t *testing.T) {
	bucket := Bucket{Name: "test", StorageType: StorageTypeFile, Path: t.TempDir()}
	disk := NewDiskStorage(&bucket)

	written, err := disk.Save("user/1/photo.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)
	require.EqualValues(t, len("image bytes"), written)

	out := &bytes.Buffer{}
	read, err := disk.Load("user/1/photo.jpg", out)
	require.NoError(t, err)
	require.EqualValues(t, written, read)
	require.Equal(t, "image bytes", out.String())

	require.NoError(t, disk.Delete("user/1/photo.jpg"))
	_, err = disk.Load("user/1/photo.jpg", out)
	require.Error(t, err)
}
