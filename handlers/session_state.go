package handlers

import (
	"fusion/exif"
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// metadataState keeps one user's extraction results between requests:
// one table per uploaded file plus one for a URL-fetched image. It is the
// explicit replacement for the reference UI's global session dict.
type metadataState struct {
	mutex   sync.Mutex
	uploads []exif.Table
	url     *exif.Table
}

var metadataStore = cmap.New[*metadataState]()

func stateFor(userID uint64) *metadataState {
	key := strconv.FormatUint(userID, 10)
	if state, ok := metadataStore.Get(key); ok {
		return state
	}
	metadataStore.SetIfAbsent(key, &metadataState{})
	state, _ := metadataStore.Get(key)
	return state
}

func clearStateFor(userID uint64) {
	metadataStore.Remove(strconv.FormatUint(userID, 10))
}

func (ms *metadataState) addUpload(t exif.Table) {
	ms.mutex.Lock()
	ms.uploads = append(ms.uploads, t)
	ms.mutex.Unlock()
}

func (ms *metadataState) setURL(t exif.Table) {
	ms.mutex.Lock()
	ms.url = &t
	ms.mutex.Unlock()
}

// merged combines all current tables, uploads first, then the URL image
func (ms *metadataState) merged() exif.Table {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	tables := make([]exif.Table, 0, len(ms.uploads)+1)
	tables = append(tables, ms.uploads...)
	if ms.url != nil {
		tables = append(tables, *ms.url)
	}
	return exif.Merge(tables...)
}
