package repos

import (
	"encoding/json"

	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// getJSON decodes the document at key into dst. A missing key, a read
// failure, or malformed JSON all report false and leave dst untouched;
// callers must treat those the same as "not present".
func getJSON(st store.Store, key string, dst any) bool {
	raw, err := st.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func putJSON(st store.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return st.Set(key, raw)
}
