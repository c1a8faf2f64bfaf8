package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// JSONStore keeps every result in a local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     jsonData
}

type jsonData struct {
	Results []Result `json:"results"`
}

// NewJSONStore loads filePath, creating it when missing.
func NewJSONStore(filePath string) (*JSONStore, error) {
	js := &JSONStore{filePath: filePath, data: jsonData{Results: []Result{}}}

	raw, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &js.data); err != nil {
			return nil, fmt.Errorf("scores: load %s: %w", filePath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := js.save(); err != nil {
			return nil, fmt.Errorf("scores: create %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("scores: read %s: %w", filePath, err)
	}
	return js, nil
}

// save writes the current data; callers hold the write lock or own js.
func (js *JSONStore) save() error {
	raw, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(js.filePath, raw, 0o644)
}

func (js *JSONStore) Record(_ context.Context, r Result) error {
	if err := validate(r); err != nil {
		return err
	}
	js.mutex.Lock()
	defer js.mutex.Unlock()
	js.data.Results = append(js.data.Results, r)
	if err := js.save(); err != nil {
		js.data.Results = js.data.Results[:len(js.data.Results)-1]
		return fmt.Errorf("scores: save %s: %w", js.filePath, err)
	}
	return nil
}

func (js *JSONStore) Totals(context.Context) (Totals, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	var t Totals
	for _, r := range js.data.Results {
		t.add(r.Winner)
	}
	return t, nil
}

func (js *JSONStore) Recent(_ context.Context, n int) ([]Result, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	if n <= 0 {
		return nil, nil
	}
	all := js.data.Results
	if n > len(all) {
		n = len(all)
	}
	out := make([]Result, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// Close is a no-op; every Record is already on disk.
func (js *JSONStore) Close() error { return nil }
