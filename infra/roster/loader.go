// Package roster loads team time data from local JSON files and builds
// the engine's time matrices. Anything richer (scraping, team-name
// resolution) lives outside this repository; files produced by those
// tools are this loader's input.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mholweger/dualmeet/core/model"
)

// File is the on-disk roster document: athlete name to event label to
// raw time string. Event labels are exact-match; normalization happens
// upstream.
type File struct {
	Team     string                       `json:"team"`
	Athletes map[string]map[string]string `json:"athletes"`
}

// Load reads a roster file and builds its time matrix. Malformed time
// strings become the sentinel and only drop that one athlete-event cell.
func Load(path string) (string, *model.TimeMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read roster: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return f.Team, f.Matrix(), nil
}

// Matrix converts the document to a TimeMatrix. Athletes enter in sorted
// name order so the matrix's discovery order, and with it every
// tie-break downstream, is reproducible.
func (f File) Matrix() *model.TimeMatrix {
	names := make([]string, 0, len(f.Athletes))
	for name := range f.Athletes {
		names = append(names, name)
	}
	sort.Strings(names)

	m := model.NewTimeMatrix()
	for _, name := range names {
		events := f.Athletes[name]
		labels := make([]string, 0, len(events))
		for ev := range events {
			labels = append(labels, ev)
		}
		sort.Strings(labels)
		for _, ev := range labels {
			m.SetRaw(name, ev, events[ev])
		}
	}
	return m
}
