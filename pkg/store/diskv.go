// Package store persists the task collection and theme preference on
// disk.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/planner/pkg/task"
)

const (
	taskPrefix = "tasks/"
	themeKey   = "theme"
)

// Persistence is the storage contract for the task collection. Load never
// fails hard: unreadable records are logged and skipped so the planner
// always boots, worst case with an empty collection. Persisted statuses
// are stale by definition and must be re-derived by the caller.
type Persistence interface {
	Load(ctx context.Context) []task.Task
	Save(tasks []task.Task) error
	LoadTheme() bool
	SaveTheme(dark bool) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	last := len(parts) - 1
	return &diskv.PathKey{
		Path:     parts[:last],
		FileName: parts[last] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}

func (p *persistence) Load(ctx context.Context) []task.Task {
	all := make([]task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, taskPrefix) {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		t := task.Task{}
		if err := json.Unmarshal(val, &t); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if t.ID == "" {
			t.ID = strings.TrimPrefix(key, taskPrefix)
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

// Save writes the full post-mutation collection: every task is written
// under its id and records for deleted tasks are erased.
func (p *persistence) Save(tasks []task.Task) error {
	keep := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		keep[taskPrefix+t.ID] = true
	}

	for key := range p.d.Keys(nil) {
		if !strings.HasPrefix(key, taskPrefix) || keep[key] {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}

	for _, t := range tasks {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("store: marshal %s: %w", t.ID, err)
		}
		if err := p.d.Write(taskPrefix+t.ID, data); err != nil {
			return fmt.Errorf("store: write %s: %w", t.ID, err)
		}
	}
	return nil
}

// LoadTheme reports whether dark mode was saved. Missing or unreadable
// preference means light mode.
func (p *persistence) LoadTheme() bool {
	val, err := p.d.Read(themeKey)
	if err != nil {
		return false
	}
	return string(val) == "dark"
}

func (p *persistence) SaveTheme(dark bool) error {
	mode := "light"
	if dark {
		mode = "dark"
	}
	if err := p.d.Write(themeKey, []byte(mode)); err != nil {
		return fmt.Errorf("store: write theme: %w", err)
	}
	return nil
}

// sortTasks keeps load order stable across runs: oldest created first,
// ties broken by id.
func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ti, tj := tasks[i], tasks[j]
		if !ti.CreatedAt.Equal(tj.CreatedAt.Time) {
			return ti.CreatedAt.Before(tj.CreatedAt.Time)
		}
		return ti.ID < tj.ID
	})
}
