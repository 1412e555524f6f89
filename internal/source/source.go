// Package source loads the items shown in the list. Files are only read;
// removals made in the UI are never written back.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/davidzwa/swipelist/internal/validate"
)

// Item is one entry of the list.
type Item struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// SameItem reports whether a and b are the same entry.
func SameItem(a, b Item) bool {
	return a.ID == b.ID
}

// Initials returns up to two upper-case initials of the title, used for avatars.
func (it Item) Initials() string {
	var b strings.Builder
	for i, word := range strings.Fields(it.Title) {
		if i == 2 {
			break
		}
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// Load reads items from a JSON (.json) or YAML file. Items without a title are
// skipped; items without an id get a random UUID.
func Load(path string) ([]Item, error) {
	logrus.Debug("Loading items from: ", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return Prepare(raw), nil
}

// Prepare drops invalid items and fills missing IDs. Duplicate IDs are replaced
// so that every item can be told apart.
func Prepare(raw []Item) []Item {
	items := make([]Item, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, it := range raw {
		if err := validate.Struct(it); err != nil {
			logrus.Warnf("Skipping item %d: %v", i, err)
			continue
		}
		if _, dup := seen[it.ID]; it.ID == "" || dup {
			it.ID = uuid.NewString()
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items
}

// Demo returns a built-in set of items.
func Demo() []Item {
	return Prepare([]Item{
		{Title: "Quarterly report", Description: "Draft due Friday, needs figures from finance", Icon: "📄"},
		{Title: "Team lunch", Description: "Thursday 12:30 at the usual place", Icon: "🍜"},
		{Title: "Renew certificate", Description: "TLS cert for the staging gateway expires soon", Icon: "🔐"},
		{Title: "Code review", Description: "Pagination fix in the listing endpoint", Icon: "🔍"},
		{Title: "Dentist", Description: "Move the appointment to next week", Icon: "🦷"},
		{Title: "Release notes", Description: "Summarize changes since the last tag", Icon: "📝"},
		{Title: "Backup drill", Description: "Restore last night's snapshot into a scratch database", Icon: "💾"},
		{Title: "Plant watering", Description: "Office ficus, twice a week", Icon: "🌿"},
	})
}
