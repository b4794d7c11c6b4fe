package store

import (
	"strings"

	"topicboard/internal/model"
)

// RejectReason says why a mutation did not apply. Rejections are not
// errors: the collection is simply left untouched.
type RejectReason string

const (
	RejectEmptyName RejectReason = "empty-name"
	RejectUnknownID RejectReason = "unknown-id"
)

// OpResult reports what a mutation did. Changed=false with a non-empty
// Reject means the input was refused; callers that don't care (the TUI)
// can ignore it, callers that do (scripts, tests) can tell the cases apart.
type OpResult struct {
	Changed bool         `json:"changed"`
	Reject  RejectReason `json:"reject,omitempty"`
	Topic   *model.Topic `json:"topic,omitempty"`
}

// Collection owns the ordered topic list for one category.
//
// Every mutation replaces the whole slice with a freshly built one;
// existing slices handed out by Topics/Filter are never written through.
type Collection struct {
	ids    IDSource
	topics []model.Topic
}

// NewCollection seeds a collection. The seed slice is copied.
func NewCollection(ids IDSource, seed []model.Topic) *Collection {
	c := &Collection{ids: ids}
	c.topics = append([]model.Topic(nil), seed...)
	return c
}

// Topics returns the current list, newest first. The returned slice is
// a copy; mutating it does not touch the collection.
func (c *Collection) Topics() []model.Topic {
	return append([]model.Topic(nil), c.topics...)
}

// Len reports the number of topics.
func (c *Collection) Len() int { return len(c.topics) }

// Find returns the topic with the given id.
func (c *Collection) Find(id string) (model.Topic, bool) {
	for _, t := range c.topics {
		if t.ID == id {
			return t, true
		}
	}
	return model.Topic{}, false
}

// Create trims rawName and, if anything is left, prepends a new topic
// with a fresh id. Whitespace-only input is rejected.
func (c *Collection) Create(rawName string) OpResult {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return OpResult{Reject: RejectEmptyName}
	}
	t := model.Topic{ID: c.ids.Next(), Name: name}
	next := make([]model.Topic, 0, len(c.topics)+1)
	next = append(next, t)
	next = append(next, c.topics...)
	c.topics = next
	return OpResult{Changed: true, Topic: &t}
}

// Delete removes the topic with the given id, preserving the relative
// order of the rest. Unknown ids are rejected.
func (c *Collection) Delete(id string) OpResult {
	found := false
	next := make([]model.Topic, 0, len(c.topics))
	for _, t := range c.topics {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return OpResult{Reject: RejectUnknownID}
	}
	c.topics = next
	return OpResult{Changed: true}
}

// Rename replaces the named topic's value, keeping its id and position.
// The new name is trimmed and must be non-empty (same policy as Create).
func (c *Collection) Rename(id, newName string) OpResult {
	name := strings.TrimSpace(newName)
	if name == "" {
		return OpResult{Reject: RejectEmptyName}
	}
	var renamed *model.Topic
	next := make([]model.Topic, 0, len(c.topics))
	for _, t := range c.topics {
		if t.ID == id {
			t = model.Topic{ID: id, Name: name}
			renamed = &t
		}
		next = append(next, t)
	}
	if renamed == nil {
		return OpResult{Reject: RejectUnknownID}
	}
	c.topics = next
	return OpResult{Changed: true, Topic: renamed}
}

// Filter returns the topics whose name contains query, compared
// case-insensitively, in their current relative order. An empty query
// returns everything. Pure: computed fresh on every call, never cached.
func (c *Collection) Filter(query string) []model.Topic {
	q := strings.ToLower(query)
	out := make([]model.Topic, 0, len(c.topics))
	for _, t := range c.topics {
		if q == "" || strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}
