// Package featureflags evaluates the FEATURE_FLAGS configuration string.
package featureflags

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Known flags.
const (
	// ServerTimestamps makes the server the only source of CreationDate.
	ServerTimestamps = "server_timestamps"
	// PostsCache serves the posts list from redis.
	PostsCache = "posts_cache"
)

// rule is a parsed flag value: on for everyone, off, or on for percent of subjects.
type rule struct {
	raw     string
	percent int
}

func parseRule(raw string) rule {
	switch raw {
	case "on", "true", "1":
		return rule{raw: raw, percent: 100}
	case "off", "false", "0":
		return rule{raw: raw}
	}
	pct, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
	if !strings.HasSuffix(raw, "%") || err != nil {
		return rule{raw: raw}
	}
	return rule{raw: raw, percent: min(max(pct, 0), 100)}
}

// Manager evaluates feature flags defined in a simple key=value list, e.g.
// "server_timestamps=on,posts_cache=50%". Values are on/true/1, off/false/0
// or N%; anything else is off.
type Manager struct {
	rules map[string]rule
}

// NewManager parses raw. Malformed pairs are skipped.
func NewManager(raw string) *Manager {
	m := &Manager{rules: make(map[string]rule)}
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key, value = normalize(key), normalize(value)
		if !ok || key == "" || value == "" {
			continue
		}
		m.rules[key] = parseRule(value)
	}
	return m
}

// Enabled reports whether name is on for subject (an instance name, a client id).
// Partial rollouts are deterministic per subject and need a non-empty one.
func (m *Manager) Enabled(name, subject string) bool {
	if m == nil {
		return false
	}
	r, ok := m.rules[normalize(name)]
	switch {
	case !ok || r.percent == 0:
		return false
	case r.percent == 100:
		return true
	case subject == "":
		return false
	}
	return bucket(name, subject) < r.percent
}

// Raw returns the configured value of every flag.
func (m *Manager) Raw() map[string]string {
	out := map[string]string{}
	if m == nil {
		return out
	}
	for name, r := range m.rules {
		out[name] = r.raw
	}
	return out
}

// Snapshot evaluates every configured flag for subject.
func (m *Manager) Snapshot(subject string) map[string]bool {
	out := map[string]bool{}
	if m == nil {
		return out
	}
	for name := range m.rules {
		out[name] = m.Enabled(name, subject)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(name, subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(normalize(name) + ":" + subject))
	return int(h.Sum32() % 100)
}
