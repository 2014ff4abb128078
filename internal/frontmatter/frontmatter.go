// Package frontmatter parses YAML frontmatter from markdown documents.
// Kit rule files, agent definitions, skills, and workflows all carry
// metadata this way.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Parse splits a markdown document into frontmatter fields and body.
// ok is false when the document does not start with a --- fence or the
// fence is never closed. Scalar values are returned as strings; list
// values (e.g. skills: [a, b]) are joined back by the caller via Fields.
func Parse(content string) (fields map[string]any, body string, ok bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, delimiter+"\n") && normalized != delimiter {
		return nil, content, false
	}

	rest := strings.TrimPrefix(normalized, delimiter+"\n")
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return nil, content, false
	}

	raw := rest[:end]
	body = rest[end+len("\n"+delimiter):]
	body = strings.TrimPrefix(body, "\n")

	fields = map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		// A fence that is not valid YAML still counts as frontmatter;
		// callers flag the missing fields individually.
		return map[string]any{}, body, true
	}
	return fields, body, true
}

// String returns the named field as a trimmed string, empty when absent.
func String(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		data, err := yaml.Marshal(t)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(data))
	}
}

// StringList returns the named field as a list of strings. Both YAML
// sequences and comma-separated scalars ("a, b, c") are accepted, since
// kit authors write skills: both ways.
func StringList(fields map[string]any, key string) []string {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}

	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, isStr := item.(string); isStr {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	case string:
		trimmed := strings.Trim(strings.TrimSpace(t), "[]")
		for _, part := range strings.Split(trimmed, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Has reports whether the named field is present.
func Has(fields map[string]any, key string) bool {
	_, ok := fields[key]
	return ok
}
