package event

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the decoded content of an event's meta file: the recognized
// front-matter fields plus the Markdown description that follows them.
type Meta struct {
	Fallback  *bool  // nil when the key is absent
	StartDate string // raw "Month Day" value, empty when absent
	EndDate   string
	Unknown   []string // unrecognized front-matter keys, sorted
	Body      string   // description, surrounding whitespace trimmed
}

var delimiter = []byte("---")

// ParseMeta splits a meta file into YAML front matter and Markdown body.
// A file that does not open with a "---" line is treated as all body, which
// is how the consuming bot reads descriptions. The returned error indicates
// malformed metadata: an unterminated block, YAML that does not decode, or
// a recognized key holding the wrong type.
func ParseMeta(data []byte) (Meta, error) {
	var meta Meta

	// Windows-authored files use CRLF; delimiter matching works on LF.
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	body := data
	if bytes.HasPrefix(data, delimiter) {
		nl := bytes.IndexByte(data, '\n')
		if nl != -1 && len(bytes.TrimSpace(data[len(delimiter):nl])) == 0 {
			block, rest, ok := splitClosing(data[nl+1:])
			if !ok {
				return Meta{}, errors.New("unterminated front-matter block")
			}
			if err := decodeFrontMatter(block, &meta); err != nil {
				return Meta{}, err
			}
			body = rest
		}
	}

	meta.Body = strings.TrimSpace(string(body))
	return meta, nil
}

// splitClosing cuts data at the closing "---" line. data starts just past
// the opening delimiter line.
func splitClosing(data []byte) (block, rest []byte, ok bool) {
	if bytes.HasPrefix(data, []byte("---\n")) {
		return nil, data[len("---\n"):], true
	}
	if end := bytes.Index(data, []byte("\n---\n")); end != -1 {
		return data[:end], data[end+len("\n---\n"):], true
	}
	// Closing delimiter on the last line with no trailing newline.
	if trimmed := bytes.TrimRight(data, "\r\n \t"); bytes.HasSuffix(trimmed, []byte("\n---")) {
		return trimmed[:len(trimmed)-len("\n---")], nil, true
	}
	return nil, nil, false
}

func decodeFrontMatter(block []byte, meta *Meta) error {
	fields := map[string]yaml.Node{}
	if err := yaml.Unmarshal(block, &fields); err != nil {
		return fmt.Errorf("front matter is not a YAML mapping: %w", err)
	}

	for key, node := range fields {
		node := node
		switch key {
		case "fallback":
			var b bool
			if err := node.Decode(&b); err != nil {
				return errors.New("value under 'fallback' key must be a boolean")
			}
			meta.Fallback = &b
		case "start_date":
			if err := node.Decode(&meta.StartDate); err != nil {
				return errors.New("value under 'start_date' key must be a string")
			}
		case "end_date":
			if err := node.Decode(&meta.EndDate); err != nil {
				return errors.New("value under 'end_date' key must be a string")
			}
		default:
			meta.Unknown = append(meta.Unknown, key)
		}
	}

	sort.Strings(meta.Unknown)
	return nil
}
