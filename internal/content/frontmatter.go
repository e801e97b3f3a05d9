package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is a markdown source split into its YAML frontmatter and body.
type document struct {
	front []byte
	body  string
}

// parseDocument splits a markdown source into frontmatter and body.
// A frontmatter block is delimited by "---" fences at the very start of the
// file; a source without an opening fence is all body.
func parseDocument(data []byte) (*document, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return &document{body: string(data)}, nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("\n---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	body := strings.TrimPrefix(string(parts[1]), "\n")
	body = strings.TrimPrefix(body, "\r\n")

	return &document{front: parts[0], body: body}, nil
}

// decode unmarshals the frontmatter into v. Documents without frontmatter
// decode into the zero value.
func (d *document) decode(v any) error {
	if len(d.front) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(d.front, v); err != nil {
		return fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return nil
}
