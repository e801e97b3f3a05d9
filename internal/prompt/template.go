package prompt

import "strings"

// substitute replaces {key} placeholders with values from data in a single
// pass over the template. strings.Replacer never rescans replaced text, so a
// value containing another {key} token is emitted literally rather than
// substituted again.
func substitute(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
