package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFixture creates a minimal content tree in a temp dir and returns its root.
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, body string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	write("profile.md", `---
name: Alex Jordan
title: Product Manager
summary: Experienced product manager
email: alex@example.com
socialLinks:
  - platform: LinkedIn
    url: https://linkedin.com/in/alexjordan
    icon: linkedin
  - platform: GitHub
    url: https://github.com/alexjordan
    icon: github
---
`)

	write("about.md", `---
---
I build products. **Currently** exploring new opportunities.
`)

	write("education.md", `---
title: Education
sections:
  - title: University
    content: "BSc Computer Science, *somewhere sunny*"
  - title: Certifications
    content: "CSPO, CSM"
---
`)

	write("experience/acme.md", `---
title: Senior PM
company: Acme
companyUrl: https://acme.example.com
location: Berlin
startDate: 2019-02
endDate: 2021-06
technologies:
  - Go
  - Postgres
---
- Shipped the flagship product
`)

	write("experience/globex.md", `---
title: Principal PM
company: Globex
companyUrl: https://globex.example.com
location: Remote
startDate: 2021-07
endDate: Present
technologies:
  - Go
  - Kubernetes
---
- Leading platform strategy
`)

	write("references/jane.md", `---
name: Jane Smith
title: VP Engineering
relationship: Manager
date: 2023-05
linkedin: https://linkedin.com/in/janesmith
---
Alex is outstanding.
`)

	write("blog/first.md", `---
title: On Roadmaps
date: 2022-01-15
url: https://blog.example.com/roadmaps
image: /img/roadmaps.png
---
Roadmaps are promises, not plans.
`)

	write("blog/second.md", `---
title: On Discovery
date: 2023-03-02
url: https://blog.example.com/discovery
image: /img/discovery.png
---
Discovery never stops.
`)

	write("projects/folio.md", `---
title: Folio
type: Side project
url: https://github.com/alexjordan/folio
image: /img/folio.png
technologies:
  - Go
  - Gemini
---
A portfolio site with a chat assistant.
`)

	write("system-prompt.md", "You are the assistant for {name}, a {title}.\n\n## Work\n{work_experience}\n\n## Skills\n{skills_summary}\n")
	write("system-prompt-extended.md", "Extra context for {name}: {tech_stack_info}\n")

	return root
}
