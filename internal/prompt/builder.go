package prompt

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/alexjordan/folio/internal/content"
)

const (
	baseTemplate     = "system-prompt.md"
	extendedTemplate = "system-prompt-extended.md"

	// blogSummaryLimit caps how much of a post body is embedded in the prompt.
	blogSummaryLimit = 500
	// currentRoleLimit caps the current-role digest.
	currentRoleLimit = 200
	// techStackLimit caps how many technologies the tech-stack digest names.
	techStackLimit = 10
)

// Builder assembles and memoizes the system prompt. Content is static per
// deployment, so the assembled prompt is cached until Invalidate is called.
type Builder struct {
	store *content.Store

	mu     sync.RWMutex
	cached string
}

// NewBuilder creates a Builder over the given content store.
func NewBuilder(store *content.Store) *Builder {
	return &Builder{store: store}
}

// Invalidate drops the memoized prompt, forcing reassembly on next Build.
func (b *Builder) Invalidate() {
	b.mu.Lock()
	b.cached = ""
	b.mu.Unlock()
}

// Build returns the complete system prompt: the base template with all
// placeholders substituted, plus the extended template when present.
func (b *Builder) Build(ctx context.Context) (string, error) {
	b.mu.RLock()
	if b.cached != "" {
		defer b.mu.RUnlock()
		return b.cached, nil
	}
	b.mu.RUnlock()

	base, err := b.store.Template(baseTemplate)
	if err != nil {
		return "", &BuildError{Sources: []string{baseTemplate}, Cause: err}
	}

	var (
		profile     *content.ProfileInfo
		about       *content.AboutContent
		education   *content.Education
		experiences []content.Experience
		references  []content.Reference
		blogPosts   []content.BlogPost
		projects    []content.Project
	)

	// The seven sources are independent reads; gather them concurrently.
	g, ctx := errgroup.WithContext(ctx)
	loaders := []struct {
		name string
		load func() error
	}{
		{"profile", func() (err error) { profile, err = b.store.Profile(); return }},
		{"about", func() (err error) { about, err = b.store.About(); return }},
		{"education", func() (err error) { education, err = b.store.Education(); return }},
		{"experiences", func() (err error) { experiences, err = b.store.Experiences(); return }},
		{"references", func() (err error) { references, err = b.store.References(); return }},
		{"blogPosts", func() (err error) { blogPosts, err = b.store.BlogPosts(); return }},
		{"projects", func() (err error) { projects, err = b.store.Projects(); return }},
	}
	for _, loader := range loaders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := loader.load(); err != nil {
				return fmt.Errorf("%s: %w", loader.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", &BuildError{Cause: err}
	}

	technologies := aggregateTechnologies(experiences, projects)

	data := map[string]string{
		"name":               profile.Name,
		"title":              profile.Title,
		"experience_summary": profile.Summary,
		"email":              profile.Email,
		"linkedin_url":       linkedinURL(profile),
		"work_experience":    formatExperiences(experiences),
		"projects":           formatProjects(projects),
		"education":          formatEducation(education),
		"references":         formatReferences(references),
		"blog_posts":         formatBlogPosts(blogPosts),
		"skills_summary":     skillsSummary(technologies),
		"current_role_info":  currentRoleInfo(experiences),
		"tech_stack_info":    techStackInfo(technologies),
		"opportunity_info":   opportunityInfo(about),
	}

	result := substitute(base, data)

	// The extended template is optional; a broken one is skipped, not fatal.
	if extended, err := b.store.Template(extendedTemplate); err == nil {
		result = result + "\n\n## EXTENDED CONTEXT\n" + substitute(extended, data)
	}

	b.mu.Lock()
	b.cached = result
	b.mu.Unlock()
	return result, nil
}

// stripHTML reduces a rendered HTML fragment back to plain text for prompt
// embedding.
func stripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}

// truncate caps text at limit characters. Counting runes rather than bytes
// keeps a multibyte character at the boundary from being split into invalid
// UTF-8.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

func formatExperiences(experiences []content.Experience) string {
	sections := make([]string, 0, len(experiences))
	for i, exp := range experiences {
		sections = append(sections, fmt.Sprintf(`
### %d. %s at %s
- **Duration**: %s to %s
- **Location**: %s
- **Technologies**: %s
- **Company**: %s (%s)

**Key Achievements**:
%s
`, i+1, exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Location,
			strings.Join(exp.Technologies, ", "), exp.Company, exp.CompanyURL,
			stripHTML(exp.Description)))
	}
	return strings.Join(sections, "\n")
}

func formatProjects(projects []content.Project) string {
	sections := make([]string, 0, len(projects))
	for i, project := range projects {
		sections = append(sections, fmt.Sprintf(`
### %d. %s
- **Type**: %s
- **Technologies**: %s
- **URL**: %s

**Description**:
%s
`, i+1, project.Title, project.Type, strings.Join(project.Technologies, ", "),
			project.URL, stripHTML(project.Content)))
	}
	return strings.Join(sections, "\n")
}

func formatEducation(education *content.Education) string {
	if education == nil {
		return ""
	}
	sections := make([]string, 0, len(education.Sections))
	for _, section := range education.Sections {
		sections = append(sections, fmt.Sprintf("\n**%s**\n%s\n",
			section.Title, stripHTML(section.Content)))
	}
	return strings.Join(sections, "\n")
}

func formatReferences(references []content.Reference) string {
	sections := make([]string, 0, len(references))
	for i, ref := range references {
		sections = append(sections, fmt.Sprintf(`
### %d. %s
- **Title**: %s
- **Relationship**: %s
- **Date**: %s
- **LinkedIn**: %s

**Recommendation**:
%s
`, i+1, ref.Name, ref.Title, ref.Relationship, ref.Date, ref.LinkedIn,
			stripHTML(ref.Content)))
	}
	return strings.Join(sections, "\n")
}

func formatBlogPosts(posts []content.BlogPost) string {
	sections := make([]string, 0, len(posts))
	for i, post := range posts {
		sections = append(sections, fmt.Sprintf(`
### %d. %s
- **Published**: %s
- **URL**: %s

**Summary**:
%s
`, i+1, post.Title, post.Date, post.URL,
			truncate(stripHTML(post.Content), blogSummaryLimit)))
	}
	return strings.Join(sections, "\n")
}

// aggregateTechnologies unions experience and project technologies with
// case-sensitive exact dedup, preserving first-seen order.
func aggregateTechnologies(experiences []content.Experience, projects []content.Project) []string {
	seen := make(map[string]struct{})
	var all []string
	add := func(techs []string) {
		for _, tech := range techs {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			all = append(all, tech)
		}
	}
	for _, exp := range experiences {
		add(exp.Technologies)
	}
	for _, project := range projects {
		add(project.Technologies)
	}
	return all
}

func skillsSummary(technologies []string) string {
	return fmt.Sprintf(`
**Engineering**: Distributed systems design, API design, performance work, incident response, migrations without downtime

**Technical Skills**: %s

**Industry Experience**: Content platforms, logistics, developer tooling, agency client work

**Leadership**: Tech lead experience, mentoring, design review culture, cross-team collaboration
`, strings.Join(technologies, ", "))
}

func currentRoleInfo(experiences []content.Experience) string {
	if len(experiences) == 0 {
		return "Open to new engineering opportunities."
	}
	current := experiences[0]
	return fmt.Sprintf("Currently %s at %s. %s", current.Title, current.Company,
		truncate(stripHTML(current.Description), currentRoleLimit))
}

func techStackInfo(technologies []string) string {
	if len(technologies) == 0 {
		return "I have experience with various modern technologies across the full product development lifecycle."
	}
	listed := technologies
	suffix := ""
	if len(listed) > techStackLimit {
		listed = listed[:techStackLimit]
		suffix = ", and many others"
	}
	return fmt.Sprintf("I work with a diverse technology stack including: %s%s.",
		strings.Join(listed, ", "), suffix)
}

func linkedinURL(profile *content.ProfileInfo) string {
	for _, link := range profile.SocialLinks {
		if link.Platform == "LinkedIn" {
			return link.URL
		}
	}
	return "Contact via email"
}

func opportunityInfo(about *content.AboutContent) string {
	if about == nil || strings.TrimSpace(about.Content) == "" {
		return "Open to new engineering opportunities."
	}
	// Bodies with unexpanded placeholder brackets get the canned pitch instead
	// of leaking template syntax into the prompt.
	if strings.Contains(about.Content, "[") {
		return "Open to discussing roles that fit a backend engineering background, especially content platforms, infrastructure, and developer tooling."
	}
	return stripHTML(about.Content)
}
