package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// presentSentinel marks an experience as ongoing; such entries sort before
// everything else regardless of their dates.
const presentSentinel = "Present"

// dateLayouts are tried in order when parsing startDate/date fields.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"January 2006",
	"Jan 2006",
}

// Store reads content sources from a single configured root and memoizes
// every parsed result for the lifetime of the process. Memoized values are
// immutable once set; concurrent first loads at worst duplicate identical
// work.
type Store struct {
	root string

	mu          sync.RWMutex
	profile     *ProfileInfo
	about       *AboutContent
	education   *Education
	experiences []Experience
	references  []Reference
	blogPosts   []BlogPost
	projects    []Project
}

// NewStore creates a Store rooted at dir. The root is resolved exactly once;
// a missing root is a startup error, not something to retry with guessed
// locations.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &NotFoundError{Source: dir, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Source: dir, Cause: fmt.Errorf("%s is not a directory", dir)}
	}
	return &Store{root: dir}, nil
}

// Root returns the configured content root.
func (s *Store) Root() string {
	return s.root
}

// Invalidate clears every memoized value, forcing re-parse on next access.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.about = nil
	s.education = nil
	s.experiences = nil
	s.references = nil
	s.blogPosts = nil
	s.projects = nil
}

// Profile returns the owner's profile block from profile.md.
func (s *Store) Profile() (*ProfileInfo, error) {
	s.mu.RLock()
	if s.profile != nil {
		defer s.mu.RUnlock()
		return s.profile, nil
	}
	s.mu.RUnlock()

	doc, err := s.readDocument("profile.md")
	if err != nil {
		return nil, err
	}
	var profile ProfileInfo
	if err := doc.decode(&profile); err != nil {
		return nil, &MalformedError{Source: "profile", Cause: err}
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	return &profile, nil
}

// About returns the rendered body of about.md.
func (s *Store) About() (*AboutContent, error) {
	s.mu.RLock()
	if s.about != nil {
		defer s.mu.RUnlock()
		return s.about, nil
	}
	s.mu.RUnlock()

	doc, err := s.readDocument("about.md")
	if err != nil {
		return nil, err
	}
	htmlBody, err := markdownToHTML(doc.body)
	if err != nil {
		return nil, &MalformedError{Source: "about", Cause: err}
	}
	about := &AboutContent{Content: htmlBody}

	s.mu.Lock()
	s.about = about
	s.mu.Unlock()
	return about, nil
}

// Education returns the education page with each section body rendered to HTML.
func (s *Store) Education() (*Education, error) {
	s.mu.RLock()
	if s.education != nil {
		defer s.mu.RUnlock()
		return s.education, nil
	}
	s.mu.RUnlock()

	doc, err := s.readDocument("education.md")
	if err != nil {
		return nil, err
	}
	var education Education
	if err := doc.decode(&education); err != nil {
		return nil, &MalformedError{Source: "education", Cause: err}
	}
	for i, section := range education.Sections {
		htmlBody, err := markdownToHTML(section.Content)
		if err != nil {
			return nil, &MalformedError{Source: "education", Cause: err}
		}
		education.Sections[i].Content = htmlBody
	}

	s.mu.Lock()
	s.education = &education
	s.mu.Unlock()
	return &education, nil
}

// Experiences returns all work history entries, most recent first. Any entry
// whose end date is the Present sentinel sorts ahead of dated entries; ties
// keep input order.
func (s *Store) Experiences() ([]Experience, error) {
	s.mu.RLock()
	if s.experiences != nil {
		defer s.mu.RUnlock()
		return s.experiences, nil
	}
	s.mu.RUnlock()

	files, err := s.listMarkdown("experience")
	if err != nil {
		return nil, err
	}

	experiences := make([]Experience, 0, len(files))
	for _, file := range files {
		doc, err := s.readDocument(filepath.Join("experience", file))
		if err != nil {
			return nil, err
		}
		var exp Experience
		if err := doc.decode(&exp); err != nil {
			return nil, &MalformedError{Source: "experience/" + file, Cause: err}
		}
		exp.ID = strings.TrimSuffix(file, ".md")
		exp.Description, err = markdownToHTML(doc.body)
		if err != nil {
			return nil, &MalformedError{Source: "experience/" + file, Cause: err}
		}
		experiences = append(experiences, exp)
	}

	sortExperiences(experiences)

	s.mu.Lock()
	s.experiences = experiences
	s.mu.Unlock()
	return experiences, nil
}

// References returns all recommendations, most recent first.
func (s *Store) References() ([]Reference, error) {
	s.mu.RLock()
	if s.references != nil {
		defer s.mu.RUnlock()
		return s.references, nil
	}
	s.mu.RUnlock()

	files, err := s.listMarkdown("references")
	if err != nil {
		return nil, err
	}

	references := make([]Reference, 0, len(files))
	for _, file := range files {
		doc, err := s.readDocument(filepath.Join("references", file))
		if err != nil {
			return nil, err
		}
		var ref Reference
		if err := doc.decode(&ref); err != nil {
			return nil, &MalformedError{Source: "references/" + file, Cause: err}
		}
		ref.ID = strings.TrimSuffix(file, ".md")
		ref.Content, err = markdownToHTML(doc.body)
		if err != nil {
			return nil, &MalformedError{Source: "references/" + file, Cause: err}
		}
		references = append(references, ref)
	}

	sort.SliceStable(references, func(i, j int) bool {
		return parseDate(references[i].Date).After(parseDate(references[j].Date))
	})

	s.mu.Lock()
	s.references = references
	s.mu.Unlock()
	return references, nil
}

// BlogPosts returns all writing entries, most recent first.
func (s *Store) BlogPosts() ([]BlogPost, error) {
	s.mu.RLock()
	if s.blogPosts != nil {
		defer s.mu.RUnlock()
		return s.blogPosts, nil
	}
	s.mu.RUnlock()

	files, err := s.listMarkdown("blog")
	if err != nil {
		return nil, err
	}

	posts := make([]BlogPost, 0, len(files))
	for _, file := range files {
		doc, err := s.readDocument(filepath.Join("blog", file))
		if err != nil {
			return nil, err
		}
		var post BlogPost
		if err := doc.decode(&post); err != nil {
			return nil, &MalformedError{Source: "blog/" + file, Cause: err}
		}
		post.ID = strings.TrimSuffix(file, ".md")
		post.Content, err = markdownToHTML(doc.body)
		if err != nil {
			return nil, &MalformedError{Source: "blog/" + file, Cause: err}
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].Date).After(parseDate(posts[j].Date))
	})

	s.mu.Lock()
	s.blogPosts = posts
	s.mu.Unlock()
	return posts, nil
}

// Projects returns all project entries in directory order.
func (s *Store) Projects() ([]Project, error) {
	s.mu.RLock()
	if s.projects != nil {
		defer s.mu.RUnlock()
		return s.projects, nil
	}
	s.mu.RUnlock()

	files, err := s.listMarkdown("projects")
	if err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(files))
	for _, file := range files {
		doc, err := s.readDocument(filepath.Join("projects", file))
		if err != nil {
			return nil, err
		}
		var project Project
		if err := doc.decode(&project); err != nil {
			return nil, &MalformedError{Source: "projects/" + file, Cause: err}
		}
		project.ID = strings.TrimSuffix(file, ".md")
		project.Content, err = markdownToHTML(doc.body)
		if err != nil {
			return nil, &MalformedError{Source: "projects/" + file, Cause: err}
		}
		projects = append(projects, project)
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return projects, nil
}

// Template reads a prompt template source verbatim, without frontmatter parsing.
func (s *Store) Template(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Source: name, Cause: err}
		}
		return "", &MalformedError{Source: name, Cause: err}
	}
	return string(data), nil
}

// readDocument reads and splits one content source relative to the root.
func (s *Store) readDocument(rel string) (*document, error) {
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Source: rel, Cause: err}
		}
		return nil, &MalformedError{Source: rel, Cause: err}
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil, &MalformedError{Source: rel, Cause: err}
	}
	return doc, nil
}

// listMarkdown returns the sorted .md file names under a subdirectory of the root.
func (s *Store) listMarkdown(sub string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, sub))
	if err != nil {
		return nil, &NotFoundError{Source: sub, Cause: err}
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// sortExperiences orders entries most recent first, with the Present sentinel
// overriding date comparison.
func sortExperiences(experiences []Experience) {
	sort.SliceStable(experiences, func(i, j int) bool {
		a, b := experiences[i], experiences[j]
		aPresent := a.EndDate == presentSentinel
		bPresent := b.EndDate == presentSentinel
		if aPresent != bPresent {
			return aPresent
		}
		if aPresent && bPresent {
			return false
		}
		return parseDate(a.StartDate).After(parseDate(b.StartDate))
	})
}

// parseDate parses a content date field. Unparseable dates sort last.
func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
