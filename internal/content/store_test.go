package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_MissingRoot(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProfile(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	profile, err := store.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Alex Jordan", profile.Name)
	assert.Equal(t, "alex@example.com", profile.Email)
	require.Len(t, profile.SocialLinks, 2)
	assert.Equal(t, "LinkedIn", profile.SocialLinks[0].Platform)
}

func TestAbout_RendersHTML(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	about, err := store.About()
	require.NoError(t, err)
	assert.Contains(t, about.Content, "<strong>Currently</strong>")
}

func TestEducation_SectionsRendered(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	education, err := store.Education()
	require.NoError(t, err)
	assert.Equal(t, "Education", education.Title)
	require.Len(t, education.Sections, 2)
	assert.Equal(t, "University", education.Sections[0].Title)
	assert.Contains(t, education.Sections[0].Content, "<em>somewhere sunny</em>")
}

func TestExperiences_PresentSortsFirst(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	experiences, err := store.Experiences()
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	assert.Equal(t, "globex", experiences[0].ID)
	assert.Equal(t, presentSentinel, experiences[0].EndDate)
	assert.Contains(t, experiences[0].Description, "<li>Leading platform strategy</li>")
}

func TestExperiences_Memoized(t *testing.T) {
	root := writeFixture(t)
	store, err := NewStore(root)
	require.NoError(t, err)

	first, err := store.Experiences()
	require.NoError(t, err)

	// Deleting the source after the first load must not affect later reads.
	require.NoError(t, os.RemoveAll(filepath.Join(root, "experience")))

	second, err := store.Experiences()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInvalidate_ForcesReparse(t *testing.T) {
	root := writeFixture(t)
	store, err := NewStore(root)
	require.NoError(t, err)

	_, err = store.Experiences()
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "experience")))
	store.Invalidate()

	_, err = store.Experiences()
	require.Error(t, err)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestReferences_SortedByDateDescending(t *testing.T) {
	root := writeFixture(t)
	older := `---
name: Old Friend
title: CTO
relationship: Peer
date: 2020-01
linkedin: https://linkedin.com/in/oldfriend
---
Great to work with.
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "references", "old.md"), []byte(older), 0o644))

	store, err := NewStore(root)
	require.NoError(t, err)

	references, err := store.References()
	require.NoError(t, err)
	require.Len(t, references, 2)
	assert.Equal(t, "Jane Smith", references[0].Name)
	assert.Equal(t, "Old Friend", references[1].Name)
}

func TestBlogPosts_SortedByDateDescending(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	posts, err := store.BlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "On Discovery", posts[0].Title)
	assert.Equal(t, "On Roadmaps", posts[1].Title)
}

func TestProjects_DirectoryOrder(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	projects, err := store.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Folio", projects[0].Title)
	assert.Equal(t, []string{"Go", "Gemini"}, projects[0].Technologies)
}

func TestTemplate(t *testing.T) {
	store, err := NewStore(writeFixture(t))
	require.NoError(t, err)

	tmpl, err := store.Template("system-prompt.md")
	require.NoError(t, err)
	assert.Contains(t, tmpl, "{name}")

	_, err = store.Template("missing.md")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMalformedFrontmatter(t *testing.T) {
	root := writeFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "profile.md"),
		[]byte("---\nname: [unclosed\n---\nbody\n"), 0o644))

	store, err := NewStore(root)
	require.NoError(t, err)

	_, err = store.Profile()
	require.Error(t, err)
	var malformed *MalformedError
	assert.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "profile")
}

func TestSortExperiences_StableAndPresentFirst(t *testing.T) {
	experiences := []Experience{
		{ID: "a", StartDate: "2024-01", EndDate: "2024-06"},
		{ID: "b", StartDate: "2010-01", EndDate: presentSentinel},
		{ID: "c", StartDate: "2005-01", EndDate: presentSentinel},
		{ID: "d", StartDate: "2018-01", EndDate: "2019-01"},
	}

	sortExperiences(experiences)

	// Present entries lead regardless of start date, in their original order.
	assert.Equal(t, "b", experiences[0].ID)
	assert.Equal(t, "c", experiences[1].ID)
	assert.Equal(t, "a", experiences[2].ID)
	assert.Equal(t, "d", experiences[3].ID)
}

func TestParseDate_Layouts(t *testing.T) {
	assert.False(t, parseDate("2022-03-01").IsZero())
	assert.False(t, parseDate("2022-03").IsZero())
	assert.False(t, parseDate("2022").IsZero())
	assert.False(t, parseDate("March 2022").IsZero())
	assert.True(t, parseDate("someday").IsZero())
}
