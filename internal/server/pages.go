package server

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/alexjordan/folio/internal/content"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// pageData aggregates everything the portfolio page renders.
type pageData struct {
	Profile     *content.ProfileInfo
	About       template.HTML
	Experiences []experienceView
	Education   educationView
	References  []referenceView
	BlogPosts   []blogPostView
	Projects    []projectView
}

// The *View types exist so pre-rendered bodies can be marked as template.HTML.
// This trusts the content sources, which are owner-controlled by definition.
type experienceView struct {
	content.Experience
	DescriptionHTML template.HTML
}

type referenceView struct {
	content.Reference
	ContentHTML template.HTML
}

type blogPostView struct {
	content.BlogPost
	ContentHTML template.HTML
}

type projectView struct {
	content.Project
	ContentHTML template.HTML
}

type educationView struct {
	Title    string
	Sections []educationSectionView
}

type educationSectionView struct {
	Title       string
	ContentHTML template.HTML
}

// handleIndex renders the portfolio page from the content store.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := s.loadPageData()
	if err != nil {
		log.Printf("Error loading page content: %v", err)
		s.writeError(w, &ErrUpstream{Message: "Service temporarily unavailable", Cause: err})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

func (s *Server) loadPageData() (*pageData, error) {
	profile, err := s.store.Profile()
	if err != nil {
		return nil, err
	}
	about, err := s.store.About()
	if err != nil {
		return nil, err
	}
	experiences, err := s.store.Experiences()
	if err != nil {
		return nil, err
	}
	education, err := s.store.Education()
	if err != nil {
		return nil, err
	}
	references, err := s.store.References()
	if err != nil {
		return nil, err
	}
	posts, err := s.store.BlogPosts()
	if err != nil {
		return nil, err
	}
	projects, err := s.store.Projects()
	if err != nil {
		return nil, err
	}

	data := &pageData{
		Profile: profile,
		About:   template.HTML(about.Content),
	}
	for _, post := range posts {
		data.BlogPosts = append(data.BlogPosts, blogPostView{
			BlogPost:    post,
			ContentHTML: template.HTML(post.Content),
		})
	}
	for _, exp := range experiences {
		data.Experiences = append(data.Experiences, experienceView{
			Experience:      exp,
			DescriptionHTML: template.HTML(exp.Description),
		})
	}
	data.Education = educationView{Title: education.Title}
	for _, section := range education.Sections {
		data.Education.Sections = append(data.Education.Sections, educationSectionView{
			Title:       section.Title,
			ContentHTML: template.HTML(section.Content),
		})
	}
	for _, ref := range references {
		data.References = append(data.References, referenceView{
			Reference:   ref,
			ContentHTML: template.HTML(ref.Content),
		})
	}
	for _, project := range projects {
		data.Projects = append(data.Projects, projectView{
			Project:     project,
			ContentHTML: template.HTML(project.Content),
		})
	}
	return data, nil
}
