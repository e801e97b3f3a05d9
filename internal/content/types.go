// Package content loads, parses, and caches the markdown content sources
// that make up the portfolio: profile, about, education, experience entries,
// references, blog posts, and projects.
package content

// SocialLink is a single entry in the profile's ordered social link list.
type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon"`
}

// ProfileInfo holds the owner's identity block from profile.md.
type ProfileInfo struct {
	Name        string       `yaml:"name"`
	Title       string       `yaml:"title"`
	Summary     string       `yaml:"summary"`
	Email       string       `yaml:"email"`
	SocialLinks []SocialLink `yaml:"socialLinks"`
}

// AboutContent is the rendered body of about.md.
type AboutContent struct {
	Content string
}

// Experience is one work history entry. Description holds the rendered HTML body.
type Experience struct {
	ID           string   `yaml:"-"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	CompanyURL   string   `yaml:"companyUrl"`
	Location     string   `yaml:"location"`
	StartDate    string   `yaml:"startDate"`
	EndDate      string   `yaml:"endDate"`
	Description  string   `yaml:"-"`
	Technologies []string `yaml:"technologies"`
}

// Reference is a recommendation from a colleague. Content holds the rendered HTML body.
type Reference struct {
	ID           string `yaml:"-"`
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Relationship string `yaml:"relationship"`
	Date         string `yaml:"date"`
	LinkedIn     string `yaml:"linkedin"`
	Content      string `yaml:"-"`
}

// BlogPost is an external article pointer with a rendered summary body.
type BlogPost struct {
	ID      string `yaml:"-"`
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	URL     string `yaml:"url"`
	Image   string `yaml:"image"`
	Content string `yaml:"-"`
}

// Project is a portfolio project entry.
type Project struct {
	ID           string   `yaml:"-"`
	Title        string   `yaml:"title"`
	Type         string   `yaml:"type"`
	URL          string   `yaml:"url"`
	Image        string   `yaml:"image"`
	Technologies []string `yaml:"technologies"`
	Content      string   `yaml:"-"`
}

// EducationSection is one titled block inside education.md.
type EducationSection struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Education is the education page: a title plus ordered sections.
type Education struct {
	Title    string             `yaml:"title"`
	Sections []EducationSection `yaml:"sections"`
}
