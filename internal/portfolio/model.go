package portfolio

type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Skills      []string `json:"skills" yaml:"skills"`
	IsAward     bool     `json:"isAward" yaml:"isAward"`
	GitHubURL   string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
}

type Category struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Projects    []Project `json:"projects" yaml:"projects"`
}

// Catalog is the on-disk shape of a portfolio dataset.
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// Option is one entry of a category picker.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Stats struct {
	TotalProjects int `json:"totalProjects"`
	AwardWinning  int `json:"awardWinning"`
	Categories    int `json:"categories"`
	Technologies  int `json:"technologies"`
}

// HasSkill reports whether the project lists skill exactly.
func (p Project) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// SkillPreview returns at most n leading skills and how many were left out.
func (p Project) SkillPreview(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(p.Skills) <= n {
		return p.Skills, 0
	}
	return p.Skills[:n], len(p.Skills) - n
}
