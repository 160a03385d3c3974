package profile

import "github.com/zoobzio/codable"

// Title is a job title. The zero Title is not a valid title.
type Title int

const (
	TitleEngineer Title = iota + 1
	TitleManager
	TitleSupport
	TitleQA
)

var titles = codable.NewEnum("Title",
	codable.Case[Title]{Symbol: TitleEngineer, Name: "engineer"},
	codable.Case[Title]{Symbol: TitleManager, Name: "manager"},
	codable.Case[Title]{Symbol: TitleSupport, Name: "support"},
	codable.Case[Title]{Symbol: TitleQA, Name: "qa"},
)

// ParseTitle returns the Title named s.
func ParseTitle(s string) (Title, bool) {
	return titles.Parse(s)
}

func (t Title) String() string {
	if s, ok := titles.Name(t); ok {
		return s
	}
	return "invalid"
}
