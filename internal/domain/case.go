package domain

// Case represents a single verification input: a source snippet and the
// node-type labels that must appear in its parse dump.
type Case struct {
	Name   string   `yaml:"name" json:"name"`
	Source string   `yaml:"source" json:"source"`
	Expect []string `yaml:"expect" json:"expect"`
}
