package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gramcheck/internal/domain"
)

// Loader reads verification cases from a YAML suite file
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

type suiteFile struct {
	Cases []domain.Case `yaml:"cases"`
}

// Load reads a suite file and returns its cases.
// Each entry needs a non-empty source and at least one expected label;
// entries without a name get one assigned from their position.
func (l *Loader) Load(path string) ([]domain.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file %s: %w", path, err)
	}

	var sf suiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse suite file %s: %w", path, err)
	}
	if len(sf.Cases) == 0 {
		return nil, fmt.Errorf("suite file %s contains no cases", path)
	}

	for i := range sf.Cases {
		c := &sf.Cases[i]
		if c.Source == "" {
			return nil, fmt.Errorf("suite file %s: case %d has empty source", path, i+1)
		}
		if len(c.Expect) == 0 {
			return nil, fmt.Errorf("suite file %s: case %d has no expected labels", path, i+1)
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
	}

	return sf.Cases, nil
}
