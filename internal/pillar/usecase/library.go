package usecase

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"creator-studio/internal/model"
	"creator-studio/internal/pillar"
)

//go:embed library.yaml
var libraryYAML []byte

type starterLibrary struct {
	Pillars []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Keywords    []string `yaml:"keywords"`
	} `yaml:"pillars"`
}

var (
	libraryOnce sync.Once
	librarySet  []pillar.Suggestion
)

// starterSuggestions returns the embedded starter pillar library. The
// YAML ships inside the binary, so a parse failure is a programming
// error, not a runtime condition.
func starterSuggestions() []pillar.Suggestion {
	libraryOnce.Do(func() {
		var lib starterLibrary
		if err := yaml.Unmarshal(libraryYAML, &lib); err != nil {
			panic("pillar/usecase: embedded library.yaml is invalid: " + err.Error())
		}
		librarySet = make([]pillar.Suggestion, 0, len(lib.Pillars))
		for _, p := range lib.Pillars {
			librarySet = append(librarySet, pillar.Suggestion{
				Name:        p.Name,
				Description: p.Description,
				Keywords:    p.Keywords,
				Tags:        []string{model.TagAISuggested},
			})
		}
	})
	return librarySet
}
