package manifest

import (
	"fmt"

	"github.com/texthog/igpay/internal/apperr"
)

// Manifest describes a batch of conversion jobs for a content corpus.
type Manifest struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Version  string   `json:"version" yaml:"version"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Jobs     []Job    `json:"jobs" yaml:"jobs"`
}

type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Job maps one source file to one destination file.
type Job struct {
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source" yaml:"source"`
	Output string `json:"output" yaml:"output"`
}

func (m *Manifest) Validate() error {
	if m.Kind == "" {
		return apperr.NewValidation("kind is required")
	}
	if m.Version == "" {
		return apperr.NewValidation("version is required")
	}
	if m.Metadata.Name == "" {
		return apperr.NewValidation("metadata.name is required")
	}
	if len(m.Jobs) == 0 {
		return apperr.NewValidation("at least one job is required")
	}
	for i, job := range m.Jobs {
		if job.Source == "" {
			return apperr.NewValidation(fmt.Sprintf("jobs[%d] must have source defined", i))
		}
		if job.Output == "" {
			return apperr.NewValidation(fmt.Sprintf("jobs[%d] must have output defined", i))
		}
	}
	return nil
}
