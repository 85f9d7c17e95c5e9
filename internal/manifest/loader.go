package manifest

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/texthog/igpay/internal/apperr"
)

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{
		reader: reader,
	}
}

func (l *Loader) Load(validate bool) (*Manifest, error) {
	decoder := yaml.NewDecoder(l.reader)
	var m Manifest
	if err := decoder.Decode(&m); err != nil {
		return nil, apperr.NewValidationWrap("invalid manifest", err)
	}
	if validate {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return &m, nil
}
