package servicefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses a services.yaml file.
type Loader struct {
	filePath string
}

// NewLoader creates a new service file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the file. Unknown keys are rejected so typos
// like "prot: 8080" do not silently drop a service.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read services file: %w", err)
	}
	return Parse(data)
}

// Parse decodes services.yaml content.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("services file is empty")
		}
		return nil, fmt.Errorf("failed to parse services yaml: %w", err)
	}
	return &file, nil
}
