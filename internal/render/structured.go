package render

import (
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type yamlRenderer struct {
	trim bool
}

// Render writes one YAML document per entry.
func (r *yamlRenderer) Render(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, doc := range documents(entries, r.trim) {
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}

type jsonRenderer struct {
	trim bool
}

// Render writes all entries as one indented JSON array.
func (r *jsonRenderer) Render(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents(entries, r.trim))
}
