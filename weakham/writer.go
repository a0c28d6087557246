// Package weakham: YAML-backed result writer.
package weakham

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlExt is appended to output paths that carry no extension.
const yamlExt = ".yaml"

// YAMLWriter persists results as a YAML document keyed by the diagram
// group ("HW_Eye"), one file per execution. The zero value is ready to
// use. Parent directories are created as needed; an existing file at the
// target path is overwritten, matching one-result-file-per-run semantics.
type YAMLWriter struct{}

// Write marshals results under key and writes them to path (with ".yaml"
// appended when path has no extension).
// Stage 1 (Prepare): marshal the {key: results} document.
// Stage 2 (Execute): ensure the parent directory, write atomically-ish
// via a single WriteFile call.
// Complexity: O(total correlator length).
func (YAMLWriter) Write(path, key string, results []Result) error {
	doc := map[string][]Result{key: results}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("YAMLWriter.Write: %w", err)
	}

	if filepath.Ext(path) == "" {
		path += yamlExt
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("YAMLWriter.Write: %w", err)
		}
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("YAMLWriter.Write: %w", err)
	}

	return nil
}
