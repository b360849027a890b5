// Package testutil provides shared test helpers for creating settings files and parameters documents.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExampleParameters is a complete, valid parameters document.
const ExampleParameters = `nodes:
  tension_kj_values: { internal: 0.8, external: 0.2, top_internal: 0.42, top_external: 0.42, base: null }
  compression_kj_value: 0.3
  external_node_rotation: { yielding: 0.005, ultimate: 0.01 }
  internal_node_rotation: { yielding: 0.0075, ultimate: 0.015 }
  cracking_rotation: 0.0002  # radians
element_settings:
  moment_curvature: stress_block
  moment_shear_interaction: true
  shear_formulation: NZSEE2017
  domain_mn: four_points
subassembly_settings:
  sub_hierarchy: low
  sub_stiffness: avg
`

// ReplaceLine returns ExampleParameters with the first line containing old
// replaced by replacement. An empty replacement removes the line.
func ReplaceLine(t *testing.T, old, replacement string) string {
	t.Helper()

	lines := strings.Split(ExampleParameters, "\n")
	for i, line := range lines {
		if !strings.Contains(line, old) {
			continue
		}
		if replacement == "" {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i] = replacement
		}
		return strings.Join(lines, "\n")
	}
	require.FailNow(t, "line not found in example parameters", old)
	return ""
}

// WriteParameters writes a parameters document into dir and returns its path.
func WriteParameters(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "parameters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SetupTestConfig creates a settings file pointing at a valid parameters
// document in tmpDir. Returns the path to the generated settings file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	parametersPath := WriteParameters(t, tmpDir, ExampleParameters)
	configContent := fmt.Sprintf(`parameters:
  file: %s
watch:
  debounce: 50ms
`, parametersPath)

	cfgPath := filepath.Join(tmpDir, "mnint.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
