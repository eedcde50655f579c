package shader

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// compileCheck runs the CPU-side WGSL front end over a stage source and reports whether
// it compiles, with diagnostic text on failure. This mirrors what the GPU driver will do
// when the module is registered, but produces the diagnostic before any device exists
// and without tearing down the process. The compiled SPIR-V output is discarded; only
// the success or failure of the translation matters here.
//
// Parameters:
//   - source: the raw WGSL source text
//
// Returns:
//   - bool: true if the source compiled cleanly
//   - string: diagnostic text describing the failure, empty on success
func compileCheck(source string) (bool, string) {
	if strings.TrimSpace(source) == "" {
		return false, "empty shader source"
	}

	if _, err := naga.Compile(source); err != nil {
		return false, fmt.Sprintf("compile: %v", err)
	}

	return true, ""
}
