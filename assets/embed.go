// assets/embed.go
//
// Embedded default artifacts shipped with the binary. The default
// strategy table matches the embedded word lists; deployments with full
// lists point STRATEGY_FILE at a table built by the precompute run mode.

package assets

import (
	"embed"
)

//go:embed strategy.txt
var fs embed.FS

// DefaultStrategy returns the embedded strategy table bytes.
func DefaultStrategy() ([]byte, error) {
	return fs.ReadFile("strategy.txt")
}
