// Shared helpers for stemplan CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/orthoplan/stemplan/internal/sqlite"
	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/implant"
	"github.com/orthoplan/stemplan/pkg/types"
)

// catalog is the product registry shared by all commands.
var catalog = implant.Default()

// openStore resolves the data directory and opens the session store.
// The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// productByName returns the named product, falling back to the
// configured default product when name is empty.
func productByName(name string) (*implant.Product, error) {
	if name == "" {
		name = configDefaultProduct
	}
	if name == "" {
		name = defaultProduct
	}
	p, err := catalog.Product(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return p, nil
}

// parseLabel parses a numeric label argument.
func parseLabel(s string) (types.Label, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return types.LabelNone, fmt.Errorf("invalid label %q (expected integer)", s)
	}
	return types.Label(n), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	fmt.Println(string(output))
	return nil
}

// runtimeFatal prints err with a command prefix and exits with the
// runtime error code.
func runtimeFatal(prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(exitRuntimeError)
}

// vec3JSON flattens a vector for JSON output.
func vec3JSON(v geom.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
