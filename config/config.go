// Package config holds the variant table: the static mapping from a logical
// hardware variant to the manifest descriptors compared together.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/reqdiff/domain"
)

// Variant bundles the descriptors conventionally compared together for one
// hardware backend: requirement files first, then build files, in order.
type Variant struct {
	Requirements []string `yaml:"requirements"`
	BuildFiles   []string `yaml:"build_files"`
}

// VariantTable is an immutable, injectable registry of variants. Lookup is
// case-insensitive; the declaration order of variants is preserved so that
// listings stay stable.
type VariantTable struct {
	names    []string
	variants map[string]Variant
}

// fileConfig is the on-disk shape of a variant override file.
type fileConfig struct {
	Variants map[string]Variant `yaml:"variants"`
}

// DefaultVariants returns the built-in table mirroring the upstream vLLM
// repository layout.
func DefaultVariants() *VariantTable {
	table := newVariantTable()
	table.add("rocm", Variant{
		Requirements: []string{"common.txt", "rocm.txt", "rocm-build.txt"},
		BuildFiles:   []string{"docker/Dockerfile.rocm", "docker/Dockerfile.rocm_base"},
	})
	table.add("cuda", Variant{
		Requirements: []string{"common.txt", "cuda.txt"},
		BuildFiles:   []string{"docker/Dockerfile"},
	})
	table.add("cpu", Variant{
		Requirements: []string{"common.txt", "cpu.txt", "cpu-build.txt"},
		BuildFiles:   []string{"docker/Dockerfile.cpu"},
	})
	table.add("tpu", Variant{
		Requirements: []string{"common.txt", "tpu.txt"},
		BuildFiles:   []string{"docker/Dockerfile.tpu"},
	})
	table.add("xpu", Variant{
		Requirements: []string{"common.txt", "xpu.txt"},
		BuildFiles:   []string{"docker/Dockerfile.xpu"},
	})
	return table
}

// NewVariantTable builds a table from explicit definitions, registered in
// sorted-name order. The table is the only static configuration of the
// engine and is injected rather than global, so callers and tests can supply
// their own variants.
func NewVariantTable(variants map[string]Variant) *VariantTable {
	table := newVariantTable()
	for _, name := range sortedKeys(variants) {
		table.add(name, variants[name])
	}
	return table
}

// Load reads a variant table from a YAML file, replacing the built-in
// defaults entirely.
func Load(path string) (*VariantTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg fileConfig
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	table := newVariantTable()
	for _, name := range sortedKeys(cfg.Variants) {
		table.add(name, cfg.Variants[name])
	}
	return table, nil
}

// FindConfigFile searches the standard locations for a variant config file.
// Returns the first file found or an error when none exists.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".reqdiff.yaml",
		".reqdiff.yml",
		"reqdiff.yaml",
		"reqdiff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Names returns the variant keys in declaration order.
func (t *VariantTable) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Lookup finds a variant by key, case-insensitively.
func (t *VariantTable) Lookup(key string) (Variant, bool) {
	v, ok := t.variants[strings.ToLower(key)]
	return v, ok
}

// Resolve maps a selector to the ordered descriptor list to compare. A known
// variant key yields its configured bundle (requirement files first, then
// build files). Anything else is treated as a literal descriptor name with
// the kind inferred from the path prefix; this fallback never fails, an
// unrecognized selector always degrades to single-file mode.
func (t *VariantTable) Resolve(selector string) []domain.Descriptor {
	variant, ok := t.Lookup(selector)
	if !ok {
		return []domain.Descriptor{domain.NewDescriptor(selector)}
	}

	descriptors := make([]domain.Descriptor, 0, len(variant.Requirements)+len(variant.BuildFiles))
	for _, name := range variant.Requirements {
		descriptors = append(descriptors, domain.Descriptor{Kind: domain.RequirementFile, Name: name})
	}
	for _, name := range variant.BuildFiles {
		descriptors = append(descriptors, domain.Descriptor{Kind: domain.BuildFile, Name: name})
	}
	return descriptors
}

// IsVariant reports whether the selector names a configured variant.
func (t *VariantTable) IsVariant(selector string) bool {
	_, ok := t.Lookup(selector)
	return ok
}

func newVariantTable() *VariantTable {
	return &VariantTable{variants: make(map[string]Variant)}
}

func (t *VariantTable) add(name string, v Variant) {
	key := strings.ToLower(name)
	if _, exists := t.variants[key]; !exists {
		t.names = append(t.names, key)
	}
	t.variants[key] = v
}

// validate checks that every configured variant names at least one descriptor.
func validate(cfg *fileConfig) error {
	if len(cfg.Variants) == 0 {
		return errors.New("at least one variant must be configured")
	}

	for name, v := range cfg.Variants {
		if len(v.Requirements) == 0 && len(v.BuildFiles) == 0 {
			return fmt.Errorf(
				"variant %q must list at least one requirement or build file", name,
			)
		}
	}

	return nil
}

func sortedKeys(m map[string]Variant) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic table order regardless of YAML map iteration.
	sort.Strings(keys)
	return keys
}
