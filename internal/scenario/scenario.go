// Package scenario loads the YAML demonstration scenarios replayed by the
// lvtree console driver. A scenario names how to build one tree and which
// membership, LCA and traversal queries to run against it.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/bintree"
)

// ErrInvalidScenario is returned for malformed or inconsistent scenario files.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

//go:embed default.yaml
var defaultYAML []byte

// Kind selects the construction algorithm for a scenario tree.
type Kind string

const (
	// KindInsert inserts values one by one with BST ordering.
	KindInsert Kind = "insert"
	// KindLevelOrder places values positionally in level order.
	KindLevelOrder Kind = "level_order"
	// KindParents treats values as a parent array (-1 marks the root).
	KindParents Kind = "parents"
)

// Build describes how to construct a tree.
type Build struct {
	Kind   Kind  `yaml:"kind"`
	Values []int `yaml:"values"`
}

// Scenario is one demonstration: a tree and the queries to run on it.
type Scenario struct {
	Name       string   `yaml:"name"`
	Build      Build    `yaml:"build"`
	Contains   []int    `yaml:"contains,omitempty"`
	LCA        [][]int  `yaml:"lca,omitempty"`
	Traversals []string `yaml:"traversals,omitempty"`
	Height     bool     `yaml:"height,omitempty"`
}

// File is the top-level document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Tree constructs the tree described by b.
func (b Build) Tree() (*bintree.Tree, error) {
	switch b.Kind {
	case KindInsert:
		return bintree.FromKeys(b.Values...), nil
	case KindLevelOrder:
		return bintree.FromLevelOrder(b.Values), nil
	case KindParents:
		return bintree.FromParents(b.Values)
	default:
		return nil, fmt.Errorf("%w: unknown build kind %q", ErrInvalidScenario, b.Kind)
	}
}

// Orders resolves the traversal names of s.
func (s Scenario) Orders() ([]bintree.Order, error) {
	out := make([]bintree.Order, 0, len(s.Traversals))
	for _, name := range s.Traversals {
		o, err := bintree.ParseOrder(name)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %q: %v", ErrInvalidScenario, s.Name, err)
		}
		out = append(out, o)
	}

	return out, nil
}

// Validate checks s without building its tree.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: scenario without name", ErrInvalidScenario)
	}
	switch s.Build.Kind {
	case KindInsert, KindLevelOrder:
	case KindParents:
		if err := bintree.ValidateParents(s.Build.Values); err != nil {
			return fmt.Errorf("%w: scenario %q: %v", ErrInvalidScenario, s.Name, err)
		}
	default:
		return fmt.Errorf("%w: scenario %q: unknown build kind %q", ErrInvalidScenario, s.Name, s.Build.Kind)
	}
	for i, pair := range s.LCA {
		if len(pair) != 2 {
			return fmt.Errorf("%w: scenario %q: lca[%d] has %d keys, want 2", ErrInvalidScenario, s.Name, i, len(pair))
		}
	}
	_, err := s.Orders()

	return err
}

// Validate checks every scenario and rejects duplicate names.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	names := make(map[string]bool, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidScenario, s.Name)
		}
		names[s.Name] = true
	}

	return nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load reads and parses the scenario file at path on fs.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Default returns the built-in demonstration scenarios.
func Default() *File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded default is invalid: %v", err))
	}

	return f
}
