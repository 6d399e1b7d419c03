// SPDX-License-Identifier: MIT
package affeq

import (
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/varenv"
)

type yamlVariable struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type yamlEntry struct {
	Index int    `yaml:"i"`
	Value string `yaml:"v"`
}

type yamlDoc struct {
	Vars   []yamlVariable `yaml:"vars"`
	Bottom bool           `yaml:"bottom,omitempty"`
	Rows   [][]yamlEntry  `yaml:"rows,omitempty"`
}

// Marshal serializes t to YAML (spec §6's persistence requirement),
// preserving rationals exactly as "num/den" strings rather than lossy
// floats.
func Marshal(t State) ([]byte, error) {
	doc := yamlDoc{Bottom: t.bottom}
	for _, v := range t.env.Variables() {
		doc.Vars = append(doc.Vars, yamlVariable{Name: v.Name, Kind: v.Kind.String()})
	}
	if !t.bottom {
		for _, row := range t.matrix.Rows() {
			entries := make([]yamlEntry, 0, row.NNZ())
			for _, e := range row.Entries() {
				entries = append(entries, yamlEntry{Index: e.Index, Value: e.Value.String()})
			}
			doc.Rows = append(doc.Rows, entries)
		}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, affeqErrorf("Marshal", ErrMarshal)
	}
	return out, nil
}

// Unmarshal is the dual of Marshal.
func Unmarshal(data []byte) (State, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return State{}, affeqErrorf("Unmarshal", ErrUnmarshal)
	}
	vars := make([]varenv.Variable, len(doc.Vars))
	for i, v := range doc.Vars {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return State{}, affeqErrorf("Unmarshal", err)
		}
		vars[i] = varenv.Variable{Name: v.Name, Kind: kind}
	}
	env, err := varenv.New(vars)
	if err != nil {
		return State{}, affeqErrorf("Unmarshal", err)
	}
	if doc.Bottom {
		return botEnvTraced(env, defaultTracer), nil
	}
	cols := env.Size() + 1
	rows := make([]sparsevec.SparseVector, len(doc.Rows))
	for i, row := range doc.Rows {
		entries := make([]sparsevec.Entry, 0, len(row))
		for _, e := range row {
			q, err := parseRat(e.Value)
			if err != nil {
				return State{}, affeqErrorf("Unmarshal", err)
			}
			entries = append(entries, sparsevec.Entry{Index: e.Index, Value: q})
		}
		rows[i] = sparsevec.FromEntries(cols, entries)
	}
	m, err := sparsemat.FromRows(cols, rows)
	if err != nil {
		return State{}, affeqErrorf("Unmarshal", err)
	}
	return fromMatrix(env, m, defaultTracer), nil
}

func parseKind(s string) (varenv.Kind, error) {
	switch s {
	case "int":
		return varenv.KindInt, nil
	case "rational":
		return varenv.KindRational, nil
	default:
		return 0, ErrUnmarshal
	}
}

func parseRat(s string) (rational.Rational, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(s); !ok {
		return rational.Rational{}, ErrUnmarshal
	}
	return rational.FromBigInts(r.Num(), r.Denom())
}
