// Package weakham: parameter, result, and collaborator types.
package weakham

import (
	"gopkg.in/yaml.v3"

	"github.com/nelsonlachini/hadron/lattice"
)

// Diagram labels and the top-level output key, fixed by the physical
// basis convention of the weak effective Hamiltonian.
const (
	// SaucerLabel labels the connected-loop (Saucer) diagram result.
	SaucerLabel = "HW_S"
	// EyeLabel labels the traced-loop (Eye) diagram result.
	EyeLabel = "HW_E"
	// OutputKey is the top-level key both results are written under.
	OutputKey = "HW_Eye"
)

// Params names the four quark inputs and fixes the sink time and output
// path for one execution. The surrounding configuration layer owns how
// these values are produced; the engine only consumes them.
//
// Q1 must resolve to a sink-smeared (sliced) propagator; Q2–Q4 must
// resolve to full-volume propagator fields.
type Params struct {
	Q1     string `yaml:"q1"`
	Q2     string `yaml:"q2"`
	Q3     string `yaml:"q3"`
	Q4     string `yaml:"q4"`
	TSnk   int    `yaml:"tSnk"`
	Output string `yaml:"output"`
}

// Inputs records the resolved input names inside a Result.
type Inputs struct {
	Q1 string `yaml:"q1"`
	Q2 string `yaml:"q2"`
	Q3 string `yaml:"q3"`
	Q4 string `yaml:"q4"`
}

// Correlator is a time-ordered sequence of complex values, one per time
// slice of the lattice. It marshals to YAML as a list of {re, im} pairs
// because the YAML type system has no native complex scalar.
type Correlator []complex128

// yamlComplex is the on-disk shape of one correlator entry.
type yamlComplex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Correlator) MarshalYAML() (interface{}, error) {
	out := make([]yamlComplex, len(c))
	for t, v := range c {
		out[t] = yamlComplex{Re: real(v), Im: imag(v)}
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, inverse of MarshalYAML.
func (c *Correlator) UnmarshalYAML(node *yaml.Node) error {
	var raw []yamlComplex
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Correlator, len(raw))
	for t, v := range raw {
		out[t] = complex(v.Re, v.Im)
	}
	*c = out

	return nil
}

// Result packages one diagram's correlator with its metadata.
type Result struct {
	// Label identifies the diagram: SaucerLabel or EyeLabel.
	Label string `yaml:"label"`
	// Correlator holds one complex value per time slice.
	Correlator Correlator `yaml:"corr"`
	// Inputs records the four quark input names.
	Inputs Inputs `yaml:"inputs"`
	// SinkTime is the sink time slice q1 was evaluated at.
	SinkTime int `yaml:"tSnk"`
	// RunID identifies the execution that produced this result.
	RunID string `yaml:"runId"`
}

// Environment resolves named inputs to typed field objects and reports
// the lattice shape. Resolution failures (unknown name, wrong kind) must
// wrap ErrUnresolvedInput.
type Environment interface {
	// SlicedPropagator resolves name to a sink-smeared propagator.
	SlicedPropagator(name string) (*lattice.SlicedPropagator, error)
	// PropagatorField resolves name to a full-volume propagator field.
	PropagatorField(name string) (*lattice.PropagatorField, error)
	// Geometry reports the lattice the environment's fields live on.
	Geometry() *lattice.Geometry
}

// ResultWriter persists one execution's results. The engine performs
// exactly one Write per successful execution, with both Results in
// diagram order; implementations may block but are never retried.
type ResultWriter interface {
	Write(path, key string, results []Result) error
}
