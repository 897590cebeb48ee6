package linreg

import (
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/core/spec"
	"github.com/YuminosukeSato/modelspec/engine"
	"github.com/YuminosukeSato/modelspec/pkg/errors"
)

// specDoc is the YAML shape of a linear regression spec, so a specification
// can live in a pipeline configuration file. Unset hyperparameters render as
// null.
type specDoc struct {
	Spec           string                 `yaml:"spec"`
	Mode           string                 `yaml:"mode"`
	Regularization param.Number           `yaml:"regularization"`
	Mixture        param.Number           `yaml:"mixture"`
	EngineArgs     map[string]interface{} `yaml:"engine_args,omitempty"`
	Engine         string                 `yaml:"engine,omitempty"`
}

// MarshalYAML serializes the spec. Only literal engine arguments have a
// stable textual form; a spec holding deferred thunks fails with
// ErrNotSerializable.
func (s *Spec) MarshalYAML() (interface{}, error) {
	doc := specDoc{
		Spec:           specType,
		Mode:           string(s.mode),
		Regularization: s.regularization,
		Mixture:        s.mixture,
		Engine:         s.Engine(),
	}

	if len(s.engineArgs) > 0 {
		doc.EngineArgs = make(map[string]interface{}, len(s.engineArgs))
		for k, v := range s.engineArgs {
			lit, ok := v.Literal()
			if !ok {
				return nil, errors.Wrapf(errors.ErrNotSerializable, "engine argument %q", k)
			}
			doc.EngineArgs[k] = lit
		}
	}

	return doc, nil
}

// UnmarshalYAML rebuilds a spec through the validating constructor, then
// re-binds the engine when one is named. Unknown spec types are rejected.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	var doc specDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	if doc.Spec != "" && doc.Spec != specType {
		return errors.NewUsageError("linreg.UnmarshalYAML",
			"document describes spec type \""+doc.Spec+"\", not \""+specType+"\"")
	}

	opts := []Option{}
	if doc.Mode != "" {
		opts = append(opts, WithMode(spec.Mode(doc.Mode)))
	}
	if v, ok := doc.Regularization.Get(); ok {
		opts = append(opts, WithRegularization(v))
	}
	if v, ok := doc.Mixture.Get(); ok {
		opts = append(opts, WithMixture(v))
	}
	for k, v := range doc.EngineArgs {
		opts = append(opts, WithEngineArg(k, engine.Lit(v)))
	}

	built, err := New(opts...)
	if err != nil {
		return err
	}
	if doc.Engine != "" {
		built, err = built.BindEngine(doc.Engine)
		if err != nil {
			return err
		}
	}

	*s = *built
	return nil
}

// ToYAML renders the spec as a YAML document.
func (s *Spec) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// FromYAML parses a YAML document produced by ToYAML, or written by hand.
func FromYAML(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
