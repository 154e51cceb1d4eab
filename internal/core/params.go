package core

import "log/slog"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value a simulation was configured with.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// LogValue renders the snapshot as nested slog groups keyed by parameter key.
func (s ParameterSnapshot) LogValue() slog.Value {
	groups := make([]slog.Attr, 0, len(s.Groups))
	for _, g := range s.Groups {
		attrs := make([]any, 0, len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, slog.String(p.Key, p.Value))
		}
		groups = append(groups, slog.Group(g.Name, attrs...))
	}
	return slog.GroupValue(groups...)
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
