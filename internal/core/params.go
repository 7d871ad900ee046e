package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value shown on the HUD.
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

// ParameterSnapshot captures the current set of values exposed by a sim or
// session.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by anything that can describe itself to the
// HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// Lookup returns the parameter stored under key, searching every group.
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

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// FloatParam builds a floating point parameter with a compact rendering.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}

// BoolParam builds a boolean parameter.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds a text parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// ParameterControl describes a HUD control that adjusts an integer parameter
// in fixed steps.
type ParameterControl struct {
	Key    string
	Label  string
	Step   int
	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Adjust returns the value one step from current in direction (-1 or +1),
// clamped to the control's bounds. ok is false when the value cannot move.
func (c ParameterControl) Adjust(current, direction int) (value int, ok bool) {
	if direction == 0 {
		return current, false
	}
	step := c.Step
	if step <= 0 {
		step = 1
	}
	value = current + direction*step
	if c.HasMin && value < c.Min {
		value = c.Min
	}
	if c.HasMax && value > c.Max {
		value = c.Max
	}
	return value, value != current
}

// ParameterControlsProvider exposes adjustable parameters to the HUD.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}
