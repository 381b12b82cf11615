package raster

// paramKind tags the closed set of value types a Param can hold.
type paramKind int

const (
	paramString paramKind = iota
	paramInt
	paramFloat
	paramBool
)

// Param is one entry of a raster's additional-parameter bag. It holds
// exactly one of a string, int64, float64 or bool; typed accessors report
// whether the requested representation matches.
type Param struct {
	kind paramKind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringParam wraps a string value.
func StringParam(v string) Param { return Param{kind: paramString, s: v} }

// IntParam wraps an integer value.
func IntParam(v int64) Param { return Param{kind: paramInt, i: v} }

// FloatParam wraps a floating-point value.
func FloatParam(v float64) Param { return Param{kind: paramFloat, f: v} }

// BoolParam wraps a boolean value.
func BoolParam(v bool) Param { return Param{kind: paramBool, b: v} }

// StringValue returns the string value and whether the param holds one.
func (p Param) StringValue() (string, bool) { return p.s, p.kind == paramString }

// IntValue returns the integer value and whether the param holds one.
func (p Param) IntValue() (int64, bool) { return p.i, p.kind == paramInt }

// FloatValue returns the float value and whether the param holds one.
func (p Param) FloatValue() (float64, bool) { return p.f, p.kind == paramFloat }

// BoolValue returns the boolean value and whether the param holds one.
func (p Param) BoolValue() (bool, bool) { return p.b, p.kind == paramBool }

// Params is a string-keyed bag of descriptive parameters attached to a
// raster (sensor name, acquisition notes and the like). A missing key is
// reported as absent by Lookup, never as a zero value, so "key absent" and
// "value is empty" stay distinguishable.
type Params map[string]Param

// Lookup returns the parameter for key and whether it is present.
func (p Params) Lookup(key string) (Param, bool) {
	v, ok := p[key]
	return v, ok
}

// clone copies the bag so the raster owns its parameters.
func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
