package request

import (
	"net/url"
	"strings"
)

// Param is one name/value pair of a request.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered parameter set. Unlike url.Values it keeps insertion
// order, which the service's form parser does not need but which makes
// bodies reproducible and easy to compare.
type Params []Param

// Add appends a parameter.
func (p *Params) Add(name, value string) {
	*p = append(*p, Param{Name: name, Value: value})
}

// Get returns the first value stored under name.
func (p Params) Get(name string) (string, bool) {
	for _, kv := range p {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return "", false
}

// Has reports whether name is present.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns the parameter names in order.
func (p Params) Names() []string {
	out := make([]string, len(p))
	for i, kv := range p {
		out[i] = kv.Name
	}
	return out
}

// Encode renders p as application/x-www-form-urlencoded, preserving order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Values converts p to url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for _, kv := range p {
		v.Add(kv.Name, kv.Value)
	}
	return v
}
