// Package endpoint holds the static catalog of remote operations.
//
// Each Descriptor names one endpoint of the service: its path below
// interface/rest/, the HTTP method, whether the session token is injected,
// and the ordered schema of body parameters with their defaults. The
// request builder consumes descriptors; nothing here performs I/O.
package endpoint

import "net/http"

// FieldKind selects how a value is validated and rendered on the wire.
type FieldKind int

const (
	Text    FieldKind = iota // string, sent as-is
	Int                      // int / int64, decimal
	Decimal                  // float64, at least one fractional digit
)

// Field declares one body parameter.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	// Default is used when the caller did not supply the field. Its Go type
	// matches Kind: string, int64 or float64. nil means the zero value.
	Default any
	// OmitEmpty drops the field from the body when no non-zero value was
	// supplied (partial updates).
	OmitEmpty bool
	// AllowZero accepts 0 for a Required numeric field.
	AllowZero bool
	// Positive requires a numeric value > 0 when present.
	Positive bool
}

// Descriptor is the immutable description of one endpoint.
type Descriptor struct {
	Name         string
	Path         string // relative to interface/rest/, may contain {id}
	Method       string
	RequiresAuth bool
	// PathParam names the identifier substituted for {id} in Path.
	PathParam string
	Fields    []Field
}

// HasBody reports whether parameters travel in a form body.
func (d Descriptor) HasBody() bool { return d.Method != http.MethodGet }

// Field returns the schema entry called name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ParamNames returns every name that can appear in a built request, in
// wire order, including the injected access token.
func (d Descriptor) ParamNames() []string {
	names := make([]string, 0, len(d.Fields)+1)
	if d.RequiresAuth {
		names = append(names, AccessTokenParam)
	}
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// AccessTokenParam is the body parameter carrying the session token.
const AccessTokenParam = "accesstoken"

// TenantParam is the multi-tenant selector sent at sign-in.
const TenantParam = "cid"

func text(name string) Field { return Field{Name: name, Kind: Text, Default: ""} }
func integer(name string) Field { return Field{Name: name, Kind: Int, Default: int64(0)} }
func decimal(name string) Field { return Field{Name: name, Kind: Decimal, Default: float64(0)} }
func requiredText(name string) Field { return Field{Name: name, Kind: Text, Required: true} }
func requiredInt(name string) Field { return Field{Name: name, Kind: Int, Required: true} }
func omitText(name string) Field { return Field{Name: name, Kind: Text, OmitEmpty: true} }
func omitDecimal(name string) Field { return Field{Name: name, Kind: Decimal, OmitEmpty: true} }
