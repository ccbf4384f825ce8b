package options

// Kind tags how a loose flag was given on the command line.
type Kind int

const (
	// Absent means the flag was not passed.
	Absent Kind = iota

	// Default means the flag was passed without a value.
	Default

	// Named means the flag was passed with an explicit value.
	Named
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case Named:
		return "named"
	default:
		return "absent"
	}
}

// BareValue is the value pflag records for a loose flag given without
// "=value" (its NoOptDefVal).
const BareValue = "true"

// Value is a flag that may be absent, bare, or carry a name.
type Value struct {
	Kind Kind
	Name string
}

// NamedValue returns a Value carrying name.
func NamedValue(name string) Value {
	return Value{Kind: Named, Name: name}
}

// ParseLoose builds a Value from a flag's changed state and raw text.
func ParseLoose(changed bool, raw string) Value {
	if !changed {
		return Value{Kind: Absent}
	}
	if raw == "" || raw == BareValue {
		return Value{Kind: Default}
	}
	return NamedValue(raw)
}
