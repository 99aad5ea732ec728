package metatypes

// Metatype is a classification tag grouping operation types into semantic
// families (e.g. "input", "output", "convolution"). Implementations must be
// immutable: the graph store shares Metatype values across snapshots.
type Metatype interface {
	// Name returns the unique taxonomy name of this metatype.
	Name() string
}

// OpMetatype is the standard Metatype implementation: a taxonomy name plus
// the framework-level operation names it covers.
type OpMetatype struct {
	name    string
	aliases []string
}

// NewOpMetatype builds an immutable OpMetatype with the given taxonomy name
// and optional operation-name aliases.
func NewOpMetatype(name string, aliases ...string) *OpMetatype {
	return &OpMetatype{
		name:    name,
		aliases: append([]string(nil), aliases...),
	}
}

// Name returns the taxonomy name of the metatype.
func (m *OpMetatype) Name() string { return m.name }

// Aliases returns a copy of the framework operation names covered by this
// metatype.
func (m *OpMetatype) Aliases() []string {
	return append([]string(nil), m.aliases...)
}

// String implements fmt.Stringer.
func (m *OpMetatype) String() string { return m.name }

// Builtin metatypes carried by the Default registry.
var (
	// ModelInput classifies the synthetic nodes standing for model inputs.
	ModelInput = NewOpMetatype("model_input")

	// ModelOutput classifies the synthetic nodes standing for model outputs.
	ModelOutput = NewOpMetatype("model_output")

	// UnknownMetatype classifies operations the tracer could not map onto
	// the taxonomy.
	UnknownMetatype = NewOpMetatype("unknown")
)
