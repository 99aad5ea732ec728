// Package metatypes defines the operator taxonomy used to classify graph
// nodes into semantic families ("metatypes"), and the registry that groups
// metatypes into the designated "input" and "output" sets consulted by the
// graph store at insertion time.
//
// A Metatype is a coarse classification of an operation - one metatype
// typically covers several framework-level operation names. Tracer adapters
// register their framework's metatypes (usually from an init function) and
// mark the ones that stand for model inputs and outputs:
//
//	conv := metatypes.NewOpMetatype("convolution", "conv1d", "conv2d", "conv3d")
//	reg := metatypes.NewRegistry()
//	_ = reg.Register(conv)
//	_ = reg.RegisterInput(metatypes.ModelInput)
//	_ = reg.RegisterOutput(metatypes.ModelOutput)
//
// The shared Default registry already carries ModelInput and ModelOutput;
// most graphs are built against it.
//
// Errors:
//
//	ErrNilMetatype       - nil metatype passed to a registry call.
//	ErrDuplicateMetatype - Register called twice for the same name.
package metatypes
