package vrs

// Options controls parser strictness and legacy shape acceptance. It is
// threaded explicitly through every parse call; there is no ambient global
// mode, so concurrent parsing with differing options is safe.
type Options struct {
	// Strict rejects unknown fields during parsing and enforces the IUPAC
	// sequence alphabet on literal sequences. The lenient default ignores
	// extra fields and accepts any non-empty sequence string.
	Strict bool
	// AllowLegacy accepts deprecated shapes alongside current ones:
	// SimpleInterval, SequenceState allele states, and ChromosomeLocation.
	// Rejected by default so new producers cannot emit them accidentally.
	AllowLegacy bool
}

// DefaultOptions is the lenient mode used by the json.Unmarshaler
// implementations. Parsers that need strict or legacy behavior must be
// called directly with an explicit Options value.
var DefaultOptions = Options{}

// constructorOptions govern validation inside the New* constructors.
// Building a legacy shape programmatically is itself the opt-in, so
// AllowLegacy is set; the parse-time gate stays with the caller's Options.
var constructorOptions = Options{AllowLegacy: true}
