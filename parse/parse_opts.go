package parse

type parseOpts struct {
	maxDepth int
	anyValue bool
}

type ParseOption func(*parseOpts)

// MaxDepth bounds how deeply dictionaries and lists may nest.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// AnyValue accepts any single value at top level instead of requiring a
// dictionary.
func AnyValue() ParseOption {
	return func(o *parseOpts) { o.anyValue = true }
}

const defaultMaxDepth = 256
