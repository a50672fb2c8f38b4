package encode

type EncodeOption func(*EncState)

// Header controls whether the `// !$*UTF8*$!` marker line is written.
func Header(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// Indent sets the string written once per nesting level.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
