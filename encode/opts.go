package encode

type EncodeOption func(*EncState)

// EncodeColors renders every token through c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent lays containers out one element per line, indented n spaces
// per nesting level.  Zero keeps the output on a single line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting level, for embedding output inside
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
