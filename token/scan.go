package token

// Symbol returns the length of the maximal symbol-constituent run at the
// start of d.  The run's semantic kind (symbol, keyword, number candidate)
// is decided by the caller.
func Symbol(d []byte) int {
	i := 0
	for i < len(d) {
		if !IsSymbolChar(d[i]) {
			return i
		}
		i++
	}
	return i
}
