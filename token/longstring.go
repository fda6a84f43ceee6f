package token

// LongString scans a backquote-delimited long-form literal at d[0] == '`'.
// The opener is a run of N backquotes; the literal closes only on a later
// run of exactly N backquotes.  A longer run never closes the form and is
// copied into the content, so the scanner keeps looking past it.  No escape
// processing is applied.
//
// final distinguishes true end of input from the end of a partial buffer: a
// candidate closing run touching the end of d may still be extended by the
// next chunk, so it only closes when final is set or a non-backquote byte
// follows.  The returned content aliases d.
func LongString(d []byte, final bool) ([]byte, int, error) {
	n := 0
	for n < len(d) && d[n] == '`' {
		n++
	}
	if n == 0 {
		return nil, 0, ErrUnterminatedLong
	}
	if n == len(d) {
		// the opener is the maximal run, so a bare run of backquotes is
		// an unclosed literal (and may not even be a complete opener yet)
		return nil, 0, ErrUnterminatedLong
	}

	i := n
	for i < len(d) {
		if d[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(d) && d[j] == '`' {
			j++
		}
		run := j - i
		if run == n && (j < len(d) || final) {
			return d[n:i], j, nil
		}
		if j == len(d) && run < n && !final {
			// the run may grow into a closer with more input
			return nil, 0, ErrUnterminatedLong
		}
		i = j
	}
	return nil, 0, ErrUnterminatedLong
}
