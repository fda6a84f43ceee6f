// Package encode renders values back to source text.
//
// The output is canonical: one space between items, shorthand expanded to
// its tuple form, struct and table entries in their stored order.  Parsing
// the output yields a value equal to the input.
//
// # Usage
//
//	v, err := parse.Parse(src)
//	...
//	err = encode.Encode(v, os.Stdout)
//
//	// Multi-line layout with colors
//	err = encode.Encode(v, os.Stdout,
//		encode.EncodeIndent(2),
//		encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/xificurC/janet-lang.org/value - parsed values
//   - github.com/xificurC/janet-lang.org/parse - parse text to values
package encode
