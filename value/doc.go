// Package value defines the data values produced by the reader.
//
// A Value is a tagged union over nil, booleans, numbers, symbols, keywords,
// strings, buffers, tuples, arrays, structs and tables.  Structs and tables
// are ordered key/value pair collections; keys are unique under structural
// equality with the last written pair winning.
//
// # Related Packages
//
//   - github.com/xificurC/janet-lang.org/parse - read source text to values
//   - github.com/xificurC/janet-lang.org/encode - render values as text
package value
