// Package token provides the byte-level scanners of the reader: byte
// classification, symbol-run scanning, numeric literals, quoted strings with
// escapes, backquoted long-form literals, and source positions.
//
// The scanners are pure functions over byte slices; they carry no cursor
// state of their own.  The parse package drives them and owns positions and
// error reporting.
//
// # Related Packages
//
//   - github.com/xificurC/janet-lang.org/parse - the reader driver
//   - github.com/xificurC/janet-lang.org/value - parsed values
package token
