// Package format names the output formats values can be rendered to.
//
// TextFormat is the native source syntax; JSONFormat and YAMLFormat are
// lossy exports through the natural Go representation of a value.
//
// # Related Packages
//
//   - github.com/xificurC/janet-lang.org/encode - render values as text
//   - github.com/xificurC/janet-lang.org/value - parsed values
package format
