// Package parse reads source text into values.
//
// The reader is a hand-written recursive descent over bytes, one function
// per grammar rule, and is resumable: a Parser accepts input in chunks via
// Consume and reports ErrIncomplete from Next while a form is still open,
// re-scanning the open form once more bytes arrive.  Errors carry source
// positions.
//
// # Usage
//
//	p := parse.New()
//	p.Consume(src)
//	p.Eof()
//	for {
//		v, pos, err := p.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		use(v, pos)
//	}
//
// # Related Packages
//
//   - github.com/xificurC/janet-lang.org/value - parsed values
//   - github.com/xificurC/janet-lang.org/token - byte-level scanners
package parse
