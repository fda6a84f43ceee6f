package encode

import (
	"bytes"

	"github.com/xificurC/janet-lang.org/value"
)

func MustString(v *value.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
