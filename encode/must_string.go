package encode

import (
	"bytes"

	"github.com/jsondoc/go-jsondoc/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
