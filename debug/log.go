package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsondoc/go-jsondoc/encode"
	"github.com/jsondoc/go-jsondoc/ir"
)

// Logf writes a debug line to stderr, rendering *ir.Node arguments as
// document text and maps/slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
