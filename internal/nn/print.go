package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/bnn/internal/matrix"
)

// PrintCase runs input through the network and writes the input, the
// computed output and the expected output to w, each as a single row.
func (n *Network[T]) PrintCase(w io.Writer, input, expected *matrix.Dense[T]) error {
	if err := checkVector("print: expected", expected, n.sizes[len(n.sizes)-1]); err != nil {
		return err
	}
	if err := n.Forward(input); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Input is :\n%s\nOutput is :\n%s\nExpected output is :\n%s\n",
		input.Transposed(), n.Result().Transposed(), expected.Transposed())
	return err
}
