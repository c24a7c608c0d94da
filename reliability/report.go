package reliability

import (
	"fmt"
	"io"
)

// Report prints "k: res[k]" for k=0..len(res)-1 at 15 fractional digits.
func Report(w io.Writer, res []float64) error {
	for k, v := range res {
		if _, err := fmt.Fprintf(w, "%d: %.15f\n", k, v); err != nil {
			return err
		}
	}

	return nil
}
