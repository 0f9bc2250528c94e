package scan

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reference pairs a measured pixel distance on the scan with the
// real-world distance it represents, in meters.
type Reference struct {
	Pixels float64
	Meters float64
}

// FitScale fits the scan's pixels-per-meter scale from reference
// distances by least squares. One reference gives the exact ratio;
// more references average out marking and measuring error.
func FitScale(refs []Reference) (float64, error) {
	if len(refs) == 0 {
		return 0, fmt.Errorf("need at least 1 reference distance")
	}
	for _, r := range refs {
		if r.Pixels <= 0 || r.Meters <= 0 {
			return 0, fmt.Errorf("reference distances must be positive")
		}
	}

	// Overdetermined system: meters_i * scale = pixels_i
	n := len(refs)
	A := mat.NewDense(n, 1, nil)
	B := mat.NewVecDense(n, nil)
	for i, r := range refs {
		A.Set(i, 0, r.Meters)
		B.SetVec(i, r.Pixels)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return 0, fmt.Errorf("solve scale: %w", err)
	}

	scale := params.AtVec(0)
	if scale <= 0 {
		return 0, fmt.Errorf("degenerate scale %f", scale)
	}
	return scale, nil
}
