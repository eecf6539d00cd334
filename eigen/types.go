// SPDX-License-Identifier: MIT

package eigen

// History carries the complete outcome of an eigenvalue iteration: one
// estimate per step plus the final normalized eigenvector estimate.
// Both slices are freshly allocated and owned by the caller.
type History struct {
	// Estimates holds the eigenvalue estimate recorded at every step, in
	// order; len(Estimates) equals the requested iteration count.
	Estimates []float64

	// Vector is the final eigenvector estimate, normalized so that its
	// component of largest magnitude equals 1.
	Vector []float64
}

// Last returns the final eigenvalue estimate, the one a converged iteration
// reports. Returns 0 on an empty history.
func (h History) Last() float64 {
	if len(h.Estimates) == 0 {
		return 0
	}

	return h.Estimates[len(h.Estimates)-1]
}
