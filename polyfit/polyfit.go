package polyfit

// Polynomial is an immutable fitted polynomial of the form
// c[0] + c[1]*x + c[2]*x^2 + ... + c[n]*x^n.
type Polynomial struct {
	coeffs []float64 // coeffs[i] is the coefficient of x^i
}

// At evaluates the polynomial at x via Horner's method.
//
// Complexity: O(degree).
func (p Polynomial) At(x float64) float64 {
	var result float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result*x + p.coeffs[i]
	}

	return result
}

// Derivative evaluates the polynomial's first derivative at x.
//
// Complexity: O(degree).
func (p Polynomial) Derivative(x float64) float64 {
	if len(p.coeffs) < 2 {
		return 0
	}

	var result float64
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		result = result*x + float64(i)*p.coeffs[i]
	}

	return result
}

// Degree returns the polynomial's degree (len(coeffs)-1).
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// WeightedPolyFit fits a polynomial of the given degree (1 or 2) to
// (xs[i], ys[i]) pairs, each weighted by weights[i], minimizing
// Σ wᵢ (p(xᵢ) - yᵢ)².
//
// It builds the (degree+1)x(degree+1) weighted normal-equations system
// A·c = b, where A[j][k] = Σ wᵢ xᵢ^(j+k) and b[j] = Σ wᵢ xᵢ^j yᵢ, then
// solves it with a Doolittle LU decomposition.
//
// Complexity: O(n*degree + degree^3), n = len(xs); degree ≤ 2 so the cubic
// term is a small constant in practice.
func WeightedPolyFit(degree int, weights, xs, ys []float64) (Polynomial, error) {
	if degree != 1 && degree != 2 {
		return Polynomial{}, ErrUnsupportedDegree
	}
	if len(weights) != len(xs) || len(xs) != len(ys) {
		return Polynomial{}, ErrLengthMismatch
	}
	if len(xs) < degree+1 {
		return Polynomial{}, ErrInsufficientData
	}

	n := degree + 1
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
	}
	b := make([]float64, n)

	for i := range xs {
		w := weights[i]
		x := xs[i]
		y := ys[i]

		// powers[p] = x^p for p in [0, 2*degree]
		powers := make([]float64, 2*degree+1)
		powers[0] = 1
		for p := 1; p < len(powers); p++ {
			powers[p] = powers[p-1] * x
		}

		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				A[j][k] += w * powers[j+k]
			}
			b[j] += w * powers[j] * y
		}
	}

	c, err := solve(A, b)
	if err != nil {
		return Polynomial{}, err
	}

	return Polynomial{coeffs: c}, nil
}

// solve solves the dense linear system A·x = b via Doolittle LU
// decomposition with partial pivoting, sized for the small (≤3x3) systems
// WeightedPolyFit produces.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)

	// Copy a and b so the caller's slices are untouched.
	m := make([][]float64, n)
	for i := range a {
		row := make([]float64, n+1)
		copy(row, a[i])
		row[n] = b[i]
		m[i] = row
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivotRow := col
		maxAbs := abs(m[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs(m[r][col]); v > maxAbs {
				maxAbs = v
				pivotRow = r
			}
		}
		if maxAbs < 1e-12 {
			return nil, ErrSingularSystem
		}
		m[col], m[pivotRow] = m[pivotRow], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			for k := col; k <= n; k++ {
				m[r][k] -= factor * m[col][k]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := m[row][n]
		for k := row + 1; k < n; k++ {
			sum -= m[row][k] * x[k]
		}
		x[row] = sum / m[row][row]
	}

	return x, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
