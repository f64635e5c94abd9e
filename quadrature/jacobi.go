// Package quadrature provides Gauss quadrature rules on [-1,1] and their
// tensor products on axis-aligned boxes and box faces.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 Gauss quadrature points and weights for the
// Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1], from the eigen-decomposition
// of the symmetric tridiagonal Jacobi matrix (Golub-Welsch).
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	if N < 0 {
		panic(fmt.Sprintf("quadrature: negative order %d", N))
	}
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2.)}, []float64{Gamma0(alpha, beta)}
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: d0[i] = -(α²-β²)/((2i+α+β)(2i+α+β+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2.))
	}
	if alpha+beta < 10*1.e-16 {
		d0[0] = 0.
	}

	// upper diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		d1[i] = 2.0 / (h1[i] + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3),
		)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(NewSymTriDiagonal(d0, d1), true); !ok {
		panic("quadrature: eigenvalue decomposition failed")
	}
	X = eig.Values(nil)

	var V mat.Dense
	eig.VectorsTo(&V)
	W = make([]float64, N+1)
	g0 := Gamma0(alpha, beta)
	for i := range W {
		v := V.At(0, i)
		W[i] = v * v * g0
	}
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto points, the zeros of
// (1-x²) P'_N^{alpha,beta}(x)
func JacobiGL(alpha, beta float64, N int) []float64 {
	switch N {
	case 0:
		return []float64{0.0}
	case 1:
		return []float64{-1.0, 1.0}
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	x := make([]float64, N+1)
	x[0] = -1.0
	copy(x[1:N], xint)
	x[N] = 1.0
	return x
}

// GaussLegendre returns the n-point Gauss-Legendre rule on [-1,1], exact for
// polynomials up to degree 2n-1
func GaussLegendre(n int) (X, W []float64) {
	if n < 1 {
		panic(fmt.Sprintf("quadrature: Gauss-Legendre rule needs at least one point, got %d", n))
	}
	return JacobiGQ(0, 0, n-1)
}

// GaussLobatto returns the n-point Gauss-Lobatto rule on [-1,1], including
// both end points and exact for polynomials up to degree 2n-3
func GaussLobatto(n int) (X, W []float64) {
	if n < 2 {
		panic(fmt.Sprintf("quadrature: Gauss-Lobatto rule needs at least two points, got %d", n))
	}
	N := n - 1
	X = JacobiGL(0, 0, N)
	P := JacobiP(X, 0, 0, N)
	W = make([]float64, n)
	fN := float64(N)
	for i := range W {
		W[i] = (2*fN + 1) / (fN * (fN + 1) * P[i] * P[i])
	}
	return
}

// Gamma0 is the integral of the Jacobi weight over [-1,1]
func Gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	return math.Gamma(alpha+1.) * math.Gamma(beta+1.) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// NewSymTriDiagonal builds the symmetric matrix with diagonal d0 and
// off-diagonal d1
func NewSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	tri := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		tri.SetSym(i, i, d0[i])
		if i < n-1 {
			tri.SetSym(i, i+1, d1[i])
		}
	}
	return tri
}
