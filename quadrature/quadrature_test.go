package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestGaussLegendreExactness(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x, w := GaussLegendre(n)
			assert.Len(t, x, n)
			assert.InDelta(t, 2.0, floats.Sum(w), 1.e-13)
			assert.False(t, floats.HasNaN(x))
			// ∫ x^p dx over [-1,1] for every p <= 2n-1
			for p := 0; p <= 2*n-1; p++ {
				var sum float64
				for i := range x {
					sum += w[i] * math.Pow(x[i], float64(p))
				}
				exact := 0.0
				if p%2 == 0 {
					exact = 2 / float64(p+1)
				}
				assert.InDeltaf(t, exact, sum, 1.e-12, "degree %d", p)
			}
		})
	}
}

func TestKnownGaussPoints(t *testing.T) {
	x, w := GaussLegendre(2)
	assert.InDeltaSlice(t, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, x, 1.e-14)
	assert.InDeltaSlice(t, []float64{1, 1}, w, 1.e-14)

	x, w = GaussLegendre(3)
	assert.InDeltaSlice(t, []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}, x, 1.e-14)
	assert.InDeltaSlice(t, []float64{5. / 9, 8. / 9, 5. / 9}, w, 1.e-14)
}

func TestJacobiGL(t *testing.T) {
	assert.Equal(t, []float64{0}, JacobiGL(0, 0, 0))
	assert.Equal(t, []float64{-1, 1}, JacobiGL(0, 0, 1))
	// Legendre-Gauss-Lobatto, N = 4: ±1, ±sqrt(3/7), 0
	x := JacobiGL(0, 0, 4)
	r := math.Sqrt(3. / 7.)
	assert.InDeltaSlice(t, []float64{-1, -r, 0, r, 1}, x, 1.e-13)
}

func TestBoxRules(t *testing.T) {
	lo := []float64{0, -1, 2}
	hi := []float64{2, 1, 5}

	r := Box(GaussLegendre, lo, hi, 3)
	assert.Len(t, r, 27)
	assert.InDelta(t, 2*2*3, r.Weight(), 1.e-12)

	// ∫ x y² z over the box
	var sum float64
	for _, p := range r {
		sum += p.W * p.X[0] * p.X[1] * p.X[1] * p.X[2]
	}
	exact := (4. / 2) * (2. / 3) * ((25. - 4.) / 2)
	assert.InDelta(t, exact, sum, 1.e-11)

	b := BoxBoundary(GaussLegendre, lo, hi, 2)
	assert.Len(t, b, 6*4)
	assert.InDelta(t, 2*(2*2+2*3+2*3), b.Weight(), 1.e-12)

	// Σ w n = 0 over a closed surface
	net := make([]float64, 3)
	for _, p := range b {
		for k := range net {
			net[k] += p.W * p.Normal[k]
		}
	}
	assert.InDeltaSlice(t, []float64{0, 0, 0}, net, 1.e-12)

	top := BoxFace(GaussLegendre, lo, hi, 2, 5)
	for _, p := range top {
		assert.Equal(t, 5.0, p.X[2])
		assert.Equal(t, []float64{0, 0, 1}, p.Normal)
	}
	assert.InDelta(t, 4.0, top.Weight(), 1.e-12)
}

func TestLineBox(t *testing.T) {
	r := Box(GaussLegendre, []float64{1}, []float64{3}, 2)
	assert.InDelta(t, 2.0, r.Weight(), 1.e-14)
	ends := BoxBoundary(GaussLegendre, []float64{1}, []float64{3}, 2)
	assert.Len(t, ends, 2)
	assert.Equal(t, []float64{1}, ends[0].X)
	assert.Equal(t, []float64{-1}, ends[0].Normal)
	assert.Equal(t, 1.0, ends[1].W)
	assert.Panics(t, func() { BoxFace(GaussLegendre, []float64{1}, []float64{3}, 2, 2) })
}

func TestJacobiPOrthonormal(t *testing.T) {
	x, w := GaussLegendre(6)
	for i := 0; i <= 4; i++ {
		Pi := JacobiP(x, 0, 0, i)
		for j := 0; j <= 4; j++ {
			Pj := JacobiP(x, 0, 0, j)
			var sum float64
			for k := range x {
				sum += w[k] * Pi[k] * Pj[k]
			}
			exact := 0.0
			if i == j {
				exact = 1
			}
			assert.InDeltaf(t, exact, sum, 1.e-12, "P%d P%d", i, j)
		}
	}

	// P₁ = √(3/2) x
	assert.InDeltaSlice(t, []float64{-math.Sqrt(1.5), 0, math.Sqrt(1.5)}, JacobiP([]float64{-1, 0, 1}, 0, 0, 1), 1.e-14)

	// Gauss-Jacobi nodes are the roots of the next polynomial
	xq, _ := JacobiGQ(1, 1, 3)
	assert.InDeltaSlice(t, make([]float64, 4), JacobiP(xq, 1, 1, 4), 1.e-12)
}

func TestGaussLobatto(t *testing.T) {
	x, w := GaussLobatto(3)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, x, 1.e-14)
	assert.InDeltaSlice(t, []float64{1. / 3, 4. / 3, 1. / 3}, w, 1.e-13)
	assert.Panics(t, func() { GaussLobatto(1) })

	for n := 2; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x, w := GaussLobatto(n)
			assert.Equal(t, -1.0, x[0])
			assert.Equal(t, 1.0, x[n-1])
			// ∫ x^p dx over [-1,1] for every p <= 2n-3
			for p := 0; p <= 2*n-3; p++ {
				var sum float64
				for i := range x {
					sum += w[i] * math.Pow(x[i], float64(p))
				}
				exact := 0.0
				if p%2 == 0 {
					exact = 2 / float64(p+1)
				}
				assert.InDeltaf(t, exact, sum, 1.e-12, "degree %d", p)
			}
		})
	}

	r := Box(GaussLobatto, []float64{0, 0}, []float64{2, 3}, 3)
	assert.Len(t, r, 9)
	assert.InDelta(t, 6.0, r.Weight(), 1.e-12)
	assert.Equal(t, []float64{0, 0}, r[0].X)
}
