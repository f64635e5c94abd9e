package quadrature

import "fmt"

// Point is a quadrature point in physical coordinates. Normal is the unit
// outward normal for boundary rules and nil for volume rules.
type Point struct {
	X      []float64
	W      float64
	Normal []float64
}

// Rule is a list of quadrature points
type Rule []Point

// Line returns an n-point rule on [-1,1], e.g. GaussLegendre or GaussLobatto
type Line func(n int) (X, W []float64)

// Weight returns the sum of the weights, i.e. the measure of the region
func (r Rule) Weight() (w float64) {
	for _, p := range r {
		w += p.W
	}
	return
}

// Box returns the n^d tensor product of line on the box [lo,hi]
func Box(line Line, lo, hi []float64, n int) Rule {
	checkBox(lo, hi)
	return tensorRule(line, lo, hi, n, axes(len(lo), -1), nil)
}

// BoxFace returns the tensor product of line on one face of the box [lo,hi].
// Face 2k is the low side of axis k and face 2k+1 the high side.
func BoxFace(line Line, lo, hi []float64, n, face int) Rule {
	checkBox(lo, hi)
	d := len(lo)
	if face < 0 || face >= 2*d {
		panic(fmt.Sprintf("quadrature: face %d out of range for a %d-D box", face, d))
	}
	var (
		k      = face / 2
		fixed  = lo[k]
		normal = make([]float64, d)
	)
	normal[k] = -1
	if face%2 == 1 {
		fixed = hi[k]
		normal[k] = 1
	}
	r := tensorRule(line, lo, hi, n, axes(d, k), normal)
	for _, p := range r {
		p.X[k] = fixed
	}
	return r
}

// BoxBoundary returns the union of the rules on all 2d faces of the box
func BoxBoundary(line Line, lo, hi []float64, n int) (r Rule) {
	for face := 0; face < 2*len(lo); face++ {
		r = append(r, BoxFace(line, lo, hi, n, face)...)
	}
	return
}

func checkBox(lo, hi []float64) {
	if len(lo) == 0 || len(lo) != len(hi) {
		panic(fmt.Sprintf("quadrature: box corners of length %d and %d", len(lo), len(hi)))
	}
}

// axes lists 0..d-1 except skip
func axes(d, skip int) (ax []int) {
	for k := 0; k < d; k++ {
		if k != skip {
			ax = append(ax, k)
		}
	}
	return
}

// tensorRule builds the product of 1D rules along the given axes; the
// remaining coordinates are left at zero for the caller to set
func tensorRule(line Line, lo, hi []float64, n int, ax []int, normal []float64) Rule {
	x1, w1 := line(n)
	r := Rule{{X: make([]float64, len(lo)), W: 1, Normal: normal}}
	for _, k := range ax {
		half := (hi[k] - lo[k]) / 2
		next := make(Rule, 0, len(r)*n)
		for _, p := range r {
			for i := range x1 {
				x := make([]float64, len(p.X))
				copy(x, p.X)
				x[k] = lo[k] + (x1[i]+1)*half
				next = append(next, Point{X: x, W: p.W * w1[i] * half, Normal: normal})
			}
		}
		r = next
	}
	return r
}
