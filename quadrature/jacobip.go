package quadrature

import "math"

// JacobiP evaluates the orthonormal Jacobi polynomial P_n^(alpha,beta) at x
func JacobiP(x []float64, alpha, beta float64, n int) []float64 {
	P := make([]float64, len(x))
	g0 := Gamma0(alpha, beta)
	for i := range P {
		P[i] = 1 / math.Sqrt(g0)
	}
	if n == 0 {
		return P
	}
	g1 := (alpha + 1) * (beta + 1) / (alpha + beta + 3) * g0
	Pold := P
	P = make([]float64, len(x))
	for i := range P {
		P[i] = ((alpha+beta+2)*x[i]/2 + (alpha-beta)/2) / math.Sqrt(g1)
	}

	// three-term recurrence
	aold := 2 / (2 + alpha + beta) * math.Sqrt((alpha+1)*(beta+1)/(alpha+beta+3))
	for i := 1; i < n; i++ {
		fi := float64(i)
		h1 := 2*fi + alpha + beta
		anew := 2 / (h1 + 2) * math.Sqrt((fi+1)*(fi+1+alpha+beta)*(fi+1+alpha)*(fi+1+beta)/(h1+1)/(h1+3))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2)
		Pnew := make([]float64, len(x))
		for j := range Pnew {
			Pnew[j] = (-aold*Pold[j] + (x[j]-bnew)*P[j]) / anew
		}
		Pold, P = P, Pnew
		aold = anew
	}
	return P
}

