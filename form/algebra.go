package form

import (
	"fmt"
	"math"
)

type unaryOp uint8

const (
	opNeg unaryOp = iota
	opTranspose
	opTr
	opDet
	opInv
)

type binaryOp uint8

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opPow
	opInner
)

type unary struct {
	op    unaryOp
	a     Expr
	shape Shape
}

type binary struct {
	op    binaryOp
	a, b  Expr
	shape Shape
}

func shapePanic(op string, a, b Expr) {
	panic(fmt.Sprintf("form: %s of incompatible shapes %s [%s] and %s [%s]",
		op, a.Shape(), a, b.Shape(), b))
}

func requireSquare(op string, a Expr) int {
	s := a.Shape()
	if s.Rank() != 2 || s[0] != s[1] {
		panic(fmt.Sprintf("form: %s needs a square rank-2 tensor, got %s [%s]", op, s, a))
	}
	return s[0]
}

func requireScalar(op string, a Expr) {
	if a.Shape().Rank() != 0 {
		panic(fmt.Sprintf("form: %s needs a scalar, got %s [%s]", op, a.Shape(), a))
	}
}

// Neg returns -a
func Neg(a Expr) Expr {
	return &unary{op: opNeg, a: a, shape: a.Shape()}
}

// Transpose returns aᵀ for a rank-2 tensor
func Transpose(a Expr) Expr {
	s := a.Shape()
	if s.Rank() != 2 {
		panic(fmt.Sprintf("form: transpose of rank-%d tensor [%s]", s.Rank(), a))
	}
	return &unary{op: opTranspose, a: a, shape: Shape{s[1], s[0]}}
}

// Tr returns the trace of a square tensor
func Tr(a Expr) Expr {
	requireSquare("trace", a)
	return &unary{op: opTr, a: a}
}

// Det returns the determinant of a square tensor
func Det(a Expr) Expr {
	requireSquare("determinant", a)
	return &unary{op: opDet, a: a}
}

// Inv returns the inverse of a square tensor. Singularity is detected only
// when the expression is evaluated.
func Inv(a Expr) Expr {
	n := requireSquare("inverse", a)
	return &unary{op: opInv, a: a, shape: Shape{n, n}}
}

// Add returns a + b for operands of equal shape
func Add(a, b Expr) Expr {
	if !a.Shape().Equal(b.Shape()) {
		shapePanic("sum", a, b)
	}
	return &binary{op: opAdd, a: a, b: b, shape: a.Shape()}
}

// Sub returns a - b for operands of equal shape
func Sub(a, b Expr) Expr {
	if !a.Shape().Equal(b.Shape()) {
		shapePanic("difference", a, b)
	}
	return &binary{op: opSub, a: a, b: b, shape: a.Shape()}
}

// Mul returns the product a*b: scaling when either operand is a scalar,
// otherwise the matrix-matrix or matrix-vector product.
func Mul(a, b Expr) Expr {
	sa, sb := a.Shape(), b.Shape()
	var shape Shape
	switch {
	case sa.Rank() == 0:
		shape = sb
	case sb.Rank() == 0:
		shape = sa
	case sa.Rank() == 2 && sb.Rank() == 2 && sa[1] == sb[0]:
		shape = Shape{sa[0], sb[1]}
	case sa.Rank() == 2 && sb.Rank() == 1 && sa[1] == sb[0]:
		shape = Shape{sa[0]}
	default:
		shapePanic("product", a, b)
	}
	return &binary{op: opMul, a: a, b: b, shape: shape}
}

// Div returns a/b for a scalar b
func Div(a, b Expr) Expr {
	requireScalar("division", b)
	return &binary{op: opDiv, a: a, b: b, shape: a.Shape()}
}

// Pow returns a^b for scalars
func Pow(a, b Expr) Expr {
	requireScalar("power", a)
	requireScalar("power", b)
	return &binary{op: opPow, a: a, b: b}
}

// Inner returns the full contraction a:b of equally shaped operands
func Inner(a, b Expr) Expr {
	if !a.Shape().Equal(b.Shape()) {
		shapePanic("inner product", a, b)
	}
	return &binary{op: opInner, a: a, b: b}
}

func (u *unary) Shape() Shape { return u.shape }

func (u *unary) String() string {
	switch u.op {
	case opNeg:
		return "-" + u.a.String()
	case opTranspose:
		return u.a.String() + "ᵀ"
	case opTr:
		return "tr(" + u.a.String() + ")"
	case opDet:
		return "det(" + u.a.String() + ")"
	default:
		return "inv(" + u.a.String() + ")"
	}
}

func (u *unary) Eval(p Point) (Value, error) {
	a, err := u.a.Eval(p)
	if err != nil {
		return Value{}, err
	}
	switch u.op {
	case opNeg:
		return scaleValue(-1, a), nil
	case opTranspose:
		return transposeValue(a), nil
	case opTr:
		return Scalar(traceValue(a)), nil
	case opDet:
		return Scalar(detValue(a)), nil
	default:
		return invValue(a)
	}
}

func (b *binary) Shape() Shape { return b.shape }

func (b *binary) String() string {
	var sym string
	switch b.op {
	case opAdd:
		sym = " + "
	case opSub:
		sym = " - "
	case opMul:
		sym = "*"
	case opDiv:
		sym = "/"
	case opPow:
		sym = "^"
	default:
		return "inner(" + b.a.String() + ", " + b.b.String() + ")"
	}
	return "(" + b.a.String() + sym + b.b.String() + ")"
}

func (b *binary) Eval(p Point) (Value, error) {
	x, err := b.a.Eval(p)
	if err != nil {
		return Value{}, err
	}
	y, err := b.b.Eval(p)
	if err != nil {
		return Value{}, err
	}
	switch b.op {
	case opAdd:
		return addValues(x, y), nil
	case opSub:
		return subValues(x, y), nil
	case opMul:
		switch {
		case x.Shape.Rank() == 0:
			return scaleValue(x.Data[0], y), nil
		case y.Shape.Rank() == 0:
			return scaleValue(y.Data[0], x), nil
		}
		return mulValues(x, y), nil
	case opDiv:
		return scaleValue(1/y.Data[0], x), nil
	case opPow:
		return Scalar(math.Pow(x.Data[0], y.Data[0])), nil
	default:
		return Scalar(innerValues(x, y)), nil
	}
}
