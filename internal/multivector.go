package internal

// Raw coordinate algebra for 2D projective geometric algebra, with no
// geometric meaning attached yet. The basis is e0, e1, e2 where e0 squares to
// zero (the ideal axis) and e1, e2 square to one.
//
// Bivectors represent generalized points: x·e20 + y·e01 + w·e12, where w is the
// weight. Vectors represent lines: d·e0 + nx·e1 + ny·e2 for the line
// nx·x + ny·y + d = 0. Even values (scalar + bivector) are motors.
//
// All products are written out in closed form. They are plain polynomials in
// the coordinates, so they stay well behaved near the identity operator.

type Bivector struct {
	E20, E01, E12 float64
}

type Vector struct {
	E0, E1, E2 float64
}

// Even is the scalar + bivector part of the algebra. Unit Even values (S² +
// E12² = 1) are motors.
type Even struct {
	S, E01, E20, E12 float64
}

// Bivector arithmetic

func (a Bivector) Add(b Bivector) Bivector {
	return Bivector{a.E20 + b.E20, a.E01 + b.E01, a.E12 + b.E12}
}

func (a Bivector) Sub(b Bivector) Bivector {
	return Bivector{a.E20 - b.E20, a.E01 - b.E01, a.E12 - b.E12}
}

func (a Bivector) Scale(k float64) Bivector {
	return Bivector{a.E20 * k, a.E01 * k, a.E12 * k}
}

func (a Bivector) Neg() Bivector {
	return a.Scale(-1)
}

// Dual maps point space to line space: e12 → e0, e20 → e1, e01 → e2. The map
// is its own inverse.
func (a Bivector) Dual() Vector {
	return Vector{E0: a.E12, E1: a.E20, E2: a.E01}
}

// Join is the regressive product a ∨ b: the line through both generalized
// points. It is antisymmetric, so swapping the operands flips the line's
// orientation. Joining two ideal points gives the line at infinity (E1 = E2 =
// 0).
func (a Bivector) Join(b Bivector) Vector {
	return Vector{
		E0: a.E20*b.E01 - a.E01*b.E20,
		E1: a.E01*b.E12 - a.E12*b.E01,
		E2: a.E12*b.E20 - a.E20*b.E12,
	}
}

func (a Bivector) Equal(b Bivector) bool {
	return IsNearly(a.E20, b.E20) && IsNearly(a.E01, b.E01) && IsNearly(a.E12, b.E12)
}

// Vector arithmetic

func (a Vector) Add(b Vector) Vector {
	return Vector{a.E0 + b.E0, a.E1 + b.E1, a.E2 + b.E2}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.E0 - b.E0, a.E1 - b.E1, a.E2 - b.E2}
}

func (a Vector) Scale(k float64) Vector {
	return Vector{a.E0 * k, a.E1 * k, a.E2 * k}
}

func (a Vector) Neg() Vector {
	return a.Scale(-1)
}

// Dual maps line space back to point space. Inverse of Bivector.Dual.
func (a Vector) Dual() Bivector {
	return Bivector{E20: a.E1, E01: a.E2, E12: a.E0}
}

// Meet is the outer product a ∧ b: the intersection of two lines. Parallel
// lines meet in an ideal point (zero weight).
func (a Vector) Meet(b Vector) Bivector {
	return Bivector{
		E20: a.E2*b.E0 - a.E0*b.E2,
		E01: a.E0*b.E1 - a.E1*b.E0,
		E12: a.E1*b.E2 - a.E2*b.E1,
	}
}

// NormSqr is the Euclidean norm of the line's normal. The e0 part squares to
// zero, so it does not contribute.
func (a Vector) NormSqr() float64 {
	return a.E1*a.E1 + a.E2*a.E2
}

// Mul is the geometric product of two vectors. Read as mirrors, b·a applied as
// a sandwich reflects in a first and then in b, so the product of two mirrors
// is the motor for that pair of reflections.
func (a Vector) Mul(b Vector) Even {
	return Even{
		S:   a.E1*b.E1 + a.E2*b.E2,
		E01: a.E0*b.E1 - a.E1*b.E0,
		E20: a.E2*b.E0 - a.E0*b.E2,
		E12: a.E1*b.E2 - a.E2*b.E1,
	}
}

// ReflectBivector computes -a X a / (a·a). The sign keeps the weight of the
// result equal to the weight of the input, so points stay points with weight
// 1, and ideal points keep their magnitude.
func (a Vector) ReflectBivector(x Bivector) Bivector {
	n, m, d := a.E1, a.E2, a.E0
	k := 1 / a.NormSqr()
	return Bivector{
		E20: (m*m*x.E20 - n*n*x.E20 - 2*m*n*x.E01 - 2*d*n*x.E12) * k,
		E01: (n*n*x.E01 - m*m*x.E01 - 2*m*n*x.E20 - 2*d*m*x.E12) * k,
		E12: x.E12,
	}
}

// ReflectVector computes -a X a / (a·a) for a line X. Applying it twice with
// the same mirror is the identity.
func (a Vector) ReflectVector(x Vector) Vector {
	n, m, d := a.E1, a.E2, a.E0
	k := 1 / a.NormSqr()
	return Vector{
		E0: (x.E0*(n*n+m*m) - 2*d*(x.E1*n+x.E2*m)) * k,
		E1: (x.E1*(m*m-n*n) - 2*x.E2*m*n) * k,
		E2: (x.E2*(n*n-m*m) - 2*x.E1*m*n) * k,
	}
}

func (a Vector) Equal(b Vector) bool {
	return IsNearly(a.E0, b.E0) && IsNearly(a.E1, b.E1) && IsNearly(a.E2, b.E2)
}

// Even arithmetic

// Mul is the geometric product a·b. As operators, a.Mul(b) applies b first
// and then a.
func (a Even) Mul(b Even) Even {
	return Even{
		S:   a.S*b.S - a.E12*b.E12,
		E01: a.S*b.E01 + a.E01*b.S - a.E12*b.E20 + a.E20*b.E12,
		E20: a.S*b.E20 + a.E20*b.S + a.E12*b.E01 - a.E01*b.E12,
		E12: a.S*b.E12 + a.E12*b.S,
	}
}

// Reverse negates the bivector part. For a unit motor this is its inverse.
func (a Even) Reverse() Even {
	return Even{a.S, -a.E01, -a.E20, -a.E12}
}

// NormSqr is the Euclidean norm. The ideal parts square to zero.
func (a Even) NormSqr() float64 {
	return a.S*a.S + a.E12*a.E12
}

// SandwichBivector computes a X ã.
func (a Even) SandwichBivector(x Bivector) Bivector {
	s, p, q, c := a.S, a.E01, a.E20, a.E12
	ss, cc, cs := s*s, c*c, c*s
	return Bivector{
		E20: (ss-cc)*x.E20 + 2*cs*x.E01 + 2*x.E12*(q*c-p*s),
		E01: (ss-cc)*x.E01 - 2*cs*x.E20 + 2*x.E12*(p*c+q*s),
		E12: (ss + cc) * x.E12,
	}
}

// SandwichVector computes a X ã for a line X.
func (a Even) SandwichVector(x Vector) Vector {
	s, p, q, c := a.S, a.E01, a.E20, a.E12
	ss, cc, cs := s*s, c*c, c*s
	return Vector{
		E0: (ss+cc)*x.E0 + 2*p*(c*x.E2+s*x.E1) + 2*q*(c*x.E1-s*x.E2),
		E1: (ss-cc)*x.E1 + 2*cs*x.E2,
		E2: (ss-cc)*x.E2 - 2*cs*x.E1,
	}
}

func (a Even) Equal(b Even) bool {
	return IsNearly(a.S, b.S) && IsNearly(a.E01, b.E01) &&
		IsNearly(a.E20, b.E20) && IsNearly(a.E12, b.E12)
}

// Linear interpolation of raw coordinates. Callers are responsible for making
// sure the operands belong to the same class.

func LerpBivector(a, b Bivector, t float64) Bivector {
	return a.Add(b.Sub(a).Scale(t))
}

func LerpVector(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Scale(t))
}
