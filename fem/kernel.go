package fem

import "fmt"

// P1 reference basis on [0, 1]: psi_0(t) = 1-t, psi_1(t) = t. Element
// [xl, xr] maps to the reference domain by t = (x - xl)/dx, making the
// physical basis derivatives constant per element: -1/dx and 1/dx.
func refBasis(t float64) [2]float64 { return [2]float64{1 - t, t} }

// LocalStiffness computes the 2x2 element matrix of a bilinear form over one
// element by quadrature. For the Laplace form the integrand is constant, so
// any rule here is exact: dx * [[1/dx^2, -1/dx^2], [-1/dx^2, 1/dx^2]].
func LocalStiffness(xl, xr float64, a BilinearForm, q Quadrature) (ke [2][2]float64, err error) {
	dx := xr - xl
	if dx <= 0 {
		err = fmt.Errorf("%w: [%v, %v]", ErrDegenerateElement, xl, xr)
		return
	}
	dpsi := [2]float64{-1 / dx, 1 / dx}
	var p FormInput
	for k, t := range q.R {
		psi := refBasis(t)
		p.X = xl + t*dx
		w := q.W[k] * dx
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				p.Trial, p.DTrial = psi[j], dpsi[j]
				p.Test, p.DTest = psi[i], dpsi[i]
				ke[i][j] += w * a.Bilinear(&p)
			}
		}
	}
	return
}

// LocalLoad computes the 2-vector element load of a linear form over one
// element. With the trapezoid rule this is the classic endpoint scheme:
// weight dx/2 at each of xl and xr.
func LocalLoad(xl, xr float64, l LinearForm, q Quadrature) (fe [2]float64, err error) {
	dx := xr - xl
	if dx <= 0 {
		err = fmt.Errorf("%w: [%v, %v]", ErrDegenerateElement, xl, xr)
		return
	}
	dpsi := [2]float64{-1 / dx, 1 / dx}
	var p FormInput
	for k, t := range q.R {
		psi := refBasis(t)
		p.X = xl + t*dx
		w := q.W[k] * dx
		for i := 0; i < 2; i++ {
			p.Test, p.DTest = psi[i], dpsi[i]
			fe[i] += w * l.Linear(&p)
		}
	}
	return
}
