// Package orbit converts between planar Keplerian orbital elements and
// Cartesian state vectors. All orbits handled here are bound (0 <= e < 1);
// handing either function a malformed orbit is a programming error and
// panics rather than returning a recoverable error.
package orbit

import (
	"fmt"
	"math"

	"github.com/ggwsim/ggw-server/pkg/physics"
)

const (
	maxKeplerIterations = 32
	keplerTolerance     = 1e-12
	highEccentricity    = 0.8
)

// State holds the durable representation of a free body's trajectory.
// Position and velocity are always derived from it, never the other way
// around except immediately after an impulsive burn.
type State struct {
	SemiMajorAxis      float64 // m, > 0
	Eccentricity       float64 // in [0, 1)
	ArgPeriapsis       float64 // rad
	MeanAnomalyAtEpoch float64 // rad
	Epoch              float64 // s
}

// NormalizeAngle wraps an angle into (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// solveKepler finds the eccentric anomaly E satisfying E - e*sin(E) = M
// by Newton-Raphson. Seeds E=M for low eccentricity, E=pi otherwise.
func solveKepler(m, e float64) float64 {
	eAnom := m
	if e >= highEccentricity {
		eAnom = math.Pi
	}
	for i := 0; i < maxKeplerIterations; i++ {
		f := eAnom - e*math.Sin(eAnom) - m
		fPrime := 1 - e*math.Cos(eAnom)
		if math.Abs(fPrime) < keplerTolerance {
			break
		}
		delta := f / fPrime
		eAnom -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return eAnom
}

// ToCartesian evaluates the orbit at time t and returns inertial-frame
// position and velocity. mu is the central body's gravitational parameter.
func ToCartesian(o State, mu, t float64) (physics.Vector2D, physics.Vector2D) {
	if o.SemiMajorAxis <= 0 {
		panic(fmt.Sprintf("orbit: semi-major axis must be positive, got %g", o.SemiMajorAxis))
	}
	if o.Eccentricity < 0 || o.Eccentricity >= 1 {
		panic(fmt.Sprintf("orbit: eccentricity out of range [0,1), got %g", o.Eccentricity))
	}

	a := o.SemiMajorAxis
	e := o.Eccentricity
	n := math.Sqrt(mu / (a * a * a))
	m := NormalizeAngle(o.MeanAnomalyAtEpoch + n*(t-o.Epoch))

	eAnom := solveKepler(m, e)

	cosE := math.Cos(eAnom)
	sinE := math.Sin(eAnom)
	factor := 1 - e*cosE
	sqrtOneMinusE2 := math.Sqrt(math.Max(1-e*e, 0))

	orbitalPos := physics.Vector2D{
		X: a * (cosE - e),
		Y: a * sqrtOneMinusE2 * sinE,
	}
	orbitalVel := physics.Vector2D{
		X: -a * sinE * n / factor,
		Y: a * sqrtOneMinusE2 * cosE * n / factor,
	}

	return orbitalPos.Rotate(o.ArgPeriapsis), orbitalVel.Rotate(o.ArgPeriapsis)
}

// FromCartesian recovers the orbital elements from a position/velocity
// pair observed at time t. Degenerate inputs (zero angular momentum,
// unbound or non-finite energy) indicate a malformed burn upstream and
// panic.
func FromCartesian(position, velocity physics.Vector2D, mu, t float64) State {
	r := position.Length()
	v := velocity.Length()
	h := position.Cross(velocity)
	if math.Abs(h) == 0 {
		panic("orbit: degenerate orbit (zero angular momentum)")
	}

	energy := 0.5*v*v - mu/r
	a := -mu / (2 * energy)
	if math.IsInf(a, 0) || math.IsNaN(a) || a <= 0 {
		panic(fmt.Sprintf("orbit: invalid semi-major axis %g", a))
	}

	vRadial := 0.0
	if r > 0 {
		vRadial = position.Dot(velocity) / r
	}
	term := v*v - mu/r
	eVec := position.Scale(term).Sub(velocity.Scale(vRadial * r)).Scale(1 / mu)
	e := eVec.Length()
	if e < 1e-12 {
		e = 0
	}

	omega := math.Atan2(eVec.Y, eVec.X)
	if e == 0 {
		omega = 0
	}

	rHat := physics.Vector2D{}
	if r > 0 {
		rHat = position.Scale(1 / r)
	}
	trueAnomaly := NormalizeAngle(math.Atan2(rHat.Y, rHat.X) - omega)

	cosNu := math.Cos(trueAnomaly)
	sinNu := math.Sin(trueAnomaly)
	cosE := clamp((e+cosNu)/(1+e*cosNu), -1, 1)
	sinE := clamp(math.Sqrt(math.Max(1-e*e, 0))*sinNu/(1+e*cosNu), -1, 1)
	eAnom := math.Atan2(sinE, cosE)
	meanAnomaly := eAnom - e*math.Sin(eAnom)

	return State{
		SemiMajorAxis:      a,
		Eccentricity:       e,
		ArgPeriapsis:       omega,
		MeanAnomalyAtEpoch: meanAnomaly,
		Epoch:              t,
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
