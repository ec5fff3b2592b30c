package geo

import (
	"math"

	"github.com/soniakeys/unit"
)

// WGS-84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	semiMinorAxis = 6356752.3142
	flattening    = 1 / 298.257223563
)

func rad(deg float64) float64 { return unit.AngleFromDeg(deg).Rad() }
func deg(rad float64) float64 { return unit.Angle(rad).Deg() }

// RhumbLineDistance returns the distance in metres along the line of constant
// bearing from l to other.
func (l Location) RhumbLineDistance(other Location) float64 {
	dLat := rad(other.latitude) - rad(l.latitude)
	dLon := math.Abs(rad(other.longitude) - rad(l.longitude))
	dPhi := mercatorDelta(l.latitude, other.latitude)

	q := dLat / dPhi
	if math.IsNaN(q) || math.IsInf(q, 0) {
		// east-west line
		q = math.Cos(rad(l.latitude))
	}
	if dLon > math.Pi {
		dLon = 2*math.Pi - dLon
	}

	return math.Sqrt(dLat*dLat+q*q*dLon*dLon) * semiMajorAxis
}

// RhumbLineBearing returns the constant bearing in degrees from l to other.
func (l Location) RhumbLineBearing(other Location) float64 {
	dLon := rad(other.longitude - l.longitude)
	dPhi := mercatorDelta(l.latitude, other.latitude)

	if math.Abs(dLon) > math.Pi {
		if dLon > 0 {
			dLon = -(2*math.Pi - dLon)
		} else {
			dLon = 2*math.Pi + dLon
		}
	}

	return deg(math.Atan2(dLon, dPhi))
}

func mercatorDelta(lat1, lat2 float64) float64 {
	return math.Log(math.Tan(rad(lat2)/2+math.Pi/4)) - math.Log(math.Tan(rad(lat1)/2+math.Pi/4))
}

// GeodesicDistance returns the ellipsoidal distance in metres between l and
// other using Vincenty's inverse formula. ok is false when the iteration does
// not converge, which happens for nearly antipodal points.
func (l Location) GeodesicDistance(other Location) (metres float64, ok bool) {
	v, ok := l.vincenty(other)
	return v.distance, ok
}

// GeodesicInitialBearing returns the forward azimuth in degrees at l.
func (l Location) GeodesicInitialBearing(other Location) (float64, bool) {
	v, ok := l.vincenty(other)
	return v.initialBearing, ok
}

// GeodesicFinalBearing returns the azimuth in degrees on arrival at other.
func (l Location) GeodesicFinalBearing(other Location) (float64, bool) {
	v, ok := l.vincenty(other)
	return v.finalBearing, ok
}

type vincentyResult struct {
	distance       float64
	initialBearing float64
	finalBearing   float64
}

func (l Location) vincenty(other Location) (vincentyResult, bool) {
	L := rad(other.longitude - l.longitude)
	u1 := math.Atan((1 - flattening) * math.Tan(rad(l.latitude)))
	u2 := math.Atan((1 - flattening) * math.Tan(rad(other.latitude)))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	var (
		sinLambda, cosLambda float64
		sinSigma, cosSigma   float64
		sigma                float64
		cosSqAlpha           float64
		cos2SigmaM           float64
	)

	lambda := L
	lambdaP := 2 * math.Pi
	iterLimit := 20

	for math.Abs(lambda-lambdaP) > 1e-12 && iterLimit > 0 {
		sinLambda, cosLambda = math.Sincos(lambda)
		sinSigma = math.Sqrt((cosU2*sinLambda)*(cosU2*sinLambda) +
			(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			// coincident points
			return vincentyResult{}, true
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		if math.IsNaN(cos2SigmaM) {
			// equatorial line
			cos2SigmaM = 0
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		lambdaP = lambda
		lambda = L + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		iterLimit--
	}

	if iterLimit == 0 {
		return vincentyResult{}, false
	}

	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := b * sinSigma * (cos2SigmaM + b/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return vincentyResult{
		distance:       semiMinorAxis * a * (sigma - deltaSigma),
		initialBearing: deg(math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)),
		finalBearing:   deg(math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)),
	}, true
}
