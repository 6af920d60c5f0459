package wire

import (
	"github.com/arjunveer/pgwire/oid"
)

// Point is a geometric (x, y) pair (§4.6).
type Point struct{ X, Y float64 }

func readPoint(c *Cursor) (Point, error) {
	x, err := c.ReadFloat64()
	if err != nil {
		return Point{}, err
	}
	y, err := c.ReadFloat64()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func readPointBin(c *Cursor) (interface{}, error) { return readPoint(c) }

// Line is the coefficients of Ax + By + C = 0.
type Line struct{ A, B, C float64 }

func readLineBin(c *Cursor) (interface{}, error) {
	a, err := c.ReadFloat64()
	if err != nil {
		return nil, err
	}
	b, err := c.ReadFloat64()
	if err != nil {
		return nil, err
	}
	cc, err := c.ReadFloat64()
	if err != nil {
		return nil, err
	}
	return Line{A: a, B: b, C: cc}, nil
}

// LineSegment is a pair of endpoints.
type LineSegment struct{ P1, P2 Point }

func readLsegBin(c *Cursor) (interface{}, error) {
	p1, err := readPoint(c)
	if err != nil {
		return nil, err
	}
	p2, err := readPoint(c)
	if err != nil {
		return nil, err
	}
	return LineSegment{P1: p1, P2: p2}, nil
}

// Box is two corner points; PostgreSQL always emits the high corner
// first then the low corner (§4.6).
type Box struct{ High, Low Point }

func readBoxBin(c *Cursor) (interface{}, error) {
	high, err := readPoint(c)
	if err != nil {
		return nil, err
	}
	low, err := readPoint(c)
	if err != nil {
		return nil, err
	}
	return Box{High: high, Low: low}, nil
}

// Circle is a center point and a radius.
type Circle struct {
	Center Point
	Radius float64
}

func readCircleBin(c *Cursor) (interface{}, error) {
	center, err := readPoint(c)
	if err != nil {
		return nil, err
	}
	radius, err := c.ReadFloat64()
	if err != nil {
		return nil, err
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Path is a sequence of points, either closed (polygon-like) or open.
type Path struct {
	Closed bool
	Points []Point
}

func readPathOrPolygon(c *Cursor, closed bool) (interface{}, error) {
	n, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	points := make([]Point, n)
	for i := range points {
		p, err := readPoint(c)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return Path{Closed: closed, Points: points}, nil
}

func readPathBin(c *Cursor) (interface{}, error) {
	isClosed, err := c.ReadBool()
	if err != nil {
		return nil, err
	}
	return readPathOrPolygon(c, isClosed)
}

// Polygon is always a closed sequence of points with no separate
// closed flag on the wire (§4.6).
func readPolygonBin(c *Cursor) (interface{}, error) {
	return readPathOrPolygon(c, true)
}

func registerGeometric(r *Registry) {
	r.register(oid.Point, nil, readPointBin)
	r.register(oid.Line, nil, readLineBin)
	r.register(oid.Lseg, nil, readLsegBin)
	r.register(oid.Box, nil, readBoxBin)
	r.register(oid.Circle, nil, readCircleBin)
	r.register(oid.Path, nil, readPathBin)
	r.register(oid.Polygon, nil, readPolygonBin)
}
