package plot

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Point is a projected 2-D coordinate in figure space.
type Point struct {
	X, Y float64
}

// Camera views normalized 3-D figure space from a fixed elevation and
// azimuth (degrees) at the given distance from the origin.
type Camera struct {
	Elev     float64 `yaml:"elev"`
	Azim     float64 `yaml:"azim"`
	Distance float64 `yaml:"distance"`
}

func DefaultCamera() Camera {
	return Camera{Elev: 30, Azim: -60, Distance: 4}
}

// Project rotates p about the vertical axis by the azimuth, tilts it by the
// elevation and applies a perspective divide. Depth grows toward the viewer.
func (c Camera) Project(p Vec3) (Point, float64) {
	a := c.Azim * math.Pi / 180
	e := c.Elev * math.Pi / 180

	ca, sa := math.Cos(a), math.Sin(a)
	xr := p.X*ca - p.Y*sa
	yr := p.X*sa + p.Y*ca

	ce, se := math.Cos(e), math.Sin(e)
	sy := p.Z*ce - yr*se
	depth := p.Z*se + yr*ce

	d := c.Distance
	if d <= 0 {
		d = DefaultCamera().Distance
	}
	if depth >= d {
		depth = d * 0.99
	}
	s := d / (d - depth)
	return Point{X: xr * s, Y: sy * s}, depth
}

// normalizer maps figure coordinates into the cube [-1, 1]^3, keeping
// aspect ratio.
type normalizer struct {
	center Vec3
	scale  float64
}

func newNormalizer(b Bounds) normalizer {
	half := 0.0
	for i := range b.Min {
		half = math.Max(half, (b.Max[i]-b.Min[i])/2)
	}
	if half == 0 {
		half = 1
	}
	c := Vec3{}
	if len(b.Min) == 3 {
		c = Vec3{(b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2, (b.Min[2] + b.Max[2]) / 2}
	}
	return normalizer{center: c, scale: 1 / half}
}

func (n normalizer) apply(p Vec3) Vec3 { return p.Sub(n.center).Scale(n.scale) }

// boxEdges lists the twelve edges of the axis-aligned box spanned by b.
func boxEdges(b Bounds) [][2]Vec3 {
	lo := Vec3{b.Min[0], b.Min[1], b.Min[2]}
	hi := Vec3{b.Max[0], b.Max[1], b.Max[2]}
	v := []Vec3{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, hi.Y, lo.Z}, {lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {lo.X, hi.Y, hi.Z},
	}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	edges := make([][2]Vec3, len(ei))
	for i, e := range ei {
		edges[i] = [2]Vec3{v[e[0]], v[e[1]]}
	}
	return edges
}
