// Package track generates drivable track geometry from control points and
// stores it in a line-oriented text format.
//
// # Geometry
//
// A track's centerline is a chain of cubic Béziers ([CubicBez]). The first
// segment is defined by four points; every further segment reuses the end of
// its predecessor as its start and adds three points (see [Chain] and
// [Builder]), making the centerline continuous.
//
// Each segment is resampled so that its samples are approximately equally
// spaced by distance traveled rather than by curve parameter
// ([CubicBez.SampleArclen]). The samples of all segments are concatenated
// ([Centerline]) and offset by half the track width along the local normal to
// produce the left and right boundaries ([Boundaries]). [Build] performs all
// of these steps.
//
// Points, tangents and normals all use the same [Point] type. Normals are
// tangents rotated counter-clockwise, so in a y-up coordinate system the
// left boundary lies on the left when traveling from a segment's P0 to its
// P3.
//
// # Track files
//
// [WriteTrack] and [ReadTrack] convert between a [Track] and its textual
// representation:
//
//	WIDTH 5
//	SEGMENTS 1
//
//	SEGMENT 0
//	CONTROL_POINTS 4
//	0 0
//	0 10
//	10 10
//	10 0
//
//	LEFT_BOUNDARY 2
//	-2.5 0
//	12.5 0
//
//	RIGHT_BOUNDARY 2
//	2.5 0
//	7.5 0
//
// Reading is strict: besides blank lines, which may appear between any two
// records, every deviation from the format aborts the read with a
// [*FormatError] or [*ParseError]. [SaveFile] replaces files atomically.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package track
