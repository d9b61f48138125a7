package tetris

// Shape identifies one of the seven tetrominoes. Shape values index the
// shared offset tables; the tables themselves are never mutated.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	shapeCount
)

// NumShapes is the number of defined tetromino shapes. Spawn picks a Shape
// uniformly in [0, NumShapes).
const NumShapes = int(shapeCount)

var shapeNames = [shapeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if s >= shapeCount {
		return "Shape(?)"
	}
	return shapeNames[s]
}

// shapeOffsets holds the rotation-0 local cell offsets of each shape,
// relative to the piece anchor. The I piece is vertical at rotation 0, so a
// freshly spawned piece occupies at most three columns around the anchor.
var shapeOffsets = [shapeCount][4]Point{
	ShapeI: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	ShapeS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeZ: {{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
	ShapeJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
	ShapeL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
}

// Offsets returns the shape's rotation-0 cell offsets.
func (s Shape) Offsets() [4]Point {
	if s >= shapeCount {
		panic("tetris: unknown shape " + s.String())
	}
	return shapeOffsets[s]
}
