package warcraft

// Vector3 is a three-component float vector.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Quaternion is a rotation.
type Quaternion struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vector3
	Max Vector3
}

// RGBA is a colour stored in red, green, blue, alpha order.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// BGRA is a colour stored in blue, green, red, alpha order.
type BGRA struct {
	B uint8
	G uint8
	R uint8
	A uint8
}

// Range is an inclusive range of unsigned integers.
type Range struct {
	Min uint32
	Max uint32
}
