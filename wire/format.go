package wire

// Format is the wire format a column or parameter is carried in (§3
// WireFormat).
type Format int

const (
	Binary Format = iota
	Text
)

func (f Format) String() string {
	if f == Text {
		return "text"
	}
	return "binary"
}
