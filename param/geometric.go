package param

import (
	"fmt"
	"math"

	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/wire"
)

func putFloat64(buf []byte, f float64) {
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (56 - 8*i))
	}
}

func encodePoint(p wire.Point) []byte {
	buf := make([]byte, 16)
	putFloat64(buf[0:8], p.X)
	putFloat64(buf[8:16], p.Y)
	return buf
}

// PointHandler encodes wire.Point values, targeting POINT.
type PointHandler struct{ q queue }

func (h *PointHandler) Examine(v interface{}) error {
	p, ok := v.(wire.Point)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.Point, got %T", ErrUnsupportedValue, v))
	}
	h.q.push(encodePoint(p))
	return nil
}
func (h *PointHandler) TotalSize() int                     { return h.q.size }
func (h *PointHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *PointHandler) OID() oid.OID                       { return oid.Point }
func (h *PointHandler) ArrayOID() oid.OID                  { return oid.PointArray }
func (h *PointHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *PointHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.Point); return ok }

// LineHandler encodes wire.Line values, targeting LINE.
type LineHandler struct{ q queue }

func (h *LineHandler) Examine(v interface{}) error {
	l, ok := v.(wire.Line)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.Line, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 24)
	putFloat64(buf[0:8], l.A)
	putFloat64(buf[8:16], l.B)
	putFloat64(buf[16:24], l.C)
	h.q.push(buf)
	return nil
}
func (h *LineHandler) TotalSize() int                     { return h.q.size }
func (h *LineHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *LineHandler) OID() oid.OID                       { return oid.Line }
func (h *LineHandler) ArrayOID() oid.OID                  { return oid.LineArray }
func (h *LineHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *LineHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.Line); return ok }

// LsegHandler encodes wire.LineSegment values, targeting LSEG.
type LsegHandler struct{ q queue }

func (h *LsegHandler) Examine(v interface{}) error {
	s, ok := v.(wire.LineSegment)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.LineSegment, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 32)
	copy(buf[0:16], encodePoint(s.P1))
	copy(buf[16:32], encodePoint(s.P2))
	h.q.push(buf)
	return nil
}
func (h *LsegHandler) TotalSize() int                     { return h.q.size }
func (h *LsegHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *LsegHandler) OID() oid.OID                       { return oid.Lseg }
func (h *LsegHandler) ArrayOID() oid.OID                  { return oid.LsegArray }
func (h *LsegHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *LsegHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.LineSegment); return ok }

// BoxHandler encodes wire.Box values, targeting BOX. The wire always
// carries the high corner first (§4.6).
type BoxHandler struct{ q queue }

func (h *BoxHandler) Examine(v interface{}) error {
	b, ok := v.(wire.Box)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.Box, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 32)
	copy(buf[0:16], encodePoint(b.High))
	copy(buf[16:32], encodePoint(b.Low))
	h.q.push(buf)
	return nil
}
func (h *BoxHandler) TotalSize() int                     { return h.q.size }
func (h *BoxHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *BoxHandler) OID() oid.OID                       { return oid.Box }
func (h *BoxHandler) ArrayOID() oid.OID                  { return oid.BoxArray }
func (h *BoxHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *BoxHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.Box); return ok }

// CircleHandler encodes wire.Circle values, targeting CIRCLE.
type CircleHandler struct{ q queue }

func (h *CircleHandler) Examine(v interface{}) error {
	c, ok := v.(wire.Circle)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.Circle, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 24)
	copy(buf[0:16], encodePoint(c.Center))
	putFloat64(buf[16:24], c.Radius)
	h.q.push(buf)
	return nil
}
func (h *CircleHandler) TotalSize() int                     { return h.q.size }
func (h *CircleHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *CircleHandler) OID() oid.OID                       { return oid.Circle }
func (h *CircleHandler) ArrayOID() oid.OID                  { return oid.CircleArray }
func (h *CircleHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *CircleHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.Circle); return ok }

// PathHandler encodes wire.Path values, targeting PATH. The closed
// flag travels on the wire explicitly, unlike Polygon (§4.11).
type PathHandler struct{ q queue }

func (h *PathHandler) Examine(v interface{}) error {
	p, ok := v.(wire.Path)
	if !ok {
		return usageErr(fmt.Errorf("%w: want wire.Path, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 5+16*len(p.Points))
	if p.Closed {
		buf[0] = 1
	}
	putInt32(buf[1:5], int32(len(p.Points)))
	for i, pt := range p.Points {
		copy(buf[5+i*16:5+i*16+16], encodePoint(pt))
	}
	h.q.push(buf)
	return nil
}
func (h *PathHandler) TotalSize() int                     { return h.q.size }
func (h *PathHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *PathHandler) OID() oid.OID                       { return oid.Path }
func (h *PathHandler) ArrayOID() oid.OID                  { return oid.PathArray }
func (h *PathHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *PathHandler) AllowsType(v interface{}) bool       { _, ok := v.(wire.Path); return ok }

// Polygon is a bare point sequence, always closed, with no wire flag
// — distinct from Path so the two OIDs dispatch on Go type rather
// than on a runtime flag (§4.11).
type Polygon []wire.Point

// PolygonHandler encodes Polygon values, targeting POLYGON.
type PolygonHandler struct{ q queue }

func (h *PolygonHandler) Examine(v interface{}) error {
	p, ok := v.(Polygon)
	if !ok {
		return usageErr(fmt.Errorf("%w: want param.Polygon, got %T", ErrUnsupportedValue, v))
	}
	buf := make([]byte, 4+16*len(p))
	putInt32(buf[0:4], int32(len(p)))
	for i, pt := range p {
		copy(buf[4+i*16:4+i*16+16], encodePoint(pt))
	}
	h.q.push(buf)
	return nil
}
func (h *PolygonHandler) TotalSize() int                     { return h.q.size }
func (h *PolygonHandler) EncodeInto(buf []byte) (int, error) { return h.q.drainInto(buf) }
func (h *PolygonHandler) OID() oid.OID                       { return oid.Polygon }
func (h *PolygonHandler) ArrayOID() oid.OID                  { return oid.PolygonArray }
func (h *PolygonHandler) WireFormat() wire.Format             { return wire.Binary }
func (h *PolygonHandler) AllowsType(v interface{}) bool {
	_, ok := v.(Polygon)
	return ok
}

func (h *PointHandler) Items() [][]byte { return h.q.items }
func (h *LineHandler) Items() [][]byte { return h.q.items }
func (h *LsegHandler) Items() [][]byte { return h.q.items }
func (h *BoxHandler) Items() [][]byte { return h.q.items }
func (h *CircleHandler) Items() [][]byte { return h.q.items }
func (h *PathHandler) Items() [][]byte { return h.q.items }
func (h *PolygonHandler) Items() [][]byte { return h.q.items }
