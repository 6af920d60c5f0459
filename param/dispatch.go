package param

import (
	"fmt"
	"math/big"
	"net"
	"time"

	"github.com/arjunveer/pgwire/numeric"
	"github.com/arjunveer/pgwire/wire"
	"github.com/google/uuid"
)

// For returns a fresh Handler selected by value's dynamic type — the
// Go rendering of the host-type→handler dictionary as a closed
// variant (§9). It returns a UsageError for any value whose type is
// none of the ones this package knows how to encode.
func For(value interface{}) (Handler, error) {
	switch value.(type) {
	case bool:
		return &BoolHandler{}, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return &IntHandler{}, nil
	case float32, float64:
		return &FloatHandler{}, nil
	case string:
		return &TextHandler{}, nil
	case []byte:
		return &BytesHandler{}, nil
	case Money:
		return &MoneyHandler{}, nil
	case numeric.Decimal:
		return &NumericHandler{}, nil
	case uuid.UUID:
		return &UUIDHandler{}, nil
	case Date:
		return &DateHandler{}, nil
	case time.Time, NaiveTimestamp:
		return &DateTimeHandler{}, nil
	case wire.TimeOfDay, wire.TimeTZValue:
		return &TimeHandler{}, nil
	case wire.IntervalValue:
		return &IntervalHandler{}, nil
	case wire.NetworkValue:
		return &NetworkHandler{}, nil
	case net.HardwareAddr:
		return &MacaddrHandler{}, nil
	case wire.Point:
		return &PointHandler{}, nil
	case wire.Line:
		return &LineHandler{}, nil
	case wire.LineSegment:
		return &LsegHandler{}, nil
	case wire.Box:
		return &BoxHandler{}, nil
	case wire.Circle:
		return &CircleHandler{}, nil
	case wire.Path:
		return &PathHandler{}, nil
	case Polygon:
		return &PolygonHandler{}, nil
	case wire.BitString:
		return &BitHandler{}, nil
	case JSONValue, JSONBValue:
		return &JSONHandler{}, nil
	case []interface{}:
		return &ArrayHandler{}, nil
	default:
		return nil, usageErr(fmt.Errorf("%w: %T", ErrUnsupportedValue, value))
	}
}
