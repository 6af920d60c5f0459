package oid

// arrayElement maps an array OID to the OID of its element type. The
// Type Registry in package wire consults this so the array reader it
// binds for an array OID is parameterized by the right element reader
// at decode time, as §3 of the spec requires: the element OID on the
// wire is validated against this mapping, not assumed from the column
// type alone.
var arrayElement = map[OID]OID{
	BoolArray: Bool, ByteaArray: Bytea, CharArray: Char, NameArray: NameOID,
	Int2Array: Int2, Int2VecArray: Int2Vec, Int4Array: Int4,
	RegProcArray: RegProc, TextArray: Text, TidArray: Tid, XidArray: Xid,
	CidArray: Cid, OIDVecArray: OIDVec, BpcharArray: Bpchar,
	VarcharArray: Varchar, Int8Array: Int8, PointArray: Point,
	LsegArray: Lseg, PathArray: Path, BoxArray: Box, Float4Array: Float4,
	Float8Array: Float8, AbstimeArray: Abstime, ReltimeArray: Reltime,
	TintervArray: Tinterval, PolygonArray: Polygon, OIDArray: OIDType,
	MacaddrArray: Macaddr, InetArray: Inet, DateArray: Date,
	TimeArray: Time, TimestampArray: Timestamp,
	TimestampTZArray: TimestampTZ, IntervalArray: Interval,
	TimeTZArray: TimeTZ, NumericArray: Numeric, BitArray: Bit,
	VarbitArray: Varbit, UUIDArray: UUID, CstringArray: Cstring,
	CashArray: Cash, LineArray: Line, CidrArray: Cidr,
	CircleArray: Circle, Macaddr8Array: Macaddr8, XMLArray: XML,
	JSONArray: JSON, JSONBArray: JSONB,
	Int4RangeArray: Int4Range, NumRangeArray: NumRange,
	TsRangeArray: TsRange, TsTzRangeArray: TsTzRange,
	DateRangeArray: DateRange, Int8RangeArray: Int8Range,
}

// arrayOf maps an element OID back to its array OID, the inverse of
// arrayElement. Parameter handlers use this to report Array OID once
// the element type of a host list is fixed.
var arrayOf map[OID]OID

func init() {
	arrayOf = make(map[OID]OID, len(arrayElement))
	for arr, elem := range arrayElement {
		arrayOf[elem] = arr
	}
}

// ElementOf reports the element OID for an array OID, and whether arr
// is a known array type.
func ElementOf(arr OID) (OID, bool) {
	elem, ok := arrayElement[arr]
	return elem, ok
}

// ArrayOf reports the array OID whose elements have OID elem.
func ArrayOf(elem OID) (OID, bool) {
	arr, ok := arrayOf[elem]
	return arr, ok
}

// EachArray calls fn once for every registered (array OID, element
// OID) pair. Iteration order is unspecified, matching the spec's
// registration-order-independence requirement (§9).
func EachArray(fn func(arr, elem OID)) {
	for arr, elem := range arrayElement {
		fn(arr, elem)
	}
}
