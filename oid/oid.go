// Package oid declares the closed catalog of well-known PostgreSQL type
// OIDs and the array-to-element OID mapping. The Type Registry that maps
// an OID to its text/binary readers lives in package wire.
package oid

import "fmt"

// OID is a PostgreSQL type identifier.
type OID uint32

// Well-known scalar OIDs, lifted from pg_type.dat. Only the subset the
// codec engine needs readers or parameter handlers for is named here;
// unnamed OIDs still round-trip as raw bytes via Registry's fallback.
const (
	Bool    OID = 16
	Bytea   OID = 17
	Char    OID = 18
	NameOID OID = 19
	Int8    OID = 20
	Int2    OID = 21
	Int2Vec OID = 22
	Int4    OID = 23
	RegProc OID = 24
	Text    OID = 25
	OIDType OID = 26
	Tid     OID = 27
	Xid     OID = 28
	Cid     OID = 29
	OIDVec  OID = 30

	JSON    OID = 114
	XML     OID = 142
	Cstring OID = 2275

	Point   OID = 600
	Lseg    OID = 601
	Path    OID = 602
	Box     OID = 603
	Polygon OID = 604
	Line    OID = 628
	Circle  OID = 718

	Abstime   OID = 702
	Reltime   OID = 703
	Tinterval OID = 704
	Unknown   OID = 705

	Float4 OID = 700
	Float8 OID = 701

	Cidr     OID = 650
	Macaddr  OID = 829
	Inet     OID = 869
	Macaddr8 OID = 774

	Cash OID = 790

	Bpchar  OID = 1042
	Varchar OID = 1043

	Date        OID = 1082
	Time        OID = 1083
	Timestamp   OID = 1114
	TimestampTZ OID = 1184
	Interval    OID = 1186
	TimeTZ      OID = 1266

	Bit    OID = 1560
	Varbit OID = 1562

	Numeric OID = 1700

	UUID OID = 2950

	JSONB OID = 3802

	Int4Range OID = 3904
	NumRange  OID = 3906
	TsRange   OID = 3908
	TsTzRange OID = 3910
	DateRange OID = 3912
	Int8Range OID = 3926
)

// Array OIDs for the scalar types above. Named ...Array.
const (
	BoolArray    OID = 1000
	ByteaArray   OID = 1001
	CharArray    OID = 1002
	NameArray    OID = 1003
	Int2Array    OID = 1005
	Int2VecArray OID = 1006
	Int4Array    OID = 1007
	RegProcArray OID = 1008
	TextArray    OID = 1009
	TidArray     OID = 1010
	XidArray     OID = 1011
	CidArray     OID = 1012
	OIDVecArray  OID = 1013
	BpcharArray  OID = 1014
	VarcharArray OID = 1015
	Int8Array    OID = 1016
	PointArray   OID = 1017
	LsegArray    OID = 1018
	PathArray    OID = 1019
	BoxArray     OID = 1020
	Float4Array  OID = 1021
	Float8Array  OID = 1022
	AbstimeArray OID = 1023
	ReltimeArray OID = 1024
	TintervArray OID = 1025
	PolygonArray OID = 1027
	OIDArray     OID = 1028
	MacaddrArray OID = 1040
	InetArray    OID = 1041

	DateArray        OID = 1182
	TimeArray        OID = 1183
	TimestampArray   OID = 1115
	TimestampTZArray OID = 1185
	IntervalArray    OID = 1187
	TimeTZArray      OID = 1270

	NumericArray OID = 1231

	BitArray    OID = 1561
	VarbitArray OID = 1563

	UUIDArray     OID = 2951
	CstringArray  OID = 1263
	CashArray     OID = 791
	LineArray     OID = 629
	CidrArray     OID = 651
	CircleArray   OID = 719
	Macaddr8Array OID = 775
	XMLArray      OID = 143
	JSONArray     OID = 199
	JSONBArray    OID = 3807

	Int4RangeArray OID = 3905
	NumRangeArray  OID = 3907
	TsRangeArray   OID = 3909
	TsTzRangeArray OID = 3911
	DateRangeArray OID = 3913
	Int8RangeArray OID = 3927
)

var names = map[OID]string{
	Bool: "bool", Bytea: "bytea", Char: "char", NameOID: "name",
	Int8: "int8", Int2: "int2", Int2Vec: "int2vector", Int4: "int4",
	RegProc: "regproc", Text: "text", OIDType: "oid", Tid: "tid",
	Xid: "xid", Cid: "cid", OIDVec: "oidvector",
	JSON: "json", XML: "xml", Cstring: "cstring",
	Point: "point", Lseg: "lseg", Path: "path", Box: "box",
	Polygon: "polygon", Line: "line", Circle: "circle",
	Abstime: "abstime", Reltime: "reltime", Tinterval: "tinterval",
	Unknown: "unknown",
	Float4:  "float4", Float8: "float8",
	Cidr: "cidr", Macaddr: "macaddr", Inet: "inet", Macaddr8: "macaddr8",
	Cash:   "money",
	Bpchar: "bpchar", Varchar: "varchar",
	Date: "date", Time: "time", Timestamp: "timestamp",
	TimestampTZ: "timestamptz", Interval: "interval", TimeTZ: "timetz",
	Bit: "bit", Varbit: "varbit",
	Numeric: "numeric", UUID: "uuid", JSONB: "jsonb",
	Int4Range: "int4range", NumRange: "numrange", TsRange: "tsrange",
	TsTzRange: "tstzrange", DateRange: "daterange", Int8Range: "int8range",
}

// Name returns the human-readable PostgreSQL type name for oid, or
// "oid:<n>" if it is not in the known catalog.
func Name(o OID) string {
	if n, ok := names[o]; ok {
		return n
	}
	return fmt.Sprintf("oid:%d", o)
}
