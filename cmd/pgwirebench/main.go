// pgwirebench - exercise the wire codec end-to-end against a battery
// of sample values.
//
// Usage:
//
//	pgwirebench                 # run the built-in sample battery
//	pgwirebench -v               # also print each decoded host value
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arjunveer/pgwire/numeric"
	"github.com/arjunveer/pgwire/oid"
	"github.com/arjunveer/pgwire/param"
	"github.com/arjunveer/pgwire/wire"
)

func main() {
	verbose := flag.Bool("v", false, "print each decoded host value")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `pgwirebench - round-trip a battery of sample values through the wire codec

Usage:
  %s [-v]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	reg := wire.NewRegistry()
	samples := sampleBattery()

	failures := 0
	for _, s := range samples {
		h, err := param.For(s.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] For: %v\n", s.name, err)
			failures++
			continue
		}
		if err := h.Examine(s.value); err != nil {
			fmt.Fprintf(os.Stderr, "[%s] Examine: %v\n", s.name, err)
			failures++
			continue
		}
		buf := make([]byte, h.TotalSize())
		if _, err := h.EncodeInto(buf); err != nil {
			fmt.Fprintf(os.Stderr, "[%s] EncodeInto: %v\n", s.name, err)
			failures++
			continue
		}

		reader := reg.Binary(h.OID())
		if reader == nil {
			fmt.Fprintf(os.Stderr, "[%s] no binary reader registered for OID %d (%s)\n", s.name, h.OID(), oid.Name(h.OID()))
			failures++
			continue
		}
		c := wire.NewCursor(buf)
		decoded, err := reader(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] decode: %v\n", s.name, err)
			failures++
			continue
		}
		if err := c.EnforceAtEnd("pgwirebench"); err != nil {
			fmt.Fprintf(os.Stderr, "[%s] trailing bytes: %v\n", s.name, err)
			failures++
			continue
		}

		fmt.Printf("%-18s oid=%-12s bytes=%3d\n", s.name, oid.Name(h.OID()), len(buf))
		if *verbose {
			fmt.Printf("  -> %#v\n", decoded)
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d samples failed\n", failures, len(samples))
		os.Exit(1)
	}
}

type sample struct {
	name  string
	value interface{}
}

func sampleBattery() []sample {
	rawDec, _ := decimal.NewFromString("-1234.56700")
	dec := numeric.NewFromDecimal(rawDec)
	return []sample{
		{"bool", true},
		{"int16", int16(42)},
		{"int64", int64(-9000000000)},
		{"float64", 3.1415926535},
		{"text", "hello, wire"},
		{"bytea", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"numeric", dec},
		{"uuid", uuid.New()},
		{"timestamp", time.Now().UTC()},
		{"array_int", []interface{}{int16(1), int16(2), int16(3)}},
		{"array_nested", []interface{}{
			[]interface{}{int16(1), int16(2)},
			[]interface{}{int16(3), nil},
		}},
	}
}
