package main

import (
	"strconv"
	"strings"
)

// precision is the number of fractional digits of every reported number.
const precision = 2

// render formats m as {key=min/mean/max, ...} with keys in byte order.
func render(m StatsMap) string {
	var sorted SkipList[string, Stats]
	for k, s := range m {
		sorted.Put(k, s)
	}
	var (
		b   strings.Builder
		buf []byte
	)
	b.WriteByte('{')
	first := true
	for k, s := range sorted.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		buf = append(buf[:0], k...)
		buf = append(buf, '=')
		buf = strconv.AppendFloat(buf, s.Min, 'f', precision, 64)
		buf = append(buf, '/')
		buf = strconv.AppendFloat(buf, s.Mean(), 'f', precision, 64)
		buf = append(buf, '/')
		buf = strconv.AppendFloat(buf, s.Max, 'f', precision, 64)
		b.Write(buf)
	}
	b.WriteByte('}')
	return b.String()
}
