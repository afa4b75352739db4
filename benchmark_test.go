package tfmt_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/bjaus/tfmt"
)

func BenchmarkFormatLine(b *testing.B) {
	var txt tfmt.Text
	b.ReportAllocs()
	for b.Loop() {
		txt.Clear()
		txt.Format("id=", 123456, " ratio=", 0.125, " ok=", true, " name=", "alpha")
	}
}

func BenchmarkFormatLineBounded(b *testing.B) {
	var txt tfmt.LineText
	b.ReportAllocs()
	for b.Loop() {
		txt.Clear()
		txt.Format("id=", 123456, " ratio=", 0.125, " ok=", true, " name=", "alpha")
	}
}

func BenchmarkFmtAppendf(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	for b.Loop() {
		buf = fmt.Appendf(buf[:0], "id=%d ratio=%g ok=%t name=%s", 123456, 0.125, true, "alpha")
	}
}

func BenchmarkStrconvAppend(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	for b.Loop() {
		buf = strconv.AppendInt(buf[:0], 123456, 10)
	}
}

func BenchmarkJSONObject(b *testing.B) {
	var j tfmt.JSON
	obj := tfmt.Obj("id", 7, "name", "alpha", "score", 0.5, "tag", tfmt.None[string]())
	b.ReportAllocs()
	for b.Loop() {
		j.Clear()
		j.Value(obj)
	}
}

func BenchmarkRightPad(b *testing.B) {
	var txt tfmt.Text
	b.ReportAllocs()
	for b.Loop() {
		txt.Clear()
		txt.Format(tfmt.Right(42, 8), tfmt.Fixed(7, 4))
	}
}
