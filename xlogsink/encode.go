package xlogsink

import (
	"encoding/base64"
	"math"
	"time"

	"github.com/trickstertwo/xlog"

	"github.com/bjaus/tfmt"
)

func writeTextLine(buf *tfmt.Text, level xlog.Level, msg string, at time.Time, prebound []byte, fields []xlog.Field, opts Options) {
	buf.AppendString("ts=")
	appendTime(buf, at, opts.TimeFormat)
	buf.AppendString(" level=")
	appendLevel(buf, level)
	buf.AppendString(" msg=")
	appendTextString(buf, msg)
	buf.Append(prebound)
	for i := range fields {
		appendTextField(buf, &fields[i], opts)
	}
}

func appendTextField(buf *tfmt.Text, f *xlog.Field, opts Options) {
	buf.AppendByte(' ').AppendString(f.K).AppendByte('=')
	switch f.Kind {
	case xlog.KindString:
		appendTextString(buf, f.Str)
	case xlog.KindInt64:
		buf.AppendInt(f.Int64)
	case xlog.KindUint64:
		buf.AppendUint(f.Uint64)
	case xlog.KindFloat64:
		buf.AppendFloat(f.Float64)
	case xlog.KindBool:
		buf.Format(f.Bool)
	case xlog.KindDuration:
		buf.AppendString(f.Dur.String())
	case xlog.KindTime:
		appendTime(buf, f.Time, opts.TimeFormat)
	case xlog.KindError:
		if f.Err == nil {
			buf.AppendString("null")
			return
		}
		appendTextString(buf, f.Err.Error())
	case xlog.KindBytes:
		buf.Format("len:", len(f.Bytes))
	case xlog.KindAny:
		if f.Any == nil {
			buf.AppendString("null")
			return
		}
		appendTextString(buf, tfmt.Str(f.Any))
	default:
		buf.AppendString("null")
	}
}

// appendTextString writes s bare unless it is empty or holds a space, '=',
// a quote or a control character; then it is written as an escaped JSON
// string.
func appendTextString(buf *tfmt.Text, s string) {
	if s == "" {
		buf.AppendString(`""`)
		return
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c <= ' ' || c == '=' || c == '"' || c == 0x7f {
			tfmt.NewEncoder(buf).Value(tfmt.Escaped(s))
			return
		}
	}
	buf.AppendString(s)
}

func writeJSONLine(buf *tfmt.Text, level xlog.Level, msg string, at time.Time, prebound []byte, fields []xlog.Field, opts Options) {
	enc := tfmt.NewEncoder(buf)
	buf.AppendString(`{"ts":"`)
	appendTime(buf, at, opts.TimeFormat)
	buf.AppendString(`","level":"`)
	appendLevel(buf, level)
	buf.AppendString(`","msg":`)
	enc.Value(tfmt.Escaped(msg))
	buf.Append(prebound)
	for i := range fields {
		appendJSONField(buf, &fields[i], opts)
	}
	buf.AppendByte('}')
}

func appendJSONField(buf *tfmt.Text, f *xlog.Field, opts Options) {
	enc := tfmt.NewEncoder(buf)
	buf.AppendByte(',')
	enc.Value(tfmt.Escaped(f.K))
	buf.AppendByte(':')
	switch f.Kind {
	case xlog.KindString:
		enc.Value(tfmt.Escaped(f.Str))
	case xlog.KindInt64:
		buf.AppendInt(f.Int64)
	case xlog.KindUint64:
		buf.AppendUint(f.Uint64)
	case xlog.KindFloat64:
		if math.IsNaN(f.Float64) || math.IsInf(f.Float64, 0) {
			buf.AppendString("null")
			return
		}
		buf.AppendFloat(f.Float64)
	case xlog.KindBool:
		buf.Format(f.Bool)
	case xlog.KindDuration:
		enc.Value(tfmt.Escaped(f.Dur.String()))
	case xlog.KindTime:
		buf.AppendByte('"')
		appendTime(buf, f.Time, opts.TimeFormat)
		buf.AppendByte('"')
	case xlog.KindError:
		if f.Err == nil {
			buf.AppendString("null")
			return
		}
		enc.Value(tfmt.Escaped(f.Err.Error()))
	case xlog.KindBytes:
		buf.AppendByte('"')
		var tmp [256]byte
		buf.Append(base64.StdEncoding.AppendEncode(tmp[:0], f.Bytes))
		buf.AppendByte('"')
	case xlog.KindAny:
		appendJSONAny(enc, f.Any)
	default:
		buf.AppendString("null")
	}
}

// appendJSONAny writes v through the tfmt serializer. Free-form strings are
// escaped; types with their own JSON encoding write it verbatim.
func appendJSONAny(enc tfmt.Encoder, v any) {
	switch v := v.(type) {
	case string:
		enc.Value(tfmt.Escaped(v))
	case error:
		enc.Value(tfmt.Escaped(v.Error()))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			enc.Value(nil)
			return
		}
		enc.Value(v)
	default:
		enc.Value(v)
	}
}

func appendTime(buf *tfmt.Text, t time.Time, layout string) {
	var tmp [64]byte
	buf.Append(t.AppendFormat(tmp[:0], layout))
}
