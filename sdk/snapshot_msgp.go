// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package sdk

import (
	"github.com/tinylib/msgp/msgp"

	core "github.com/tracecore/tracecore"
)

// EncodeMsg writes s as an ordered msgpack map using msgp's low-level
// Writer, matching the teacher's own hand-rolled span wire codec rather
// than a code-generated one. Field order is fixed, matching spec.md §6's
// wire shape bit-for-bit.
func (s *Snapshot) EncodeMsg(w *msgp.Writer) error {
	// status is only meaningful for an ended span (spec.md §6); a live
	// snapshot omits the field entirely rather than emitting Unset.
	size := uint32(15)
	if s.Ended {
		size++
	}
	if err := w.WriteMapHeader(size); err != nil {
		return err
	}
	steps := []func() error{
		func() error { return writeFieldBytes(w, "trace_id", s.TraceID[:]) },
		func() error { return writeFieldBytes(w, "span_id", s.SpanID[:]) },
		func() error {
			// a root span's parent_span_id is the empty byte string
			parent := s.ParentSpanID[:]
			if s.IsRoot {
				parent = []byte{}
			}
			return writeFieldBytes(w, "parent_span_id", parent)
		},
		func() error { return writeFieldBool(w, "is_root", s.IsRoot) },
		func() error { return writeTracestate(w, s.Tracestate) },
		func() error { return writeFieldString(w, "name", s.Name) },
		func() error { return writeFieldInt(w, "kind", int64(s.Kind)) },
		func() error { return writeWallTime(w, "start_time", s.StartTime) },
		func() error { return writeWallTime(w, "end_time", s.EndTime) },
		func() error { return writeFieldBool(w, "ended", s.Ended) },
		func() error { return writeAttributes(w, s.Attributes, s.DroppedAttributes) },
		func() error { return writeEvents(w, s.Events, s.DroppedEvents) },
		func() error { return writeLinks(w, s.Links, s.DroppedLinks) },
		func() error { return writeChildSpanCount(w, s.ChildSpanCount, s.HasChildSpanCount) },
		func() error { return writeResource(w, s.Resource) },
	}
	if s.Ended {
		steps = append(steps, func() error { return writeStatus(w, s.Status) })
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsg reads a Snapshot written by EncodeMsg. It does not assume
// field order beyond what EncodeMsg produces; it reads the declared map
// size and dispatches on each key.
func (s *Snapshot) DecodeMsg(r *msgp.Reader) error {
	n, err := r.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return err
		}
		if err := s.decodeField(r, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Snapshot) decodeField(r *msgp.Reader, key string) error {
	switch key {
	case "trace_id":
		b, err := r.ReadBytes(nil)
		if err != nil {
			return err
		}
		copy(s.TraceID[:], b)
	case "span_id":
		b, err := r.ReadBytes(nil)
		if err != nil {
			return err
		}
		copy(s.SpanID[:], b)
	case "parent_span_id":
		b, err := r.ReadBytes(nil)
		if err != nil {
			return err
		}
		copy(s.ParentSpanID[:], b)
	case "is_root":
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		s.IsRoot = v
	case "tracestate":
		ts, err := readTracestate(r)
		if err != nil {
			return err
		}
		s.Tracestate = ts
	case "name":
		v, err := r.ReadString()
		if err != nil {
			return err
		}
		s.Name = v
	case "kind":
		v, err := r.ReadInt64()
		if err != nil {
			return err
		}
		s.Kind = core.SpanKind(v)
	case "start_time":
		wt, err := readWallTime(r)
		if err != nil {
			return err
		}
		s.StartTime = wt
	case "end_time":
		wt, err := readWallTime(r)
		if err != nil {
			return err
		}
		s.EndTime = wt
	case "ended":
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		s.Ended = v
	case "attributes":
		attrs, dropped, err := readAttributes(r)
		if err != nil {
			return err
		}
		s.Attributes, s.DroppedAttributes = attrs, dropped
	case "events":
		events, dropped, err := readEvents(r)
		if err != nil {
			return err
		}
		s.Events, s.DroppedEvents = events, dropped
	case "links":
		links, dropped, err := readLinks(r)
		if err != nil {
			return err
		}
		s.Links, s.DroppedLinks = links, dropped
	case "status":
		status, err := readStatus(r)
		if err != nil {
			return err
		}
		s.Status = status
	case "child_span_count":
		count, has, err := readChildSpanCount(r)
		if err != nil {
			return err
		}
		s.ChildSpanCount, s.HasChildSpanCount = count, has
	case "resource":
		res, err := readResource(r)
		if err != nil {
			return err
		}
		s.Resource = res
	default:
		return r.Skip()
	}
	return nil
}

func writeFieldBytes(w *msgp.Writer, key string, b []byte) error {
	if err := w.WriteString(key); err != nil {
		return err
	}
	return w.WriteBytes(b)
}

func writeFieldBool(w *msgp.Writer, key string, v bool) error {
	if err := w.WriteString(key); err != nil {
		return err
	}
	return w.WriteBool(v)
}

func writeFieldString(w *msgp.Writer, key, v string) error {
	if err := w.WriteString(key); err != nil {
		return err
	}
	return w.WriteString(v)
}

func writeFieldInt(w *msgp.Writer, key string, v int64) error {
	if err := w.WriteString(key); err != nil {
		return err
	}
	return w.WriteInt64(v)
}

func writeWallTime(w *msgp.Writer, key string, wt WallTime) error {
	if err := w.WriteString(key); err != nil {
		return err
	}
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := writeFieldInt(w, "seconds", wt.Seconds); err != nil {
		return err
	}
	return writeFieldInt(w, "nanos", int64(wt.Nanos))
}

func readWallTime(r *msgp.Reader) (WallTime, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return WallTime{}, err
	}
	var wt WallTime
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return WallTime{}, err
		}
		switch key {
		case "seconds":
			v, err := r.ReadInt64()
			if err != nil {
				return WallTime{}, err
			}
			wt.Seconds = v
		case "nanos":
			v, err := r.ReadInt64()
			if err != nil {
				return WallTime{}, err
			}
			wt.Nanos = int32(v)
		default:
			if err := r.Skip(); err != nil {
				return WallTime{}, err
			}
		}
	}
	return wt, nil
}

func writeKeyValues(w *msgp.Writer, kvs []core.KeyValue) error {
	if err := w.WriteArrayHeader(uint32(len(kvs))); err != nil {
		return err
	}
	for _, kv := range kvs {
		if err := writeKeyValue(w, kv); err != nil {
			return err
		}
	}
	return nil
}

func writeKeyValue(w *msgp.Writer, kv core.KeyValue) error {
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := writeFieldString(w, "key", kv.Key); err != nil {
		return err
	}
	if err := w.WriteString("value"); err != nil {
		return err
	}
	return writeAttributeValue(w, kv.Value)
}

func writeAttributeValue(w *msgp.Writer, v core.AttributeValue) error {
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := writeFieldInt(w, "kind", int64(v.Kind())); err != nil {
		return err
	}
	if err := w.WriteString("value"); err != nil {
		return err
	}
	switch v.Kind() {
	case core.ValueString:
		return w.WriteString(v.AsString())
	case core.ValueInt64:
		return w.WriteInt64(v.AsInt64())
	case core.ValueFloat64:
		return w.WriteFloat64(v.AsFloat64())
	case core.ValueBool:
		return w.WriteBool(v.AsBool())
	default:
		return w.WriteNil()
	}
}

func readKeyValues(r *msgp.Reader) ([]core.KeyValue, error) {
	n, err := r.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	out := make([]core.KeyValue, 0, n)
	for i := uint32(0); i < n; i++ {
		kv, err := readKeyValue(r)
		if err != nil {
			return nil, err
		}
		out = append(out, kv)
	}
	return out, nil
}

func readKeyValue(r *msgp.Reader) (core.KeyValue, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return core.KeyValue{}, err
	}
	var kv core.KeyValue
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return core.KeyValue{}, err
		}
		switch key {
		case "key":
			v, err := r.ReadString()
			if err != nil {
				return core.KeyValue{}, err
			}
			kv.Key = v
		case "value":
			v, err := readAttributeValue(r)
			if err != nil {
				return core.KeyValue{}, err
			}
			kv.Value = v
		default:
			if err := r.Skip(); err != nil {
				return core.KeyValue{}, err
			}
		}
	}
	return kv, nil
}

func readAttributeValue(r *msgp.Reader) (core.AttributeValue, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return core.AttributeValue{}, err
	}
	var kind core.ValueKind
	var val core.AttributeValue
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return core.AttributeValue{}, err
		}
		switch key {
		case "kind":
			v, err := r.ReadInt64()
			if err != nil {
				return core.AttributeValue{}, err
			}
			kind = core.ValueKind(v)
		case "value":
			switch kind {
			case core.ValueString:
				v, err := r.ReadString()
				if err != nil {
					return core.AttributeValue{}, err
				}
				val = core.StringValue(v)
			case core.ValueInt64:
				v, err := r.ReadInt64()
				if err != nil {
					return core.AttributeValue{}, err
				}
				val = core.Int64Value(v)
			case core.ValueFloat64:
				v, err := r.ReadFloat64()
				if err != nil {
					return core.AttributeValue{}, err
				}
				val = core.Float64Value(v)
			case core.ValueBool:
				v, err := r.ReadBool()
				if err != nil {
					return core.AttributeValue{}, err
				}
				val = core.BoolValue(v)
			default:
				if err := r.ReadNil(); err != nil {
					return core.AttributeValue{}, err
				}
			}
		default:
			if err := r.Skip(); err != nil {
				return core.AttributeValue{}, err
			}
		}
	}
	return val, nil
}

func writeAttributes(w *msgp.Writer, attrs []core.KeyValue, dropped uint32) error {
	if err := w.WriteString("attributes"); err != nil {
		return err
	}
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := w.WriteString("entries"); err != nil {
		return err
	}
	if err := writeKeyValues(w, attrs); err != nil {
		return err
	}
	return writeFieldInt(w, "dropped", int64(dropped))
}

func readAttributes(r *msgp.Reader) ([]core.KeyValue, uint32, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return nil, 0, err
	}
	var entries []core.KeyValue
	var dropped uint32
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, 0, err
		}
		switch key {
		case "entries":
			entries, err = readKeyValues(r)
			if err != nil {
				return nil, 0, err
			}
		case "dropped":
			v, err := r.ReadInt64()
			if err != nil {
				return nil, 0, err
			}
			dropped = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return nil, 0, err
			}
		}
	}
	return entries, dropped, nil
}

func writeEvents(w *msgp.Writer, events []SnapshotEvent, dropped uint32) error {
	if err := w.WriteString("events"); err != nil {
		return err
	}
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := w.WriteString("entries"); err != nil {
		return err
	}
	if err := w.WriteArrayHeader(uint32(len(events))); err != nil {
		return err
	}
	for _, e := range events {
		if err := w.WriteMapHeader(4); err != nil {
			return err
		}
		if err := writeWallTime(w, "time", e.Time); err != nil {
			return err
		}
		if err := writeFieldString(w, "name", e.Name); err != nil {
			return err
		}
		if err := w.WriteString("attributes"); err != nil {
			return err
		}
		if err := writeKeyValues(w, e.Attributes); err != nil {
			return err
		}
		if err := writeFieldInt(w, "dropped_attributes", int64(e.DroppedAttributes)); err != nil {
			return err
		}
	}
	return writeFieldInt(w, "dropped", int64(dropped))
}

func readEvents(r *msgp.Reader) ([]SnapshotEvent, uint32, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return nil, 0, err
	}
	var events []SnapshotEvent
	var dropped uint32
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, 0, err
		}
		switch key {
		case "entries":
			cnt, err := r.ReadArrayHeader()
			if err != nil {
				return nil, 0, err
			}
			events = make([]SnapshotEvent, 0, cnt)
			for j := uint32(0); j < cnt; j++ {
				e, err := readSnapshotEvent(r)
				if err != nil {
					return nil, 0, err
				}
				events = append(events, e)
			}
		case "dropped":
			v, err := r.ReadInt64()
			if err != nil {
				return nil, 0, err
			}
			dropped = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return nil, 0, err
			}
		}
	}
	return events, dropped, nil
}

func readSnapshotEvent(r *msgp.Reader) (SnapshotEvent, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return SnapshotEvent{}, err
	}
	var e SnapshotEvent
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return SnapshotEvent{}, err
		}
		switch key {
		case "time":
			wt, err := readWallTime(r)
			if err != nil {
				return SnapshotEvent{}, err
			}
			e.Time = wt
		case "name":
			v, err := r.ReadString()
			if err != nil {
				return SnapshotEvent{}, err
			}
			e.Name = v
		case "attributes":
			kvs, err := readKeyValues(r)
			if err != nil {
				return SnapshotEvent{}, err
			}
			e.Attributes = kvs
		case "dropped_attributes":
			v, err := r.ReadInt64()
			if err != nil {
				return SnapshotEvent{}, err
			}
			e.DroppedAttributes = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return SnapshotEvent{}, err
			}
		}
	}
	return e, nil
}

func writeLinks(w *msgp.Writer, links []SnapshotLink, dropped uint32) error {
	if err := w.WriteString("links"); err != nil {
		return err
	}
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := w.WriteString("entries"); err != nil {
		return err
	}
	if err := w.WriteArrayHeader(uint32(len(links))); err != nil {
		return err
	}
	for _, l := range links {
		if err := w.WriteMapHeader(5); err != nil {
			return err
		}
		if err := writeFieldBytes(w, "trace_id", l.TraceID[:]); err != nil {
			return err
		}
		if err := writeFieldBytes(w, "span_id", l.SpanID[:]); err != nil {
			return err
		}
		if err := writeTracestate(w, l.Tracestate); err != nil {
			return err
		}
		if err := w.WriteString("attributes"); err != nil {
			return err
		}
		if err := writeKeyValues(w, l.Attributes); err != nil {
			return err
		}
		if err := writeFieldInt(w, "dropped_attributes", int64(l.DroppedAttributes)); err != nil {
			return err
		}
	}
	return writeFieldInt(w, "dropped", int64(dropped))
}

func readLinks(r *msgp.Reader) ([]SnapshotLink, uint32, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return nil, 0, err
	}
	var links []SnapshotLink
	var dropped uint32
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, 0, err
		}
		switch key {
		case "entries":
			cnt, err := r.ReadArrayHeader()
			if err != nil {
				return nil, 0, err
			}
			links = make([]SnapshotLink, 0, cnt)
			for j := uint32(0); j < cnt; j++ {
				l, err := readSnapshotLink(r)
				if err != nil {
					return nil, 0, err
				}
				links = append(links, l)
			}
		case "dropped":
			v, err := r.ReadInt64()
			if err != nil {
				return nil, 0, err
			}
			dropped = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return nil, 0, err
			}
		}
	}
	return links, dropped, nil
}

func readSnapshotLink(r *msgp.Reader) (SnapshotLink, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return SnapshotLink{}, err
	}
	var l SnapshotLink
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return SnapshotLink{}, err
		}
		switch key {
		case "trace_id":
			b, err := r.ReadBytes(nil)
			if err != nil {
				return SnapshotLink{}, err
			}
			copy(l.TraceID[:], b)
		case "span_id":
			b, err := r.ReadBytes(nil)
			if err != nil {
				return SnapshotLink{}, err
			}
			copy(l.SpanID[:], b)
		case "tracestate":
			ts, err := readTracestate(r)
			if err != nil {
				return SnapshotLink{}, err
			}
			l.Tracestate = ts
		case "attributes":
			kvs, err := readKeyValues(r)
			if err != nil {
				return SnapshotLink{}, err
			}
			l.Attributes = kvs
		case "dropped_attributes":
			v, err := r.ReadInt64()
			if err != nil {
				return SnapshotLink{}, err
			}
			l.DroppedAttributes = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return SnapshotLink{}, err
			}
		}
	}
	return l, nil
}

func writeTracestate(w *msgp.Writer, ts core.Tracestate) error {
	if err := w.WriteString("tracestate"); err != nil {
		return err
	}
	entries := ts.Entries()
	if err := w.WriteArrayHeader(uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.WriteMapHeader(2); err != nil {
			return err
		}
		if err := writeFieldString(w, "key", e.Key); err != nil {
			return err
		}
		if err := writeFieldString(w, "value", e.Value); err != nil {
			return err
		}
	}
	return nil
}

func readTracestate(r *msgp.Reader) (core.Tracestate, error) {
	n, err := r.ReadArrayHeader()
	if err != nil {
		return core.Tracestate{}, err
	}
	pairs := make([][2]string, 0, n)
	for i := uint32(0); i < n; i++ {
		m, err := r.ReadMapHeader()
		if err != nil {
			return core.Tracestate{}, err
		}
		var key, value string
		for j := uint32(0); j < m; j++ {
			k, err := r.ReadString()
			if err != nil {
				return core.Tracestate{}, err
			}
			switch k {
			case "key":
				key, err = r.ReadString()
			case "value":
				value, err = r.ReadString()
			default:
				err = r.Skip()
			}
			if err != nil {
				return core.Tracestate{}, err
			}
		}
		pairs = append(pairs, [2]string{key, value})
	}
	// With puts each key at the front, so apply the pairs last to first to
	// rebuild the order in which writeTracestate wrote them.
	var ts core.Tracestate
	for i := len(pairs) - 1; i >= 0; i-- {
		ts = ts.With(pairs[i][0], pairs[i][1])
	}
	return ts, nil
}

func writeStatus(w *msgp.Writer, status core.Status) error {
	if err := w.WriteString("status"); err != nil {
		return err
	}
	if err := w.WriteMapHeader(2); err != nil {
		return err
	}
	if err := writeFieldInt(w, "code", int64(status.Code)); err != nil {
		return err
	}
	return writeFieldString(w, "description", status.Description)
}

func readStatus(r *msgp.Reader) (core.Status, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return core.Status{}, err
	}
	var status core.Status
	for i := uint32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return core.Status{}, err
		}
		switch key {
		case "code":
			v, err := r.ReadInt64()
			if err != nil {
				return core.Status{}, err
			}
			status.Code = core.StatusCode(v)
		case "description":
			v, err := r.ReadString()
			if err != nil {
				return core.Status{}, err
			}
			status.Description = v
		default:
			if err := r.Skip(); err != nil {
				return core.Status{}, err
			}
		}
	}
	return status, nil
}

func writeChildSpanCount(w *msgp.Writer, count uint32, has bool) error {
	if err := w.WriteString("child_span_count"); err != nil {
		return err
	}
	if !has {
		return w.WriteNil()
	}
	return w.WriteInt64(int64(count))
}

func readChildSpanCount(r *msgp.Reader) (uint32, bool, error) {
	if r.IsNil() {
		return 0, false, r.ReadNil()
	}
	v, err := r.ReadInt64()
	if err != nil {
		return 0, false, err
	}
	return uint32(v), true, nil
}

func writeResource(w *msgp.Writer, res core.Resource) error {
	if err := w.WriteString("resource"); err != nil {
		return err
	}
	if err := w.WriteMapHeader(uint32(res.Len())); err != nil {
		return err
	}
	var outerErr error
	res.Range(func(k, v string) {
		if outerErr != nil {
			return
		}
		if err := w.WriteString(k); err != nil {
			outerErr = err
			return
		}
		outerErr = w.WriteString(v)
	})
	return outerErr
}

func readResource(r *msgp.Reader) (core.Resource, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return core.Resource{}, err
	}
	labels := make(map[string]string, n)
	for i := uint32(0); i < n; i++ {
		k, err := r.ReadString()
		if err != nil {
			return core.Resource{}, err
		}
		v, err := r.ReadString()
		if err != nil {
			return core.Resource{}, err
		}
		labels[k] = v
	}
	return core.NewResource(labels), nil
}
