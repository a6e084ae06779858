package snapshot

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncode_KeysAscending(t *testing.T) {
	out := Output{
		"b.z": {},
		"a.a": {},
		"a.b": {Deprecated: true},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, out); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	text := buf.String()
	order := []string{`"a.a"`, `"a.b"`, `"b.z"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx < 0 {
			t.Fatalf("key %s missing from output:\n%s", key, text)
		}
		if idx <= last {
			t.Errorf("key %s out of order in output:\n%s", key, text)
		}
		last = idx
	}
}

func TestEncode_RecordShape(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Output{
		"a.b": {},
		"x.y": {Deprecated: true},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded["a.b"]) != 0 {
		t.Errorf("non-deprecated record has fields: %v", decoded["a.b"])
	}
	if dep, ok := decoded["x.y"]["deprecated"]; !ok || dep != true {
		t.Errorf("deprecated record = %v, want {\"deprecated\": true}", decoded["x.y"])
	}
	if len(decoded["x.y"]) != 1 {
		t.Errorf("deprecated record has extra fields: %v", decoded["x.y"])
	}
}

func TestEncode_ByteIdenticalAcrossRuns(t *testing.T) {
	out := Output{
		"downloads.DownloadItem": {},
		"alarms.Alarm":           {Deprecated: true},
		"tabs.Tab":               {},
	}

	var first, second bytes.Buffer
	if err := Encode(&first, out); err != nil {
		t.Fatalf("Encode first: %v", err)
	}
	if err := Encode(&second, out); err != nil {
		t.Fatalf("Encode second: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("output differs across runs:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestEncode_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Output{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != "{}\n" {
		t.Errorf("empty table serialized as %q, want {}\\n", got)
	}
}

func TestEncode_TrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Output{"a.b": {}}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("output missing trailing newline")
	}
}
