package charset

import (
	"bytes"
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", " utf8 ", "utf-8-bom", "utf-16", "UTF-16BE", "utf16le"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
		}
	}
	if _, err := Lookup("shift_jis"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("Lookup(shift_jis) err = %v, want ErrUnknownEncoding", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"utf-16be", "utf-16le", "utf-8", "utf-8-bom"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name string
		want []byte
	}{
		{"utf-8", []byte{0xE2, 0xA3, 0xBF, '\n'}},
		{"utf-8-bom", []byte{0xEF, 0xBB, 0xBF, 0xE2, 0xA3, 0xBF, '\n'}},
		{"utf-16le", []byte{0xFF, 0xFE, 0xFF, 0x28, '\n', 0x00}},
		{"utf-16be", []byte{0xFE, 0xFF, 0x28, 0xFF, 0x00, '\n'}},
	}
	for _, tt := range tests {
		enc, err := Lookup(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := EncodeString("⣿\n", enc)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%s: EncodeString = % x, want % x", tt.name, got, tt.want)
		}
	}
}

func TestNewWriter(t *testing.T) {
	enc, _ := Lookup("utf-16be")
	var buf bytes.Buffer
	w := NewWriter(&buf, enc)
	if _, err := w.Write([]byte("⠀⣿\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFE, 0xFF, 0x28, 0x00, 0x28, 0xFF, 0x00, '\n'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("written = % x, want % x", buf.Bytes(), want)
	}
}
