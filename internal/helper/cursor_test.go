package helper

import "testing"

func TestCursorRoundTrip(t *testing.T) {
	encoded := EncodeCursor("2026-01-02T15:04:05.999999999Z", "0194c3a1-7e00-7000-8000-000000000001", "|||")

	first, second, err := DecodeCursor(encoded, "|||")
	if err != nil {
		t.Fatalf("DecodeCursor: %v", err)
	}
	if first != "2026-01-02T15:04:05.999999999Z" {
		t.Fatalf("first part = %q", first)
	}
	if second != "0194c3a1-7e00-7000-8000-000000000001" {
		t.Fatalf("second part = %q", second)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	if _, _, err := DecodeCursor("not base64!!!", "|||"); err == nil {
		t.Fatal("expected error for invalid encoding")
	}
}

func TestDecodeCursorRejectsMissingDelimiter(t *testing.T) {
	encoded := EncodeCursor("only-one-part", "", "")
	if _, _, err := DecodeCursor(encoded, "|||"); err == nil {
		t.Fatal("expected error for missing delimiter")
	}
}
