package value

import "testing"

func TestConstructors(t *testing.T) {
	if v := Int(42); v.Kind != KindInt || v.Int != 42 {
		t.Errorf("Int: got %+v", v)
	}
	if v := Bytes([]byte{1, 2}); v.Kind != KindBytes || len(v.Data) != 2 {
		t.Errorf("Bytes: got %+v", v)
	}
	if v := String("hi"); v.Kind != KindString || v.Str != "hi" {
		t.Errorf("String: got %+v", v)
	}
	if v := Seq(Int(1)); v.Kind != KindSeq || len(v.Items) != 1 {
		t.Errorf("Seq: got %+v", v)
	}
	if v := Seq(); v.Items == nil {
		t.Error("Seq() should produce a non-nil empty item slice")
	}
}

func TestKindString(t *testing.T) {
	testCases := []struct {
		kind Kind
		want string
	}{
		{KindInt, "int"},
		{KindBytes, "bytes"},
		{KindString, "string"},
		{KindSeq, "seq"},
		{Kind(0xFF), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	for k := Kind(0); k <= KindSeq; k++ {
		if !k.Valid() {
			t.Errorf("Kind(%d) should be valid", k)
		}
	}
	if Kind(0x04).Valid() {
		t.Error("Kind(0x04) should not be valid")
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same ints", Int(1), Int(1), true},
		{"different ints", Int(1), Int(2), false},
		{"kind mismatch", Int(1), String("1"), false},
		{"same bytes", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"nil vs empty bytes", Bytes(nil), Bytes([]byte{}), true},
		{"different bytes", Bytes([]byte{1}), Bytes([]byte{2}), false},
		{"same strings", String("a"), String("a"), true},
		{"different strings", String("a"), String("b"), false},
		{"empty seqs", Seq(), Seq(), true},
		{"same nested", Seq(Seq(Int(1))), Seq(Seq(Int(1))), true},
		{"different nesting", Seq(Seq(Int(1))), Seq(Int(1)), false},
		{"different lengths", Seq(Int(1)), Seq(Int(1), Int(2)), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Equal (reversed) = %v, want %v", got, tc.want)
			}
		})
	}
}
