package pinwatch

import "testing"

func TestIsSigTag(t *testing.T) {
	ok := []string{
		"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.sig",
		"sha256-0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF.sig",
	}
	bad := []string{
		"",               // empty
		"sha256-xyz.sig", // length
		"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.sig", // length
		"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdeg.sig",                 // 'g'
		"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.SIG",                 // suffix
		"sha256-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.sic",                 // suffix
		"sha257-0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef.sig",                 // prefix
	}

	for _, s := range ok {
		if !isSigTag(s) {
			t.Fatalf("want true for %q", s)
		}
	}

	for _, s := range bad {
		if isSigTag(s) {
			t.Fatalf("want false for %q", s)
		}
	}
}

func TestCapStrings(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c"}
	if got := capStrings(in, 2); len(got) != 2 {
		t.Fatalf("capStrings(_, 2) = %v", got)
	}
	if got := capStrings(in, 0); len(got) != 3 {
		t.Fatalf("capStrings(_, 0) = %v", got)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	var got []string
	for tag, err := range Values([]string{"1", "2", "3"}) {
		if err != nil {
			t.Fatalf("Values yielded error %v", err)
		}
		got = append(got, tag)
		if len(got) == 2 {
			break
		}
	}

	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("Values = %v; want [1 2]", got)
	}
}
