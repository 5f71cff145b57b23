package pinwatch

import (
	"reflect"
	"regexp"
	"testing"
)

func TestIsRelease(t *testing.T) {
	t.Parallel()

	excluded := []string{
		// rc token, any case
		"3.7-rc1",
		"v2.0-RC3",
		"3.7-rc-alpine3.6",
		"rc",
		"1.0.0-rc.1",
		"1.1.0-rc1",
		"1.3rc1",

		// pre-release suffix on the last dot part
		"3.7.0b1",
		"1.2.0-alpha",
		"2.1.0a1",
		"1.0.0dev",
		"5.0.0-beta2",
		"1.1.0b1",
		"2.0b1",
		"3.9-alpine", // "9-alpine" starts with the "a" marker
	}
	kept := []string{
		"1.2.3",
		"2021.04.01",
		"1.0",
		"v1",
		"latest",
		"alpine",
		"rcfoo",
		"src-1.0",
		"1.0.0-Beta", // markers are case-sensitive
		// only three dot parts are inspected: "3.4-alpha" does not start with digits+marker
		"1.2.3.4-alpha",
	}

	for _, tag := range excluded {
		if IsRelease(tag) {
			t.Fatalf("IsRelease(%q) = true; want false", tag)
		}
	}

	for _, tag := range kept {
		if !IsRelease(tag) {
			t.Fatalf("IsRelease(%q) = false; want true", tag)
		}
	}
}

func TestFilter_ReleaseOnly(t *testing.T) {
	t.Parallel()

	in := []string{"1.0.0", "1.1.0", "1.1.0-rc1", "1.1.0b1", "latest"}

	got := Filter(in, Options{})
	want := []string{"1.0.0", "1.1.0", "latest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter = %v; want %v", got, want)
	}

	got = Filter(in, Options{KeepPrereleases: true})
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Filter KeepPrereleases = %v; want %v", got, in)
	}
}

func TestFilter_IncludeExcludeSignatures(t *testing.T) {
	t.Parallel()

	in := []string{
		"3.8.1", "3.9.0", "3.9.0-slim", "2.7.18",
		"sha256-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.sig",
	}
	opt := Options{
		ExcludeSignatures: true,
		Include:           regexp.MustCompile(`^3\.`),
		Exclude:           regexp.MustCompile(`-slim$`),
	}

	got := Filter(in, opt)
	want := []string{"3.8.1", "3.9.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter = %v; want %v", got, want)
	}

	// without signature gating the cosign tag is an ordinary tag
	got = Filter(in, Options{})
	if len(got) != len(in) {
		t.Fatalf("Filter without options = %v; want all of %v", got, in)
	}
}
