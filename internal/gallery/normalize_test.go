package gallery_test

import (
	"maike/internal/gallery"
	"testing"
)

func TestNormalizeImageURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host",
			in:   "HTTPS://Images.Example.COM/a/B.png",
			out:  "https://images.example.com/a/B.png",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://example.com:443/img.png",
			out:  "https://example.com/img.png",
			ok:   true,
		},
		{
			name: "remove default http port on ipv6 host",
			in:   "http://[2001:db8::1]:80/a.png",
			out:  "http://[2001:db8::1]/a.png",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://example.com:8080/a.png",
			out:  "http://example.com:8080/a.png",
			ok:   true,
		},
		{
			name: "keep signed query untouched",
			in:   "https://blob.example.com/img.png?st=2024&sig=Ab%2Fc%3D&se=1",
			out:  "https://blob.example.com/img.png?st=2024&sig=Ab%2Fc%3D&se=1",
			ok:   true,
		},
		{
			name: "remove fragment",
			in:   "https://example.com/a.png#preview",
			out:  "https://example.com/a.png",
			ok:   true,
		},
		{
			name: "trim surrounding whitespace",
			in:   "  https://example.com/a.png ",
			out:  "https://example.com/a.png",
			ok:   true,
		},
		{name: "relative url", in: "/a.png"},
		{name: "data url", in: "data:image/png;base64,AAAA"},
		{name: "ftp url", in: "ftp://example.com/a.png"},
		{name: "credentials", in: "https://user:pw@example.com/a.png"},
		{name: "invalid url", in: "http://exa mple.com"},
	}

	for _, tc := range cases {
		got, err := gallery.NormalizeImageURL(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got != tc.out {
				t.Errorf("%s: got %q, want %q", tc.name, got, tc.out)
			}
		} else if err == nil {
			t.Errorf("%s: expected error, got none (result %q)", tc.name, got)
		}
	}
}
