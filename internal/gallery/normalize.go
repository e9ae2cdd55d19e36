package gallery

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// NormalizeImageURL returns a canonical form of an image URL so the same
// picture is not saved twice under different spellings.
//
//   - Only absolute http and https URLs with a host are accepted
//   - Lower-case the scheme and host
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Remove the fragment
//
// Path and query are kept byte for byte because provider URLs are usually
// signed.
func NormalizeImageURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("URL has no host")
	}
	if u.User != nil {
		return "", fmt.Errorf("URL must not carry credentials")
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
