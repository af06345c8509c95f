// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package endpoint resolves the voilib API base URL from a host, a port and
// a path prefix. The result is computed once at startup and handed to every
// component that talks to the API.
package endpoint

import (
	"fmt"
	"strings"
)

// Default inputs used when the environment does not provide a value.
const (
	DefaultHost   = "http://localhost"
	DefaultPort   = "81"
	DefaultPrefix = ""
)

// Policy selects how the port is folded into the base URL.
type Policy int

const (
	// ElideDefaultPort drops the port when it is the scheme's default
	// (http with 80, https with 443).
	ElideDefaultPort Policy = iota
	// AlwaysIncludePort appends the port unconditionally.
	AlwaysIncludePort
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case ElideDefaultPort:
		return "elide-default"
	case AlwaysIncludePort:
		return "always"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy. An empty name selects
// ElideDefaultPort.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "elide-default":
		return ElideDefaultPort, nil
	case "always":
		return AlwaysIncludePort, nil
	default:
		return 0, fmt.Errorf("unknown port policy %q (want \"elide-default\" or \"always\")", name)
	}
}

// IsDefaultPort reports whether port is the conventional port for the
// scheme host starts with. Only the exact pairs http/"80" and https/"443"
// qualify; the port is compared as a string.
func IsDefaultPort(host, port string) bool {
	isHTTP := strings.HasPrefix(host, "http://") && port == "80"
	isHTTPS := strings.HasPrefix(host, "https://") && port == "443"
	return isHTTP || isHTTPS
}

// Resolve builds the base URL with the ElideDefaultPort policy. Inputs are
// not validated; whatever is passed in ends up in the result.
func Resolve(host, port, prefix string) string {
	return ResolveWithPolicy(ElideDefaultPort, host, port, prefix)
}

// ResolveWithPolicy builds the base URL under the given policy.
func ResolveWithPolicy(policy Policy, host, port, prefix string) string {
	if policy == ElideDefaultPort && IsDefaultPort(host, port) {
		return host + prefix
	}
	return host + ":" + port + prefix
}

// Endpoint is the resolved API location. It is built once from config and
// passed by value, so it never changes after startup.
type Endpoint struct {
	Host   string
	Port   string
	Prefix string
	Policy Policy
}

// Default returns the endpoint used when nothing is configured.
func Default() Endpoint {
	return Endpoint{Host: DefaultHost, Port: DefaultPort, Prefix: DefaultPrefix}
}

// BaseURL returns the canonical base URL for all API requests.
func (e Endpoint) BaseURL() string {
	return ResolveWithPolicy(e.Policy, e.Host, e.Port, e.Prefix)
}

// URL joins an API path onto the base URL with exactly one slash between
// them. An empty path returns the base URL unchanged.
func (e Endpoint) URL(path string) string {
	base := strings.TrimRight(e.BaseURL(), "/")
	if path == "" {
		return e.BaseURL()
	}
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}
