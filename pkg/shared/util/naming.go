/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	pascalCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	// strict MAJOR.MINOR.PATCH, no leading zeros, no pre-release or build suffix
	semVerPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)
)

// IsPascalCase reports whether name is a PascalCase identifier.
func IsPascalCase(name string) bool {
	return pascalCasePattern.MatchString(name)
}

// IsStrictSemVer reports whether version is a plain three component semantic version.
func IsStrictSemVer(version string) bool {
	return semVerPattern.MatchString(version)
}

// ParseConnectionString splits a "host:port" connection string. The port is
// taken from the last colon so that IPv6 style hosts such as "::1:3000" work.
// Surrounding whitespace, an empty host or a non numeric port are rejected.
func ParseConnectionString(connStr string) (string, int, error) {
	idx := -1
	for i := len(connStr) - 1; i >= 0; i-- {
		if connStr[i] == ':' {
			idx = i
			break
		}
	}
	if idx <= 0 || idx == len(connStr)-1 {
		return "", 0, fmt.Errorf("invalid connection string %q, expected host:port", connStr)
	}
	host, portStr := connStr[:idx], connStr[idx+1:]
	for _, c := range portStr {
		if c < '0' || c > '9' {
			return "", 0, fmt.Errorf("invalid port %q in connection string %q", portStr, connStr)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port > 65535 {
		return "", 0, fmt.Errorf("invalid port %q in connection string %q", portStr, connStr)
	}
	if host[0] == ' ' || host[0] == '\t' {
		return "", 0, fmt.Errorf("invalid host %q in connection string %q", host, connStr)
	}
	return host, port, nil
}
