// Package apiversion describes the semantic version of the saju-lab HTTP API
// shared by the server and its clients.
package apiversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Version of the saju-lab JSON surface
const (
	Major = 1
	Minor = 3
	Patch = 0
)

// Current is the version served by this build
var Current = Version{Major: Major, Minor: Minor, Patch: Patch}

// Version is a major.minor.patch triple
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads "1.3.0" or "v1.3.0"
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	var nums [3]int
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid %s version: %q", name, parts[i])
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// CompatibleWith reports whether clients of other can read v.
// Only a major bump breaks the wire format.
func (v Version) CompatibleWith(other Version) bool {
	return v.Major == other.Major
}

// NewerThan orders versions by major, then minor, then patch
func (v Version) NewerThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	return v.Patch > other.Patch
}
