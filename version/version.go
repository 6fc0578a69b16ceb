// This file is part of Texttool.
//
// Texttool is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Texttool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Texttool.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jeopardynes/texttool/version.number=v1.0.0"
//
// Builds without a version number report "unreleased" if vcs information was
// embedded by the go tool, and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "texttool"

// set by the linker
var number string

var version string
var revision string

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name, version and revision in a single line.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

// parse the vcs settings of the build information.
func parse(info *debug.BuildInfo, ok bool) (v string, r string) {
	var vcs bool
	var modified bool

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				r = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if r == "" {
		r = "no revision information"
	} else if modified {
		r = fmt.Sprintf("%s+dirty", r)
	}

	switch {
	case number != "":
		v = number
	case vcs:
		v = "unreleased"
	default:
		v = "local"
	}

	return v, r
}

func init() {
	version, revision = parse(debug.ReadBuildInfo())
}
