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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeopardynes/texttool/paths"
	"github.com/jeopardynes/texttool/test"
)

func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".texttool", 0700))

	test.ExpectEquality(t, paths.ResourcePath("config.json"), filepath.Join(".texttool", "config.json"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".texttool", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".texttool")
}

func TestUserResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, paths.ResourcePath("config.json"), filepath.Join(cnf, "texttool", "config.json"))
}
