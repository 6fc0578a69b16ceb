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

package rom

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/logger"
)

// Loader is used to load the binary image from disk.
type Loader struct {
	// filename of the image to load
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the image filename, suitable for
// log entries and default output filenames.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.NotFound, ld.Filename)
		}
		return errors.New(errors.IOError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return errors.New(errors.IOError, fmt.Sprintf("unexpected hash value for %s", ld.Filename))
	}

	ld.Data = data
	ld.Hash = hash

	logger.Logf(logger.Allow, "rom", "loaded %s (%d bytes, sha1 %s)", ld.ShortName(), len(data), hash)

	return nil
}
