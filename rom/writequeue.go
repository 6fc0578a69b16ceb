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
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeopardynes/texttool/errors"
	"github.com/jeopardynes/texttool/logger"
)

// WriteQueueElement is a single pending write. Data is written at Offset,
// left aligned in a window of TargetSize bytes. Any remaining space in the
// window is filled with FillByte.
type WriteQueueElement struct {
	Offset     uint32
	Data       []byte
	TargetSize uint32
	FillByte   byte
}

func (e WriteQueueElement) String() string {
	return fmt.Sprintf("%d bytes at %#05x (window %d bytes)", len(e.Data), e.Offset, e.TargetSize)
}

// padded returns the data padded to the target size.
func (e WriteQueueElement) padded() []byte {
	b := make([]byte, e.TargetSize)
	copy(b, e.Data)
	for i := len(e.Data); i < len(b); i++ {
		b[i] = e.FillByte
	}
	return b
}

// WriteQueue collects writes to be applied to an image in one pass.
type WriteQueue struct {
	elements []WriteQueueElement
}

// Add an element to the queue. The OutOfBounds error is returned if the data
// does not fit in the target size of the element.
func (q *WriteQueue) Add(e WriteQueueElement) error {
	if uint64(len(e.Data)) > uint64(e.TargetSize) {
		return errors.New(errors.OutOfBounds, fmt.Sprintf("%d bytes cannot be written at %#05x, target size is %d bytes", len(e.Data), e.Offset, e.TargetSize))
	}
	q.elements = append(q.elements, e)
	return nil
}

// Len returns the number of elements in the queue.
func (q *WriteQueue) Len() int {
	return len(q.elements)
}

// Elements returns a copy of the queued elements, in the order they were added.
func (q *WriteQueue) Elements() []WriteQueueElement {
	c := make([]WriteQueueElement, len(q.elements))
	copy(c, q.elements)
	return c
}

// validate checks every element against the length of the image.
func (q *WriteQueue) validate(length int64) error {
	for _, e := range q.elements {
		if uint64(e.Offset)+uint64(e.TargetSize) > uint64(length) {
			return errors.New(errors.OutOfBounds, fmt.Sprintf("write of %s is beyond end of image (%#05x)", e, length))
		}
	}
	return nil
}

// Apply writes the queue to an in-memory image. The image is not modified if
// any element does not fit.
func (q *WriteQueue) Apply(image []byte) error {
	err := q.validate(int64(len(image)))
	if err != nil {
		return err
	}
	for _, e := range q.elements {
		copy(image[e.Offset:], e.padded())
	}
	return nil
}

// Flush writes the queue to the image file. The file must already exist. No
// byte is written if any element would extend beyond the end of the file.
func (q *WriteQueue) Flush(filename string) error {
	f, err := os.OpenFile(filename, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.NotFound, filename)
		}
		return errors.New(errors.IOError, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	err = q.validate(fi.Size())
	if err != nil {
		return err
	}

	for _, e := range q.elements {
		_, err = f.WriteAt(e.padded(), int64(e.Offset))
		if err != nil {
			return errors.New(errors.IOError, err)
		}
	}

	err = f.Sync()
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	logger.Logf(logger.Allow, "writequeue", "%d writes flushed to %s", len(q.elements), filepath.Base(filename))

	return nil
}

// FlushAtomic is like Flush() but the patched image is first written to a
// shadow file in the same directory, which is then renamed over the original.
func (q *WriteQueue) FlushAtomic(filename string) error {
	fi, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.NotFound, filename)
		}
		return errors.New(errors.IOError, err)
	}

	image, err := os.ReadFile(filename)
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	err = q.Apply(image)
	if err != nil {
		return err
	}

	shadow, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*")
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	// remove the shadow file on any failure. after a successful rename the
	// shadow no longer exists and the Remove() is harmless
	defer os.Remove(shadow.Name())

	_, err = bytes.NewReader(image).WriteTo(shadow)
	if err == nil {
		err = shadow.Sync()
	}
	if err == nil {
		err = shadow.Chmod(fi.Mode())
	}
	if cerr := shadow.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	err = os.Rename(shadow.Name(), filename)
	if err != nil {
		return errors.New(errors.IOError, err)
	}

	logger.Logf(logger.Allow, "writequeue", "%d writes flushed to %s (atomic)", len(q.elements), filepath.Base(filename))

	return nil
}
