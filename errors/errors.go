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

package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

// Values is the list of values used to complete the message pattern.
type Values []interface{}

// TexttoolError is the error type returned by New().
type TexttoolError struct {
	Errno  Errno
	Values Values
}

// New creates a new TexttoolError.
func New(errno Errno, values ...interface{}) error {
	return TexttoolError{
		Errno:  errno,
		Values: values,
	}
}

func (er TexttoolError) Error() string {
	pattern, ok := messages[er.Errno]
	if !ok {
		pattern = "%v"
	}
	s := fmt.Sprintf(pattern, er.Values...)

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return s
}

// Unwrap returns the first value that is itself an error.
func (er TexttoolError) Unwrap() error {
	for _, v := range er.Values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// Is returns true if the error, or any error it wraps, was created with the
// errno.
func Is(err error, errno Errno) bool {
	for err != nil {
		if er, ok := err.(TexttoolError); ok && er.Errno == errno {
			return true
		}
		err = goerrors.Unwrap(err)
	}
	return false
}

// Kind returns the name of the Errno nearest the head of the error chain. The
// empty string is returned if the chain contains no TexttoolError.
func Kind(err error) string {
	var er TexttoolError
	if goerrors.As(err, &er) {
		return er.Errno.String()
	}
	return ""
}
