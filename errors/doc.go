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

// Package errors is the error taxonomy for the texttool packages. Every error
// that can stop an extraction or insertion run is created with the New()
// function and one of the Errno values declared in categories.go.
//
//	err := errors.New(errors.OutOfBounds, "write of 0x20 bytes at 0x9d6a")
//
// The message is produced from a pattern table (see messages.go) and the
// values supplied to New(). Values may themselves be errors, in which case the
// error chain can be inspected with the Is() function and with the functions
// in the standard library errors package.
//
//	if errors.Is(err, errors.OutOfBounds) {
//		...
//	}
//
// The Kind() function returns the name of the Errno nearest the head of the
// chain. The front-end displays it alongside the message.
//
// Messages are normalised so that adjacent duplicate parts are removed. For
// example, an OutOfBounds error wrapped in another OutOfBounds error does not
// print "out of bounds: out of bounds: ...".
package errors
