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

// Package logger is the central log of texttool. Entries are made up of a tag
// and a detail. The tag is usually the name of the package or pipeline stage
// that made the entry:
//
//	logger.Logf(logger.Allow, "rom", "loaded %s (%d bytes)", filename, len(data))
//
// Repeated entries are collapsed into a single entry with a repeat count and
// only the most recent entries are kept.
//
// The Permission interface controls whether an entry should be made.
// logger.Allow can be used when logging should always happen.
//
// The central log can be echoed to an io.Writer as entries are made with
// SetEcho(). The log can be written out at any time with Write() or Tail().
package logger
