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

// Package script loads and saves the interchange document. The document is
// the ordered list of structured text blocks, stored as indented JSON so that
// it can be edited by hand and compared with a diff tool.
//
// Strings in the document do not carry the string terminator. A document
// written by older tools, where every string ends with a carriage return,
// can still be loaded. The terminator is removed on load.
package script
