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

// Package pipeline extracts the text blocks of an image to the interchange
// form and inserts edited blocks back into an image.
//
// Extraction reads the two huffman trees from their fixed locations in the
// image, follows every pointer record in the offset configuration and
// decodes the block it points to.
//
// Insertion rebuilds both trees from the text of the edited blocks, encodes
// every block and lays the blocks out one after another in the insert range
// of their group. The trees, the pointer cells and the group regions are
// collected in a single rom.WriteQueue which is flushed to the destination
// image in one pass. Nothing is written to the destination if any part of the
// insertion fails.
package pipeline
