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

// Package textblock converts between the two representations of a block of
// game script.
//
// A Plain block mirrors the layout of the block in the image: four flat,
// parallel lists of topics, questions, answers and pronoun indices. A
// Structured block is the nested form edited by people: twelve topics of five
// questions each and a final topic with a single question.
//
// For insertion a Plain block is encoded with the questions tree (topics and
// questions) and the answers tree (answers). Pronoun indices are packed two to
// a byte. LayoutPointers() then assigns the four block pointers.
package textblock
