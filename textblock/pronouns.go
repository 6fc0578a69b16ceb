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

package textblock

// PronounNames are the phrases selected by a question's pronoun index. The
// game prefixes the player's reply with the phrase.
var PronounNames = [16]string{
	"WHO IS",
	"WHO IS THE",
	"WHO ARE",
	"WHO ARE THE",
	"WHAT IS",
	"WHAT IS THE",
	"WHAT IS A",
	"WHAT IS AN",
	"WHAT ARE",
	"WHAT ARE THE",
	"WHO WAS",
	"WHAT WAS",
	"WHAT WAS THE",
	"WHO WERE",
	"WHO WERE THE",
	"WHO WAS A",
}

// PronounName returns the phrase for the pronoun index or the empty string if
// the index is out of range.
func PronounName(idx uint8) string {
	if int(idx) >= len(PronounNames) {
		return ""
	}
	return PronounNames[idx]
}
