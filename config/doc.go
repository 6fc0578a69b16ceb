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

// Package config is the offset configuration of an image. The configuration
// lists the groups of text blocks in the image, the region each group is
// written to on insertion and the location of every block's pointer cells.
//
// The configuration is stored as a JSON document. Every number in the
// document is a string of hexadecimal digits, with or without a 0x prefix.
//
//	{
//	  "destinationImagePath": "jeopardy_patched.nes",
//	  "groups": [
//	    {
//	      "insertRange": { "startOffset": "0x8010", "size": "0x1F00" },
//	      "pointersBaseOffset": "0x8010",
//	      "pointers": [
//	        {
//	          "questionsPointerOffset": "0x8012",
//	          "answersPointerOffset": "0x8014",
//	          "proformsPointerOffset": "0x8016",
//	          "topicsPointerOffset": "0x8010"
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// The configuration is read-only once loaded. The exception is the
// destination image path, which can be changed and saved with Save().
package config
