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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, and modes within modes, each with its
// own set of flags.
//
// Arguments are supplied once with NewArgs() and then consumed one mode at a
// time with Parse(). For example, a program with an EXTRACT and an INSERT
// mode, where EXTRACT is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("EXTRACT", "INSERT")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "INSERT":
//		md.NewMode()
//		md.SetArgsUsage("<document>")
//		atomic := md.AddBool("atomic", false, "replace the image rather than patch it")
//		...
//	}
//
// Mode names are case insensitive and are always reported in upper case. If
// the first argument after the flags is not a listed sub-mode then the first
// sub-mode in the list is selected and the argument is left for the selected
// mode to parse.
//
// After the final call to Parse(), the arguments that are neither flags nor
// modes are returned by RemainingArgs() and GetArg(). RequireArgs() is a
// convenient way of checking the number of remaining arguments.
package modalflag
