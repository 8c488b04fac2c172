// kaidoku.go - a Sudoku constraint-satisfaction solver and service.
// Copyright (C) 2024-2025 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a grid or a requested
// operation.  It can produce an error message in English, but
// its main function is to support structured error reporting by
// clients: it tells the client "this thing failed to meet this
// condition" and provides supplemental details about the thing
// and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a client-supplied argument, the grid itself, one
// of its cells, or (for logic errors) the solver internals.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GridScope
	CellScope
	InternalScope
	MaxScope
)

// The ErrorCondition is the predicate that the scope failed to
// satisfy.  There are a few known, named predicates and then a
// "general" (arbitrary English string) predicate for runtime
// errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongCountCondition
	NotADigitCondition
	OutOfRangeCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	ValueAttribute
	LengthAttribute
	RuneAttribute
	LocationAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the allowed range).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
// Sadly, there is no good way to express this condition in a way
// the compiler can check, so implementors just have to do the
// right thing.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case GridScope:
		es = "Invalid grid: "
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Attribute != UnknownAttribute {
		switch e.Attribute {
		case ValueAttribute:
			es += "Value"
		case LengthAttribute:
			es += "Length"
		case RuneAttribute:
			es += "Character"
		case LocationAttribute:
			es += fmt.Sprintf("In puzzle.%v", nextVal())
		default:
			es += "<Unknown attribute>"
		}
		es += " (" + fmt.Sprint(nextVal()) + "): "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongCountCondition:
		es += fmt.Sprintf("Must have exactly %v values", nextVal())
	case NotADigitCondition:
		es += "Must be a digit 1-9, or one of '0' and '.' for empty"
	case OutOfRangeCondition:
		es += fmt.Sprintf("Must be between %v and %v", nextVal(), nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
