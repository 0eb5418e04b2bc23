/*
 * errors.go, part of chanstats.
 *
 * Copyright 2015 The ChannelAnalysis authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chanstats

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. If passed an empty
// string, Decorate should just return the current decoration slice. The slice
// should contain the functions in the calling stack plus, for each, any relevant
// information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete Error for the chanstats core. All failures in this
// package are immediate and local to the call that detects them; nothing is
// retried or recovered internally.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	// Not a pointer receiver, but deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Panics on a non-Error error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// The error conditions detected by the chanstats core. All of them are
// configuration or caller-contract problems, so they abort the offending call
// before any output is produced.
const (
	ErrNilData          = "Nil data given"
	ErrWeightMapLength  = "Weight map length must equal the number of states"
	ErrRowStateMismatch = "Observation rows and state assignments differ in length"
	ErrEmptyTrajectory  = "Trajectory has no observations"
	ErrStateOutsideSet  = "State id outside the closed state set"
	ErrUnknownTraj      = "Unknown trajectory id"
	ErrNoOccupiedBins   = "No observation fell inside the histogram range"
)

// badState builds the standard out-of-set state error.
func badState(id int, caller string) error {
	return CError{fmt.Sprintf("%s: %d", ErrStateOutsideSet, id), []string{caller}}
}
