// Package outcome provides a success/failure container for operation results.
//
// An Outcome[T] records whether an operation succeeded, the value it produced
// and an ordered list of errors. Outcomes without a payload use
// Outcome[Void]:
//
//	func createUser(name string) *outcome.Outcome[User] {
//	    if err := ensure.WhenNullOrWhitespace(name, "name"); err != nil {
//	        return outcome.FailureOf[User](err)
//	    }
//	    return outcome.SuccessWith(User{Name: name})
//	}
//
//	res := createUser(name)
//	if !res.IsSuccess() {
//	    return res.Err()
//	}
//	user := res.UnwrapOrDefault()
//
// Success or failure is decided once, by the constructor. More errors can be
// appended through WithError and WithMessage; doing so never changes the
// flag, so a successful outcome with appended errors is still a success.
//
// Reading the value of a failed outcome through UnwrapOrDefault returns the
// zero value of T. Use Unwrap to get the first error alongside it.
//
// Append gathers values from successful outcomes into a slice and stops at
// the first failed one, returning its first error.
package outcome
