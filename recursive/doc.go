// Package recursive closes self-referential mutators — a type whose
// definition contains itself, such as a JSON value that can nest other
// JSON values, or a binary tree.
//
// fuzzcheck-rs ties this knot with Rc::new_cyclic and a Weak reference
// inside the recursive arm's mutator, to avoid leaking a reference
// cycle. Go's tracing garbage collector collects cycles on its own, so
// RecursiveMutator and RecurToMutator close the same knot with a plain
// pointer, built in two phases: RecurToMutator is created first holding
// a pointer to the not-yet-populated RecursiveMutator, the caller's
// builder function then constructs the outer Mutator[T] using that
// RecurToMutator wherever the type recurses, and finally the result is
// assigned into RecursiveMutator.Inner. No method on either type runs
// during construction, so the missing Inner is never observed.
package recursive
