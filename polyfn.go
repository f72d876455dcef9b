/*
Package polyfn builds reusable evaluators for polynomials over floating-point coefficients.
The evaluators are plain Go functions that either borrow the caller's coefficients, own a private
copy of them, or share them through a reference-counted handle, so that the validity of an evaluator
is either tied to, or independent of, the lifetime of the coefficients it was built from.
See the polynomial package for the evaluators and utils/bignum for the arbitrary precision reference.
*/
package polyfn
