// Package compiler turns resource files into C++ source fragments.
//
// Each non-empty input file yields an Entry holding two fragments: a constexpr
// byte array definition and a registration statement that inserts a view of
// that array into the generated resources::manager lookup table. Fragments are
// produced in input order and are later concatenated by the generator package.
package compiler
