// Package index provides the built-in leaf indexes and combinators.
//
// Leaf indexes maintain one lookup structure each: HashTable (equality),
// BTree (ordering and ranges), Keys (membership), SuffixTree (substring
// search). Combinators compose indexes into larger ones: Premap projects
// the record before delegating, Filtered delegates conditionally,
// Grouped fans out to one inner index per group key, and Zip2..Zip4 run
// several unrelated indexes in parallel.
//
// Any struct whose fields are indexes and whose Insert/Update/Remove
// methods forward the operation to every field in declaration order is
// itself a valid index; Zip is merely that pattern pre-built for
// anonymous composition.
package index
