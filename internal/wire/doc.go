// Package wire models the compiled HTTP request and its encoding rules.
//
// The target API reads filters, ordering, and paging from query
// parameters. Parameter order is meaningful to us (it is the canonical
// compilation order) and duplicate keys are legal (several filters on
// the same column), so Params is an insertion-ordered multimap rather
// than a url.Values map.
//
// PercentEncode implements the API's escaping contract: standard
// percent-escaping of everything outside the unreserved set, followed
// by restoring the characters the query grammar needs literal
// (* ( ) , : !). Request.FullPath derives the encoded path + query
// string on every call so it always reflects the current parameters.
package wire
