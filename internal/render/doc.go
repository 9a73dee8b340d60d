// Package render turns a compiled wire.Request into transport-ready
// text: a raw HTTP request preamble and an equivalent curl command.
//
// Both renderings are display/debug artifacts - nothing parses them
// back. The base URL is parsed only far enough to extract its scheme,
// host, and path prefix; query and fragment components are ignored.
package render
