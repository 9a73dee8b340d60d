package wire

// Request is a compiled HTTP request: a method, an unencoded path, and
// the ordered query parameters.
//
// Path holds the table path verbatim; no escaping is applied until the
// full path is derived. The struct carries no cached full path on
// purpose - see FullPath.
type Request struct {
	Method string
	Path   string
	Params *Params
}

// NewGet returns a GET request for path with an empty parameter set.
func NewGet(path string) *Request {
	return &Request{
		Method: "GET",
		Path:   path,
		Params: NewParams(),
	}
}

// FullPath returns the path plus the encoded query string.
//
// It is recomputed on every call rather than stored, so parameters
// added after the request was built are always reflected and there is
// no cache to invalidate. With no parameters it is exactly Path.
func (r *Request) FullPath() string {
	if r.Params.Len() == 0 {
		return r.Path
	}
	return r.Path + "?" + PercentEncode(r.Params.Encode())
}
