package todo

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter keys understood by the todo backend.
const (
	ParamCategory = "category"
	ParamStatus   = "status"
)

// Param is a single key=value pair of a todo collection query.
type Param struct {
	Key   string
	Value string
}

// pair is a Param plus the text it was parsed from, kept only when that text
// differs from the escaped form ("flag" or "a=b%20c").
type pair struct {
	Param
	raw string
}

func (p pair) encode() string {
	if p.raw != "" {
		return p.raw
	}
	return encodePair(p.Key, p.Value)
}

func encodePair(key, value string) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(value)
}

// Filter is an immutable, ordered set of query parameters for the todo
// collection endpoint. Every method returns a new Filter; the zero value is
// the unfiltered collection.
//
// A Filter holds at most one category pair. Setting a key removes it from its
// current position and appends it at the end, so the most recently applied
// filter is always last.
type Filter struct {
	params []pair
}

// ParseQuery builds a Filter from a raw query string such as
// "category=f&something=k&". Empty segments are skipped and pair order is
// kept. A repeated category collapses to its last occurrence. Each pair
// re-encodes exactly as it was written.
func ParseQuery(raw string) Filter {
	raw = strings.TrimPrefix(raw, "?")

	var f Filter
	for segment := range strings.SplitSeq(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		p := pair{Param: Param{Key: unescape(key), Value: unescape(value)}}
		if segment != encodePair(p.Key, p.Value) {
			p.raw = segment
		}
		if p.Key == ParamCategory {
			f.params = slices.DeleteFunc(f.params, func(q pair) bool { return q.Key == ParamCategory })
		}
		f.params = append(f.params, p)
	}
	return f
}

// SplitURL separates a todo collection URL into its base and its Filter.
func SplitURL(rawURL string) (string, Filter) {
	base, query, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL, Filter{}
	}
	return base, ParseQuery(query)
}

// FilterByCategory returns rawURL with its category parameter replaced. Any
// existing category pair is removed and, unless category is empty, a new
// "category=<value>&" pair is appended after the remaining parameters, which
// keep their original text. When no parameters remain the bare base URL is
// returned.
func FilterByCategory(rawURL, category string) string {
	base, f := SplitURL(rawURL)
	return f.WithCategory(category).URL(base)
}

// With returns a copy of f where every pair for key is removed and, when
// value is non-empty, key=value is appended at the end.
func (f Filter) With(key, value string) Filter {
	params := make([]pair, 0, len(f.params)+1)
	for _, p := range f.params {
		if p.Key != key {
			params = append(params, p)
		}
	}
	if value != "" {
		params = append(params, pair{Param: Param{Key: key, Value: value}})
	}
	if len(params) == 0 {
		return Filter{}
	}
	return Filter{params: params}
}

// WithCategory sets the category filter. An empty category clears it.
func (f Filter) WithCategory(category string) Filter {
	return f.With(ParamCategory, category)
}

// WithStatus sets the completion status filter.
func (f Filter) WithStatus(complete bool) Filter {
	return f.With(ParamStatus, strconv.FormatBool(complete))
}

// WithoutStatus clears the completion status filter.
func (f Filter) WithoutStatus() Filter {
	return f.With(ParamStatus, "")
}

// Get returns the value of the last pair for key.
func (f Filter) Get(key string) (string, bool) {
	for i := len(f.params) - 1; i >= 0; i-- {
		if f.params[i].Key == key {
			return f.params[i].Value, true
		}
	}
	return "", false
}

// Category returns the active category filter, or "" when none is set.
func (f Filter) Category() string {
	c, _ := f.Get(ParamCategory)
	return c
}

// Status returns the status filter and whether one is set and parseable.
func (f Filter) Status() (complete, ok bool) {
	raw, found := f.Get(ParamStatus)
	if !found {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Params returns a copy of the pairs in order.
func (f Filter) Params() []Param {
	if len(f.params) == 0 {
		return nil
	}
	out := make([]Param, len(f.params))
	for i, p := range f.params {
		out[i] = p.Param
	}
	return out
}

// IsZero reports whether f has no parameters.
func (f Filter) IsZero() bool {
	return len(f.params) == 0
}

// Encode renders f as "k1=v1&k2=v2&". Pairs set through With are
// query-escaped; parsed pairs are written back as they were read. The zero
// Filter encodes to "".
func (f Filter) Encode() string {
	var b strings.Builder
	for _, p := range f.params {
		b.WriteString(p.encode())
		b.WriteByte('&')
	}
	return b.String()
}

// URL appends f to base. With no parameters base is returned unchanged, never
// with a dangling "?".
func (f Filter) URL(base string) string {
	if f.IsZero() {
		return base
	}
	return base + "?" + f.Encode()
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return f.Encode()
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
