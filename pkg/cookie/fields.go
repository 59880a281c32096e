package cookie

import "iter"

// FieldName is the canonical name of the request header field carrying
// cookie lists.
const FieldName = "Cookie"

// FieldValues is a collection of header fields. net/http.Header satisfies it.
type FieldValues interface {
	Values(key string) []string
}

// ListAll returns a sequence over the pairs of every Cookie field in h, in
// field order. Each field value is enumerated like List.All, so a malformed
// pair ends that field only and enumeration continues with the next one.
func ListAll(h FieldValues) iter.Seq[View] {
	return func(yield func(View) bool) {
		for _, v := range h.Values(FieldName) {
			for c := range List(v).All() {
				if !yield(c) {
					return
				}
			}
		}
	}
}
