package formvalidate

import "github.com/Gobd/formvalidate/transform"

// Clean strips characters from value that are not allowed for kind. See
// [transform.Clean].
func Clean(value, kind string) string {
	return transform.Clean(value, kind)
}

// CleanRecord cleans every value of data. kinds maps field names to a
// [Clean] kind; fields without an entry are cleaned as strings.
func CleanRecord(data Record, kinds map[string]string) map[string]string {
	out := make(map[string]string, len(data))
	for name, value := range data {
		out[name] = transform.Clean(toString(value), kinds[name])
	}
	return out
}
