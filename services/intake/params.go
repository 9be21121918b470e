package intake

import "strings"

// stringParam collapses a platform parameter to a trimmed string. Anything
// that is not a string collapses to "".
func stringParam(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// nameParam extracts the full name. The platform may nest compound person
// entities, so the value arrives either as a plain string or as an object
// with a "name" sub-field.
func nameParam(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]interface{}:
		return stringParam(val["name"])
	}
	return ""
}
