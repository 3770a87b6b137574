package payload

import (
	"sort"
	"strconv"
	"strings"
)

// object accumulates present members in insertion order and joins them when
// rendered. Omission decisions happen at add time, so a closing brace never
// has a dangling separator in front of it.
type object struct {
	members []string
}

func newObject() *object {
	return &object{}
}

func (o *object) add(key, rendered string) {
	o.members = append(o.members, `"`+Escape(key)+`":`+rendered)
}

// str adds a quoted, escaped string member. Empty values are omitted.
func (o *object) str(key, val string) {
	if val == "" {
		return
	}
	o.add(key, `"`+Escape(val)+`"`)
}

// strAlways adds a quoted string member even when the value is empty.
func (o *object) strAlways(key, val string) {
	o.add(key, `"`+Escape(val)+`"`)
}

// num adds a bare integer member. Values <= 0 are omitted.
func (o *object) num(key string, val int) {
	if val <= 0 {
		return
	}
	o.add(key, strconv.Itoa(val))
}

// dec adds a bare floating-point member with default textual precision.
// Values <= 0 are omitted.
func (o *object) dec(key string, val float64) {
	if val <= 0 {
		return
	}
	o.add(key, strconv.FormatFloat(val, 'g', -1, 64))
}

// boolean adds a bool member unconditionally; false is a legitimate value.
func (o *object) boolean(key string, val bool) {
	o.add(key, strconv.FormatBool(val))
}

// raw splices a pre-formed fragment verbatim. Empty fragments are omitted.
// The fragment is trusted to be well-formed; it is not escaped or validated.
func (o *object) raw(key, fragment string) {
	if fragment == "" {
		return
	}
	o.add(key, fragment)
}

// strArray adds an array of quoted strings. Empty slices are omitted.
func (o *object) strArray(key string, vals []string) {
	if len(vals) == 0 {
		return
	}
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = `"` + Escape(v) + `"`
	}
	o.add(key, "["+strings.Join(quoted, ",")+"]")
}

// sortedStrMap adds an object member with entries in ascending key order,
// so output stays stable however the map was built. Empty maps are omitted.
func (o *object) sortedStrMap(key string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	child := newObject()
	for _, k := range keys {
		child.strAlways(k, m[k])
	}
	o.add(key, child.String())
}

// group nests a child object. Childless groups are omitted.
func (o *object) group(key string, child *object) {
	if child.empty() {
		return
	}
	o.add(key, child.String())
}

func (o *object) empty() bool {
	return len(o.members) == 0
}

func (o *object) String() string {
	return "{" + strings.Join(o.members, ",") + "}"
}
