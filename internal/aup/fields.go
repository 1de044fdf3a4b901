package aup

// Field is a single key=value line inside a section. Values are kept as
// raw strings so fields the transform does not understand survive a
// round trip byte-for-byte.
type Field struct {
	Key   string
	Value string
}

// FieldList is an ordered list of fields. Order matters: the writer
// emits fields in exactly this order.
type FieldList []Field

// Get returns the value of the first field with the given key.
func (l FieldList) Get(key string) (string, bool) {
	for _, f := range l {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether a field with the given key exists.
func (l FieldList) Has(key string) bool {
	_, ok := l.Get(key)
	return ok
}

// Set replaces the value of an existing field in place, or appends a
// new field if the key is absent.
func (l *FieldList) Set(key, value string) {
	for i, f := range *l {
		if f.Key == key {
			(*l)[i].Value = value
			return
		}
	}
	*l = append(*l, Field{Key: key, Value: value})
}

// Delete removes every field with the given key, preserving the order
// of the remaining fields.
func (l *FieldList) Delete(key string) {
	out := (*l)[:0]
	for _, f := range *l {
		if f.Key != key {
			out = append(out, f)
		}
	}
	*l = out
}

// Clone returns an independent copy of the list.
func (l FieldList) Clone() FieldList {
	if l == nil {
		return nil
	}
	out := make(FieldList, len(l))
	copy(out, l)
	return out
}
