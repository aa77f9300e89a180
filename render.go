package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// String renders the list as "[(e1)(e2)(e3)]", with every value in
// its fmt form wrapped in parentheses and no separators; an empty
// list renders as "[]". Because lists are themselves Stringers the
// format nests for lists of lists.
func (l *List[T]) String() string {
	buf := &strings.Builder{}
	_ = buf.WriteByte('[')

	if l.Len() > 0 {
		for item := l.Front(); item.Ok(); item = item.Next() {
			fmt.Fprintf(buf, "(%v)", item.Value())
		}
	}

	_ = buf.WriteByte(']')
	return buf.String()
}

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// MarshalJSON produces a JSON array representing the values in the
// list. By supporting json.Marshaler and json.Unmarshaler, Elements
// and lists can behave as arrays in larger json objects, and can be
// the output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	_ = buf.WriteByte('[')

	if l.Len() > 0 {
		for i := l.Front(); i.Ok(); i = i.Next() {
			if i != l.Front() {
				_ = buf.WriteByte(',')
			}
			val, err := json.Marshal(i.Value())
			if err != nil {
				return nil, err
			}
			_, _ = buf.Write(val)
		}
	}

	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads json input and appends the values to the
// list. If there are elements in the list, they are not removed.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	rv := []json.RawMessage{}

	if err := json.Unmarshal(in, &rv); err != nil {
		return err
	}

	var zero T
	tail := l.Back()
	for idx := range rv {
		elem := NewElement(zero)
		if err := elem.UnmarshalJSON(rv[idx]); err != nil {
			return err
		}
		tail = tail.Append(elem)
	}
	return nil
}

// UnmarshalJSON reads the json value, and sets the value of the
// element to the value in the json, potentially overriding an
// existing value.
func (e *Element[T]) UnmarshalJSON(in []byte) error {
	var val T
	if err := json.Unmarshal(in, &val); err != nil {
		return err
	}
	e.Set(val)
	return nil
}
