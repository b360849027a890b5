package parameters

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// OptionalFloat is a real number that may be explicitly not applicable.
// The zero value is unset, which is distinct from a set value of 0.
type OptionalFloat struct {
	value float64
	set   bool
}

func Some(v float64) OptionalFloat {
	return OptionalFloat{value: v, set: true}
}

func (o OptionalFloat) Get() (float64, bool) {
	return o.value, o.set
}

func (o OptionalFloat) IsSet() bool {
	return o.set
}

func (o OptionalFloat) String() string {
	if !o.set {
		return "null"
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

func (o *OptionalFloat) UnmarshalYAML(value *yaml.Node) error {
	var v float64
	if err := value.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o OptionalFloat) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", data, err)
	}
	if v == nil {
		*o = OptionalFloat{}
		return nil
	}
	*o = Some(*v)
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// optionalFloatValue exposes the wrapped number to the validator, which
// skips unset values through omitempty.
func optionalFloatValue(field reflect.Value) any {
	if o, ok := field.Interface().(OptionalFloat); ok && o.set {
		return o.value
	}
	return nil
}
