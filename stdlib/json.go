/*
File    : reach/stdlib/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"encoding/json"
	"fmt"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerJSON(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("encode_json", encodeJSON),
		builder.Register("decode_json", decodeJSON),
	}
}

// encodeJSON marshals any reach value (scalars, arrays, objects, None) to
// its JSON text form.
func encodeJSON(arg objects.Value) (objects.Value, error) {
	data, err := valueToAny(arg)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode_json: %w", err)
	}
	return &objects.String{Value: string(out)}, nil
}

// decodeJSON parses a JSON string into the reach value it represents.
func decodeJSON(arg objects.Value) (objects.Value, error) {
	s, err := asString("decode_json", arg)
	if err != nil {
		return nil, err
	}
	var data interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("decode_json: %w", err)
	}
	return anyToValue(data), nil
}
