/*
File    : reach/stdlib/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"time"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerTime(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("now", nowBuiltin),
		builder.Register("now_ms", nowMsBuiltin),
		builder.Register("format_time", formatTimeBuiltin),
	}
}

// nowBuiltin ignores its argument and returns the current Unix timestamp
// in whole seconds.
func nowBuiltin(objects.Value) (objects.Value, error) {
	return &objects.Int{Value: int32(time.Now().Unix())}, nil
}

// nowMsBuiltin returns the current Unix timestamp in milliseconds.
func nowMsBuiltin(objects.Value) (objects.Value, error) {
	return &objects.Int{Value: int32(time.Now().UnixMilli())}, nil
}

// formatTimeBuiltin takes [unixSeconds, layout] and renders it with Go's
// reference-time layout syntax.
func formatTimeBuiltin(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("format_time", arg, 2)
	if err != nil {
		return nil, err
	}
	secs, err := asInt("format_time", elems[0])
	if err != nil {
		return nil, err
	}
	layout, err := asString("format_time", elems[1])
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: time.Unix(int64(secs), 0).UTC().Format(layout)}, nil
}
