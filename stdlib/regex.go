/*
File    : reach/stdlib/regex.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"regexp"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerRegex(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("match_regex", matchRegex),
		builder.Register("find_regex", findRegex),
		builder.Register("replace_regex", replaceRegex),
	}
}

// matchRegex takes [pattern, s] and reports whether pattern matches
// anywhere in s.
func matchRegex(arg objects.Value) (objects.Value, error) {
	re, s, err := compileAndArg("match_regex", arg)
	if err != nil {
		return nil, err
	}
	return &objects.Boolean{Value: re.MatchString(s)}, nil
}

// findRegex takes [pattern, s] and returns the first match, or an empty
// string if there is none.
func findRegex(arg objects.Value) (objects.Value, error) {
	re, s, err := compileAndArg("find_regex", arg)
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: re.FindString(s)}, nil
}

// replaceRegex takes [pattern, s, repl] and replaces every match of
// pattern in s with repl.
func replaceRegex(arg objects.Value) (objects.Value, error) {
	elems, err := argsFrom("replace_regex", arg, 3)
	if err != nil {
		return nil, err
	}
	pattern, err := asString("replace_regex", elems[0])
	if err != nil {
		return nil, err
	}
	s, err := asString("replace_regex", elems[1])
	if err != nil {
		return nil, err
	}
	repl, err := asString("replace_regex", elems[2])
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: re.ReplaceAllString(s, repl)}, nil
}

func compileAndArg(name string, arg objects.Value) (*regexp.Regexp, string, error) {
	elems, err := argsFrom(name, arg, 2)
	if err != nil {
		return nil, "", err
	}
	pattern, err := asString(name, elems[0])
	if err != nil {
		return nil, "", err
	}
	s, err := asString(name, elems[1])
	if err != nil {
		return nil, "", err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, "", err
	}
	return re, s, nil
}
