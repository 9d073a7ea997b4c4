/*
File    : reach/stdlib/crypto.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stdlib

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/akashmaji946/reach/objects"
	"github.com/akashmaji946/reach/runtime"
)

func registerCrypto(builder *runtime.HostBuilder) []*runtime.HostCallable {
	return []*runtime.HostCallable{
		builder.Register("md5", digestBuiltin("md5", func(b []byte) []byte { s := md5.Sum(b); return s[:] })),
		builder.Register("sha1", digestBuiltin("sha1", func(b []byte) []byte { s := sha1.Sum(b); return s[:] })),
		builder.Register("sha256", digestBuiltin("sha256", func(b []byte) []byte { s := sha256.Sum256(b); return s[:] })),
		builder.Register("base64_encode", func(arg objects.Value) (objects.Value, error) {
			s, err := asString("base64_encode", arg)
			if err != nil {
				return nil, err
			}
			return &objects.String{Value: base64.StdEncoding.EncodeToString([]byte(s))}, nil
		}),
		builder.Register("base64_decode", func(arg objects.Value) (objects.Value, error) {
			s, err := asString("base64_decode", arg)
			if err != nil {
				return nil, err
			}
			out, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, err
			}
			return &objects.String{Value: string(out)}, nil
		}),
	}
}

// digestBuiltin hashes its string argument with fn and returns the hex
// digest, the same convention the teacher's crypto builtins use.
func digestBuiltin(name string, fn func([]byte) []byte) runtime.HostFunc {
	return func(arg objects.Value) (objects.Value, error) {
		s, err := asString(name, arg)
		if err != nil {
			return nil, err
		}
		return &objects.String{Value: hex.EncodeToString(fn([]byte(s)))}, nil
	}
}
