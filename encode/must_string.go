package encode

import "github.com/signadot/jbuild/ir"

func MustString(v ir.Value) string {
	d, err := Stringify(v)
	if err != nil {
		panic(err)
	}
	return string(d)
}
