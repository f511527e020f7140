package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it. This is helpful for telling apart motors and
// flectors in debug output, where the raw coefficients all look alike.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for obj. Equal values share a name. Nil
// pointers, maps and the like are named "Ø".
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	mu.Lock()
	defer mu.Unlock()

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

// Reset forgets every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
