//go:build !fslist_release

package fslist_test

import (
	"fmt"

	"github.com/kang-sw/fslist"
)

// Example_contractViolation recovers the panic raised on misuse.
func Example_contractViolation() {
	l := fslist.New(1, make([]int, 1), make([]fslist.Link[uint8], 1))

	defer func() {
		ce, _ := fslist.AsContractError(recover())
		fmt.Println(ce.Op, ce.Capacity)
	}()
	l.PopBack()
	// Output: pop_back 1
}
