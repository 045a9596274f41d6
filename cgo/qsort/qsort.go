// Package qsort sorts Go slices with the C library qsort.
package qsort

import "C"
import (
	"sync"
	"unsafe"
)

// #include <stdlib.h>
// typedef int (*qsort_cmp_func_t)(const void* a, const void* b);
// extern int _cgo_qsort_compare(void* a, void* b);
import "C"

var goQSortCompareInfo struct {
	base     unsafe.Pointer
	elemSize int
	less     func(a, b int) bool
	sync.Mutex
}

//export _cgo_qsort_compare
func _cgo_qsort_compare(a, b unsafe.Pointer) C.int {
	var (
		// array memory is locked
		base     = uintptr(goQSortCompareInfo.base)
		elemSize = uintptr(goQSortCompareInfo.elemSize)
	)

	i := int((uintptr(a) - base) / elemSize)
	j := int((uintptr(b) - base) / elemSize)

	switch {
	case goQSortCompareInfo.less(i, j): // v[i] < v[j]
		return -1
	case goQSortCompareInfo.less(j, i): // v[i] > v[j]
		return +1
	default:
		return 0
	}
}

// Slice sorts s in place. less(a, b) compares s[a] and s[b] as they are
// at the time of the call, since qsort moves elements between calls.
//
// T must not contain Go pointers: the slice memory is handed to C.
func Slice[T any](s []T, less func(a, b int) bool) {
	if len(s) < 2 {
		return
	}

	goQSortCompareInfo.Lock()
	defer goQSortCompareInfo.Unlock()

	defer func() {
		goQSortCompareInfo.base = nil
		goQSortCompareInfo.elemSize = 0
		goQSortCompareInfo.less = nil
	}()

	goQSortCompareInfo.base = unsafe.Pointer(&s[0])
	goQSortCompareInfo.elemSize = int(unsafe.Sizeof(s[0]))
	goQSortCompareInfo.less = less

	C.qsort(
		goQSortCompareInfo.base,
		C.size_t(len(s)),
		C.size_t(goQSortCompareInfo.elemSize),
		C.qsort_cmp_func_t(C._cgo_qsort_compare),
	)
}
