package main

import (
	"flag"
	"os"

	"github.com/vecport/rawvec-go/mem"
	"github.com/vecport/rawvec-go/ut"
	"github.com/vecport/rawvec-go/vec"
)

func main() {
	countFlag := flag.Int("count", 10, "Number of values to push")
	capFlag := flag.Int("cap", 0, "Initial capacity")
	flag.Parse()

	mem.VarInit()
	ut.LoggerSet(ut.DefaultLogger, os.Stdout)

	var v *vec.Vec[int]
	if *capFlag > 0 {
		v = vec.WithCapacity[int](*capFlag)
	} else {
		v = vec.New[int]()
	}

	for i := 0; i < *countFlag; i++ {
		v.Push(i * 10)
	}
	ut.Log(nil, "pushed %d values: len=%d cap=%d bytes=%d\n",
		*countFlag, v.Len(), v.Cap(), mem.TotalAllocated)

	if p := v.Get(0); p != nil {
		ut.Log(nil, "first=%d\n", *p)
	}
	if p := v.Get(v.Len() - 1); p != nil {
		ut.Log(nil, "last=%d\n", *p)
	}

	for {
		val, ok := v.Pop()
		if !ok {
			break
		}
		ut.Log(nil, "pop %d\n", val)
	}

	v.Free()
	ut.Log(nil, "after free: len=%d cap=%d bytes=%d\n",
		v.Len(), v.Cap(), mem.TotalAllocated)
}
