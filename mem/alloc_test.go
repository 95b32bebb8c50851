package mem

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/vecport/rawvec-go/ut"
)

func TestSlotAccounting(t *testing.T) {
	VarInit()
	slots := AllocSlots[int64](4)
	if len(slots) != 4 {
		t.Fatalf("len=%d", len(slots))
	}
	if TotalAllocated != 4*SlotSize[int64]() {
		t.Fatalf("total=%d", TotalAllocated)
	}
	FreeSlots(slots)
	if TotalAllocated != 0 {
		t.Fatalf("total=%d", TotalAllocated)
	}
}

func TestAllocSlotsZeroCount(t *testing.T) {
	VarInit()
	if AllocSlots[int](0) != nil {
		t.Fatalf("expected nil block")
	}
	if TotalAllocated != 0 {
		t.Fatalf("total=%d", TotalAllocated)
	}
}

func TestGrowSlotsCopiesUsedPrefix(t *testing.T) {
	VarInit()
	slots := AllocSlots[int](2)
	slots[0], slots[1] = 10, 20
	slots = GrowSlots(slots, 2, 4)
	if len(slots) != 4 || slots[0] != 10 || slots[1] != 20 {
		t.Fatalf("grow lost data: %v", slots)
	}
	if TotalAllocated != 4*SlotSize[int]() {
		t.Fatalf("total=%d", TotalAllocated)
	}
	FreeSlots(slots)
	if TotalAllocated != 0 {
		t.Fatalf("total=%d", TotalAllocated)
	}
}

func TestAllocSlotsOverflowFatal(t *testing.T) {
	var logBuf bytes.Buffer
	ut.LoggerSet(nil, &logBuf)
	defer ut.LoggerSet(ut.DefaultLogger, os.Stderr)
	ut.DbgReset()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
		if ut.LastAssertion.Expr == "" {
			t.Fatalf("assertion not recorded")
		}
		if logBuf.Len() == 0 {
			t.Fatalf("fatal state not logged")
		}
	}()
	AllocSlots[int64](math.MaxInt/4)
}
