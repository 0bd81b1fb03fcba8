package host

import "testing"

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreateElement, "CreateElement"},
		{OpCreateText, "CreateText"},
		{OpAppendChild, "AppendChild"},
		{OpInsertBefore, "InsertBefore"},
		{OpReplaceChild, "ReplaceChild"},
		{OpRemoveChild, "RemoveChild"},
		{OpSetProperty, "SetProperty"},
		{OpClearProperty, "ClearProperty"},
		{OpAddListener, "AddListener"},
		{OpRemoveListener, "RemoveListener"},
		{Op(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("Op.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpIsStructural(t *testing.T) {
	structural := map[Op]bool{
		OpAppendChild:  true,
		OpInsertBefore: true,
		OpReplaceChild: true,
		OpRemoveChild:  true,
	}
	for op := OpCreateElement; op <= OpRemoveListener; op++ {
		if got := op.IsStructural(); got != structural[op] {
			t.Errorf("%v.IsStructural() = %v, want %v", op, got, structural[op])
		}
	}
}
