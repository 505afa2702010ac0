package debug

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneGetSrc(t *testing.T) {
	rec := &recorder{}
	lane := NewLane(2, slog.New(rec))
	assert.Equal(t, 2, lane.Index())

	lane.SetSrc(7, NewFloat(1, 2))
	assert.True(t, lane.GetSrc(7).Equal(NewFloat(1, 2)))
	assert.Empty(t, rec.Records())

	assert.False(t, lane.GetSrc(8).Valid())
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelWarn, records[0].Level)
}

func TestLaneIDs(t *testing.T) {
	lane := NewLane(0, nil)
	lane.SetSrc(9, NewInt(1))
	lane.SetSrc(3, NewInt(2))
	lane.SetSrc(5, NewInt(3))

	assert.Equal(t, []ID{3, 5, 9}, lane.IDs())
}

// negate is a one-operand float instruction used to exercise lanes.
func negate(state ThreadState, params []ID) ShaderVariable {
	if !CheckParams(state, "Negate", params, 1) {
		return ShaderVariable{}
	}
	v := state.GetSrc(params[0])
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, -v.F(c))
	}
	return v
}

func negateSet() *ExtInstDispatcher {
	return NewExtInstDispatcher("Negate.set", func(d *ExtInstDispatcher) {
		d.Resize(2, func(op uint32) string { return []string{"Bad", "Negate"}[op] })
		d.Set(1, negate)
	})
}

func TestLaneExecuteExtInst(t *testing.T) {
	set := negateSet()
	lane := NewLane(0, nil)
	lane.SetSrc(1, NewFloat(1, -2, 3))

	require.NoError(t, lane.ExecuteExtInst(set, 2, 1, []ID{1}))
	got := lane.GetSrc(2)
	assert.Equal(t, "_2", got.Name)
	assert.True(t, got.Equal(NewFloat(-1, 2, -3)))

	err := lane.ExecuteExtInst(set, 3, 0, []ID{1})
	assert.True(t, errors.Is(err, &Error{Kind: ErrUnsupportedInstruction}))
	assert.Equal(t, []ID{1, 2}, lane.IDs(), "failed instructions bind nothing")
}

func TestRunLanes(t *testing.T) {
	set := negateSet()
	rec := &recorder{}
	logger := slog.New(rec)

	lanes := make([]*Lane, 64)
	for i := range lanes {
		lanes[i] = NewLane(i, logger)
		lanes[i].SetSrc(1, NewFloat(float32(i), 1))
	}

	err := RunLanes(context.Background(), lanes, func(_ context.Context, lane *Lane) error {
		for step := 0; step < 100; step++ {
			src := ID(1 + step%2)
			if err := lane.ExecuteExtInst(set, src^3, 1, []ID{src}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	for i, lane := range lanes {
		// An even number of negations ends back on the input.
		assert.True(t, lane.GetSrc(1).Equal(NewFloat(float32(i), 1)), "lane %d", i)
		assert.True(t, lane.GetSrc(2).Equal(NewFloat(-float32(i), -1)), "lane %d", i)
	}
	assert.Empty(t, rec.Records())
}

func TestRunLanesFirstError(t *testing.T) {
	set := negateSet()
	lanes := []*Lane{NewLane(0, nil), NewLane(1, nil)}

	err := RunLanes(context.Background(), lanes, func(_ context.Context, lane *Lane) error {
		return lane.ExecuteExtInst(set, 2, 7, nil)
	})

	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, uint32(7), derr.Opcode)
}
