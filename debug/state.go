package debug

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// ID names an SSA value in a lane's live state.
type ID uint32

// ThreadState is the interpreter state of one lane as seen by an extended
// instruction.
type ThreadState interface {
	// GetSrc returns the value currently bound to id. It must not block or
	// modify the state.
	GetSrc(id ID) ShaderVariable

	// Logger is the diagnostic channel for this lane.
	Logger() *slog.Logger
}

// Lane is the register file of a single shader invocation. A Lane is owned
// by one goroutine at a time.
type Lane struct {
	index  int
	logger *slog.Logger
	ids    map[ID]ShaderVariable
}

// NewLane returns an empty lane. A nil logger discards diagnostics.
func NewLane(index int, logger *slog.Logger) *Lane {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Lane{
		index:  index,
		logger: logger.With(slog.Int("lane", index)),
		ids:    make(map[ID]ShaderVariable),
	}
}

// Index returns the lane index within its workgroup.
func (l *Lane) Index() int { return l.index }

// Logger implements ThreadState.
func (l *Lane) Logger() *slog.Logger { return l.logger }

// SetSrc binds v to id.
func (l *Lane) SetSrc(id ID, v ShaderVariable) {
	l.ids[id] = v
}

// GetSrc implements ThreadState. An unbound id is logged and read as the
// invalid sentinel.
func (l *Lane) GetSrc(id ID) ShaderVariable {
	v, ok := l.ids[id]
	if !ok {
		l.logger.Warn("read of unbound id", slog.Uint64("id", uint64(id)))
	}
	return v
}

// IDs returns the bound ids in ascending order.
func (l *Lane) IDs() []ID {
	return slices.Sorted(maps.Keys(l.ids))
}

// ExecuteExtInst runs instruction op of set with params and binds the result
// to result. Unsupported opcodes leave the lane untouched and return an
// *Error.
func (l *Lane) ExecuteExtInst(set *ExtInstDispatcher, result ID, op uint32, params []ID) error {
	v, err := set.Execute(l, op, params)
	if err != nil {
		return err
	}
	v.Name = "_" + strconv.FormatUint(uint64(result), 10)
	l.ids[result] = v
	return nil
}

// RunLanes calls step for every lane concurrently and returns the first
// error. Lanes must be distinct; dispatchers they share are read-only.
func RunLanes(ctx context.Context, lanes []*Lane, step func(ctx context.Context, lane *Lane) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, lane := range lanes {
		g.Go(func() error {
			return step(ctx, lane)
		})
	}
	return g.Wait()
}
