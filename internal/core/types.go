package core

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// Cell identifies a single board position by column and row.
type Cell struct {
	X int
	Y int
}

// RunState is the lifecycle state of the simulation loop.
type RunState int

const (
	Running RunState = iota
	Paused
	Quit
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Frame is the plain-data snapshot handed to renderers. It carries no
// board or loop references, so render targets stay decoupled from the
// simulation core.
type Frame struct {
	Size       Size
	Alive      []Cell
	Generation int
	Speed      SpeedLevel
	State      RunState
}

// Population reports the number of live cells in the frame.
func (f Frame) Population() int {
	return len(f.Alive)
}
