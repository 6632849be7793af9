package worker

import (
	bt "github.com/joeycumines/go-behaviortree"

	"villager-tasks/tasklayer/host"
)

// Node adapts the worker lifecycle to a go-behaviortree leaf for hosts that
// drive actors with behavior trees instead of a priority scheduler. A refused
// start maps to Failure (routine, per the scheduler contract), an active run
// to Running, and a completed run to Success.
//
// The node owns the start/finish bookkeeping; callers must not drive the same
// Worker through both the node and the raw lifecycle methods.
func (t *Worker) Node(w host.World, v host.Villager) bt.Node {
	running := false
	return func() (bt.Tick, []bt.Node) {
		return func([]bt.Node) (bt.Status, error) {
			tick := w.Tick()
			if !running {
				if !t.ShouldStart(w, v, tick) {
					return bt.Failure, nil
				}
				running = true
				t.Run(w, v, tick)
				return bt.Running, nil
			}
			if !t.ShouldKeepRunning(w, v, tick) {
				t.FinishRunning(w, v, tick)
				running = false
				return bt.Success, nil
			}
			t.Run(w, v, tick)
			t.KeepRunning(w, v, tick)
			return bt.Running, nil
		}, nil
	}
}
