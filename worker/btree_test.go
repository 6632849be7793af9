package worker_test

import (
	"testing"

	bt "github.com/joeycumines/go-behaviortree"

	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/internal/sim"
	"villager-tasks/tasklayer/worker"
)

func tickNode(t *testing.T, node bt.Node) bt.Status {
	t.Helper()
	tick, children := node()
	status, err := tick(children)
	if err != nil {
		t.Fatalf("node tick failed: %v", err)
	}
	return status
}

func TestNodeFailsWhenStartRefused(t *testing.T) {
	world := sim.NewWorld("btree-refused")
	villager := sim.NewVillager("farmer", host.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	wk := worker.MustNew(stoneDefinition(4))

	node := wk.Node(world, villager)
	if status := tickNode(t, node); status != bt.Failure {
		t.Fatalf("status = %v without a target, expected Failure", status)
	}
}

func TestNodeRunsThenSucceeds(t *testing.T) {
	world := sim.NewWorld("btree-run")
	villager := sim.NewVillager("farmer", host.Vec3{X: 1.5, Y: 0.5, Z: 0.5})
	world.SetBlockState(host.BlockPos{X: 1, Y: 0, Z: 0}, sim.StoneState{})
	wk := worker.MustNew(stoneDefinition(3))

	node := wk.Node(world, villager)

	if status := tickNode(t, node); status != bt.Running {
		t.Fatalf("first tick status = %v, expected Running", status)
	}
	for i := 0; i < 3; i++ {
		world.Advance()
		if status := tickNode(t, node); status != bt.Running {
			t.Fatalf("tick %d status = %v, expected Running", i+1, status)
		}
	}
	world.Advance()
	if status := tickNode(t, node); status != bt.Success {
		t.Fatalf("final status = %v, expected Success", status)
	}

	// Completion must have cleared the movement intent and allowed a later
	// restart attempt.
	if _, ok := villager.Memories().Recall(host.MemoryWalkTarget); ok {
		t.Fatal("walk intent must be forgotten on success")
	}
	world.SetTick(world.Tick() + worker.DefaultEndDelay + 1)
	if status := tickNode(t, node); status != bt.Running {
		t.Fatalf("restart status = %v, expected Running", status)
	}
}
