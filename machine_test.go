package tapir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapirlabs/tapir"
	"github.com/tapirlabs/tapir/pkg/tape"
)

func TestMachineNew(t *testing.T) {
	input := tape.New("a [b] c")
	m := tapir.New(input, tapir.NewState("start", tapir.MoveRight))

	assert.Equal(t, "start", m.CurrentStateID())
	assert.Equal(t, "start", m.InitialStateID())
	assert.Equal(t, 0, m.StepNumber())
	assert.False(t, m.IsHalted())
	assert.Equal(t, "a [b] c", m.Tape().String())

	// The machine runs on its own clone of the input tape.
	input.WriteSymbol("x")
	assert.Equal(t, "a [b] c", m.Tape().String())
}

func TestMachineNewFromText(t *testing.T) {
	m := tapir.NewFromText("[a] b", "0", tapir.Halt)

	assert.Equal(t, "[a] b", m.Tape().String())
	assert.Equal(t, "0", m.CurrentStateID())
	assert.True(t, m.IsHalted())
}

func TestMachineAddState(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)

	require.NoError(t, m.AddState(tapir.NewState("1", tapir.Halt)))

	err := m.AddState(tapir.NewState("1", tapir.MoveLeft))
	require.ErrorIs(t, err, tapir.ErrDuplicateStateID)

	err = m.AddState(tapir.NewState("0", tapir.Halt))
	require.ErrorIs(t, err, tapir.ErrDuplicateStateID, "the initial state's id is taken")
}

func TestMachineAddStatesIsAtomic(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)

	err := m.AddStates(
		tapir.NewState("1", tapir.MoveRight),
		tapir.NewState("2", tapir.MoveLeft),
		tapir.NewState("1", tapir.Halt),
	)
	require.ErrorIs(t, err, tapir.ErrDuplicateStateID)

	// Nothing was inserted.
	_, ok := m.State("1")
	assert.False(t, ok)
	_, ok = m.State("2")
	assert.False(t, ok)

	require.NoError(t, m.AddStates(
		tapir.NewState("1", tapir.MoveRight),
		tapir.NewState("2", tapir.MoveLeft),
	))
	_, ok = m.State("2")
	assert.True(t, ok)
}

func TestMachineNewStateRegisters(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)

	s, err := m.NewState("halt", tapir.Halt)
	require.NoError(t, err)

	got, ok := m.State("halt")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, err = m.NewState("halt", tapir.Accept)
	require.ErrorIs(t, err, tapir.ErrDuplicateStateID)
}

func TestMachineStatesOrderedByID(t *testing.T) {
	m := tapir.NewFromText("[a]", "b", tapir.MoveRight)
	require.NoError(t, m.AddStates(
		tapir.NewState("c", tapir.Halt),
		tapir.NewState("a", tapir.MoveLeft),
	))

	var ids []string
	for _, s := range m.States() {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMachineRemoveState(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
	one, err := m.NewState("1", tapir.MoveRight)
	require.NoError(t, err)
	two, err := m.NewState("2", tapir.Halt)
	require.NoError(t, err)

	zero, _ := m.State("0")
	_, err = zero.AddTransition("a", "a", one)
	require.NoError(t, err)
	outgoing, err := one.AddTransition("b", "b", two)
	require.NoError(t, err)
	incoming, err := two.AddTransition("c", "c", one)
	require.NoError(t, err)

	removed, err := m.RemoveState("missing")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = m.RemoveState("0")
	require.ErrorIs(t, err, tapir.ErrInitialStateRemoval)
	assert.False(t, removed)
	_, ok := m.State("0")
	assert.True(t, ok, "a failed removal must not unregister anything")

	removed, err = m.RemoveState("1")
	require.NoError(t, err)
	assert.True(t, removed)
	_, ok = m.State("1")
	assert.False(t, ok)

	// Every transition incident to the removed state is severed.
	assert.False(t, zero.HasTransition("a"))
	assert.False(t, two.HasTransition("c"))
	assert.Nil(t, outgoing.From())
	assert.Empty(t, incoming.ToID())
}

func TestMachineSetStateID(t *testing.T) {
	m := tapir.NewFromText("[a] a", "0", tapir.MoveRight)
	one, err := m.NewState("1", tapir.Halt)
	require.NoError(t, err)
	zero, _ := m.State("0")
	_, err = zero.AddTransition("a", "a", one)
	require.NoError(t, err)

	require.NoError(t, m.SetStateID(one, "done"))
	assert.Equal(t, "done", one.ID())
	_, ok := m.State("1")
	assert.False(t, ok)
	got, ok := m.State("done")
	require.True(t, ok)
	assert.Same(t, one, got)

	// Destination handles follow the rename: stepping still finds the state.
	assert.True(t, m.StepForward())
	assert.Equal(t, "done", m.CurrentStateID())
}

func TestMachineSetStateIDConflicts(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
	one, err := m.NewState("1", tapir.Halt)
	require.NoError(t, err)

	err = m.SetStateID(one, "0")
	require.ErrorIs(t, err, tapir.ErrDuplicateStateID)
	assert.Equal(t, "1", one.ID())

	require.NoError(t, m.SetStateID(one, "1"), "renaming to the current id is a no-op")

	stray := tapir.NewState("stray", tapir.Halt)
	require.Error(t, m.SetStateID(stray, "2"), "unregistered states cannot be renamed")
}

func TestMachineRenamedInitialStateStaysProtected(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
	zero, _ := m.State("0")

	require.NoError(t, m.SetStateID(zero, "start"))
	assert.Equal(t, "start", m.InitialStateID())

	removed, err := m.RemoveState("start")
	require.ErrorIs(t, err, tapir.ErrInitialStateRemoval)
	assert.False(t, removed)
}

func TestMachineRenameRewritesHistory(t *testing.T) {
	m := tapir.NewFromText("[b]", "0", tapir.MoveRight)
	one, err := m.NewState("1", tapir.Halt)
	require.NoError(t, err)
	zero, _ := m.State("0")
	_, err = zero.AddTransition("b", "b", one)
	require.NoError(t, err)

	require.True(t, m.StepForward())
	require.Equal(t, "1", m.CurrentStateID())

	require.NoError(t, m.SetStateID(zero, "zero"))

	// The recorded pre-step state follows the rename.
	require.True(t, m.UndoStep())
	assert.Equal(t, "zero", m.CurrentStateID())
	assert.Equal(t, 0, m.StepNumber())
}

func TestMachineUndoPastRemovedState(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)
	one, err := m.NewState("1", tapir.MoveRight)
	require.NoError(t, err)
	zero, _ := m.State("0")
	_, err = zero.AddTransition("a", "a", one)
	require.NoError(t, err)
	_, err = one.AddTransition("#", "#", zero)
	require.NoError(t, err)

	require.NoError(t, m.StepForwardN(2))
	require.Equal(t, "0", m.CurrentStateID())

	removed, err := m.RemoveState("1")
	require.NoError(t, err)
	require.True(t, removed)

	// The undone step recorded state "1", which no longer resolves; tape and
	// head are still restored.
	require.True(t, m.UndoStep())
	assert.Equal(t, "0", m.CurrentStateID())
	assert.Equal(t, 1, m.StepNumber())
	assert.Equal(t, 1, m.Tape().HeadPosition())
}

func TestMachineStepForwardNRejectsNegative(t *testing.T) {
	m := tapir.NewFromText("[a]", "0", tapir.MoveRight)

	err := m.StepForwardN(-1)
	require.ErrorIs(t, err, tapir.ErrNegativeSteps)
	assert.Equal(t, 0, m.StepNumber())

	require.NoError(t, m.StepForwardN(0))
	assert.Equal(t, 0, m.StepNumber())
}
