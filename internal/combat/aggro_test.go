package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestAggroTableMerge(t *testing.T) {
	table := NewAggroTable()
	table.Add("alice", 10)
	table.Add("bob", 5)
	table.Add("alice", 3)

	id, ok := table.Highest()
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "highest", id, "alice")
	testutil.AssertEqual(t, "len", table.Len(), 2)
}

func TestAggroTableTieBreak(t *testing.T) {
	// Equal threat resolves to whoever attacked first, regardless of the
	// order entries happen to be added back up to the same value.
	table := NewAggroTable()
	table.Add("first", 5)
	table.Add("second", 2)
	table.Add("second", 3)

	for range 10 {
		id, ok := table.Highest()
		testutil.AssertEqual(t, "found", ok, true)
		testutil.AssertEqual(t, "highest", id, "first")
	}
}

func TestAggroTableOvertake(t *testing.T) {
	table := NewAggroTable()
	table.Add("first", 5)
	table.Add("second", 6)

	id, _ := table.Highest()
	testutil.AssertEqual(t, "highest", id, "second")
}

func TestAggroTableEmpty(t *testing.T) {
	table := NewAggroTable()

	_, ok := table.Highest()
	testutil.AssertEqual(t, "found", ok, false)

	table.Add("alice", 1)
	table.Clear()
	_, ok = table.Highest()
	testutil.AssertEqual(t, "found after clear", ok, false)
}

func TestAggroTableRemove(t *testing.T) {
	table := NewAggroTable()
	table.Add("alice", 10)
	table.Add("bob", 5)
	table.Remove("alice")

	id, ok := table.Highest()
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "highest", id, "bob")
}
