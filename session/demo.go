// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

// ERQueueDemo is the triage walkthrough: patients arrive, a critical case
// jumps the line, one patient is squeezed in at position 2, the head is
// treated and a late arrival joins the end.
func ERQueueDemo() []Command {
	return []Command{
		{Target: Queue, Op: "insert-back", Args: []string{"101"}},
		{Target: Queue, Op: "insert-back", Args: []string{"102"}},
		{Target: Queue, Op: "insert-front", Args: []string{"200"}},
		{Target: Queue, Op: "insert-at", Args: []string{"150", "2"}},
		{Target: Queue, Op: "remove-front"},
		{Target: Queue, Op: "insert-back", Args: []string{"300"}},
		{Target: Queue, Op: "forward"},
		{Target: Queue, Op: "backward"},
		{Target: Queue, Op: "front"},
		{Target: Queue, Op: "back"},
	}
}

// TimeStreamDemo records five events, looks one up, removes the Y2K
// paradox and reports what is left of the timeline.
func TimeStreamDemo() []Command {
	return []Command{
		{Target: Tree, Op: "insert", Args: []string{"2050", "Mars Colony Established"}},
		{Target: Tree, Op: "insert", Args: []string{"1969", "Moon Landing"}},
		{Target: Tree, Op: "insert", Args: []string{"2100", "Warp Drive Invented"}},
		{Target: Tree, Op: "insert", Args: []string{"2000", "Y2K Bug"}},
		{Target: Tree, Op: "search", Args: []string{"1969"}},
		{Target: Tree, Op: "insert", Args: []string{"1990", "World Wide Web"}},
		{Target: Tree, Op: "delete", Args: []string{"2000"}},
		{Target: Tree, Op: "report"},
		{Target: Tree, Op: "search", Args: []string{"2000"}},
		{Target: Tree, Op: "span"},
	}
}
