// Package topo decides which bus rows of an assembled external case belong
// to the live network. It operates purely on the matrix form: bus types and
// in-service branch endpoints.
package topo

import (
	"github.com/vk/powergridgo/internal/mcase"
)

// UnreachableBuses returns the rows of buses that no in-service branch path
// connects to any reference bus. Rows already typed isolated are not
// reported again.
func UnreachableBuses(c *mcase.Case) []int {
	n := c.NumBus()
	adj := make(map[int][]int)
	for i := 0; i < c.NumBranch(); i++ {
		if real(c.Branch.At(i, mcase.BrStatus)) == 0 {
			continue
		}
		f := int(real(c.Branch.At(i, mcase.FBus)))
		t := int(real(c.Branch.At(i, mcase.TBus)))
		adj[f] = append(adj[f], t)
		adj[t] = append(adj[t], f)
	}

	visited := make([]bool, n)
	var queue []int
	for i := 0; i < n; i++ {
		if c.Bus.At(i, mcase.BusType) == mcase.TypeRef {
			visited[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, next := range adj[b] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	var unreachable []int
	for i := 0; i < n; i++ {
		if !visited[i] && c.Bus.At(i, mcase.BusType) != mcase.TypeNone {
			unreachable = append(unreachable, i)
		}
	}
	return unreachable
}

// IsolateUnreachable types every unreachable bus out of the case and
// returns the affected rows.
func IsolateUnreachable(c *mcase.Case) []int {
	rows := UnreachableBuses(c)
	for _, r := range rows {
		c.Bus.Set(r, mcase.BusType, mcase.TypeNone)
	}
	return rows
}

// IsolateDisconnected is the cheap fallback used without a full
// connectivity check: any non-reference bus touched by no in-service branch
// is typed out.
func IsolateDisconnected(c *mcase.Case) []int {
	touched := make([]bool, c.NumBus())
	for i := 0; i < c.NumBranch(); i++ {
		if real(c.Branch.At(i, mcase.BrStatus)) == 0 {
			continue
		}
		touched[int(real(c.Branch.At(i, mcase.FBus)))] = true
		touched[int(real(c.Branch.At(i, mcase.TBus)))] = true
	}

	var rows []int
	for i := 0; i < c.NumBus(); i++ {
		bt := c.Bus.At(i, mcase.BusType)
		if bt == mcase.TypeNone || bt == mcase.TypeRef {
			continue
		}
		if !touched[i] {
			c.Bus.Set(i, mcase.BusType, mcase.TypeNone)
			rows = append(rows, i)
		}
	}
	return rows
}
