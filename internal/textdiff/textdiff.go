package textdiff

import "strings"

const hiddenMarker = "......"

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

type Edit struct {
	Op   Op
	Text string
}

// Lines returns the shortest edit script turning src into dst, using the
// greedy Myers algorithm.
func Lines(src, dst []string) []Edit {
	n, m := len(src), len(dst)
	limit := n + m
	offset := limit + 1

	frontier := make([]int, 2*limit+3) //nolint: mnd
	var trace [][]int

search:
	for d := 0; d <= limit; d++ {
		snapshot := make([]int, len(frontier))
		copy(snapshot, frontier)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && frontier[offset+k-1] < frontier[offset+k+1]) {
				x = frontier[offset+k+1]
			} else {
				x = frontier[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && src[x] == dst[y] {
				x++
				y++
			}
			frontier[offset+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	edits := make([]Edit, 0, n+m)
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		previous := trace[d]
		k := x - y

		prevK := k - 1
		if k == -d || (k != d && previous[offset+k-1] < previous[offset+k+1]) {
			prevK = k + 1
		}
		prevX := previous[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			edits = append(edits, Edit{Op: Equal, Text: src[x-1]})
			x--
			y--
		}
		if d > 0 {
			if x == prevX {
				edits = append(edits, Edit{Op: Insert, Text: dst[y-1]})
			} else {
				edits = append(edits, Edit{Op: Delete, Text: src[x-1]})
			}
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
	return edits
}

// Unified renders the edit script between src and dst. Unchanged lines
// further than contextLines away from a change collapse into a single
// "......" marker. Identical inputs render as an empty string.
func Unified(src, dst []string, contextLines int) string {
	edits := Lines(src, dst)

	distance := make([]int, len(edits))
	nearest := len(edits) + contextLines + 1
	for i, edit := range edits {
		if edit.Op != Equal {
			nearest = 0
		} else {
			nearest++
		}
		distance[i] = nearest
	}

	changed := false
	nearest = len(edits) + contextLines + 1
	for i := len(edits) - 1; i >= 0; i-- {
		if edits[i].Op != Equal {
			nearest = 0
			changed = true
		} else {
			nearest++
		}
		if nearest < distance[i] {
			distance[i] = nearest
		}
	}
	if !changed {
		return ""
	}

	var lines []string
	hiding := false
	for i, edit := range edits {
		switch edit.Op {
		case Delete:
			lines = append(lines, "- "+edit.Text)
			hiding = false
		case Insert:
			lines = append(lines, "+ "+edit.Text)
			hiding = false
		case Equal:
			if distance[i] <= contextLines {
				lines = append(lines, "  "+edit.Text)
				hiding = false
				continue
			}
			if !hiding {
				lines = append(lines, hiddenMarker)
			}
			hiding = true
		}
	}
	return strings.Join(lines, "\n")
}
