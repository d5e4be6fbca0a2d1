package searcher

import (
	"fmt"
	"math"
	"tictac/game"

	"golang.org/x/exp/rand"
)

// decision is a node of the search tree. Its reward statistics are kept from
// the perspective of the player who moved into the node, so the perspective
// flip along the backup path falls out of alternating movers.
type decision struct {
	parent     *decision
	player     string // Player who made the move into this node
	unexplored []game.Move
	explored   []game.Move
	children   []*decision // Parallel to explored
	rewards    float64
	visits     int
}

func newDecision(parent *decision, state game.State) *decision {
	return &decision{
		parent:     parent,
		player:     state.Player(),
		unexplored: state.LegalMoves(),
	}
}

// selectOrExpand performs one descent step: a terminal node returns itself,
// an expandable node adds exactly one child via a policy-chosen unexplored
// move, and a fully expanded node selects the max UCB child.
func (d *decision) selectOrExpand(state game.State, policy Policy, rng *rand.Rand, cSquared float64) (*decision, game.State, bool) {
	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := policy.Pick(state, d.unexplored, rng)
		child, childState := d.expand(move, state)
		return child, childState, true
	}

	// Fully expanded node
	ith := d.pickChild(cSquared)
	child := d.children[ith]
	move := d.explored[ith]
	return child, state.Play(move), false
}

// expand consumes the given unexplored move and adds exactly one child for
// it. The move must still be in the unexplored set.
func (d *decision) expand(move game.Move, state game.State) (*decision, game.State) {
	ith := -1
	for i, m := range d.unexplored {
		if m == move {
			ith = i
			break
		}
	}
	if ith < 0 {
		panic(fmt.Sprintf("move %v already expanded or never legal", move))
	}
	d.unexplored = append(d.unexplored[:ith], d.unexplored[ith+1:]...)

	childState := state.Play(move)
	child := &decision{
		parent:     d,
		player:     state.Player(), // The mover into the child
		unexplored: childState.LegalMoves(),
	}
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild(cSquared float64) int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := cSquared * math.Log(float64(d.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) score(normalizer float64) float64 {
	return ucb1(d.rewards, d.visits, normalizer)
}

// backup folds the rollout outcome into the node and returns its parent for
// the iterative walk up to the root.
func (d *decision) backup(winner string) *decision {
	d.rewards += computeReward(winner, d.player)
	d.visits++
	return d.parent
}

// mostVisited returns the move of the most visited child, ties broken by the
// first child in expansion order.
func (d *decision) mostVisited() game.Move {
	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := d.children[0].visits
	for i, child := range d.children[1:] {
		if child.visits > maxVisits {
			maxVisits = child.visits
			bestIndex = i + 1
		}
	}
	return d.explored[bestIndex]
}
