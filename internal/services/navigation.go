package services

import (
	"career-globe-service/internal/domain"
	"sync"
)

// OverviewIndex is the navigator position showing the whole globe.
const OverviewIndex = -1

// Navigator walks an ordered milestone list one stop at a time.
//
// Index -1 is the overview. Navigation requests are dropped while a camera
// transition is in flight so the camera never gets two targets at once.
type Navigator struct {
	mu            sync.Mutex
	milestones    []*domain.Milestone
	index         int
	transitioning bool
}

func NewNavigator(milestones []*domain.Milestone) *Navigator {
	return &Navigator{milestones: milestones, index: OverviewIndex}
}

// Current returns the focused milestone, or nil at the overview.
func (n *Navigator) Current() *domain.Milestone {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index < 0 || n.index >= len(n.milestones) {
		return nil
	}
	return n.milestones[n.index]
}

func (n *Navigator) Index() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index
}

func (n *Navigator) Total() int { return len(n.milestones) }

func (n *Navigator) HasNext() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index < len(n.milestones)-1
}

func (n *Navigator) HasPrevious() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index > OverviewIndex
}

func (n *Navigator) Transitioning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.transitioning
}

func (n *Navigator) SetTransitioning(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.transitioning = v
}

// Next advances one milestone; it stays on the last one.
func (n *Navigator) Next() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.transitioning || n.index >= len(n.milestones)-1 {
		return false
	}
	n.index++
	return true
}

// Previous steps back; it stays on the overview.
func (n *Navigator) Previous() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.transitioning || n.index <= OverviewIndex {
		return false
	}
	n.index--
	return true
}

// GoTo focuses the milestone with the given id. Unknown ids are ignored.
func (n *Navigator) GoTo(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.transitioning {
		return false
	}
	i := domain.FindMilestone(n.milestones, id)
	if i < 0 {
		return false
	}
	n.index = i
	return true
}

// GoToIndex accepts OverviewIndex through Total()-1.
func (n *Navigator) GoToIndex(i int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.transitioning || i < OverviewIndex || i >= len(n.milestones) {
		return false
	}
	n.index = i
	return true
}
