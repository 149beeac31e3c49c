package igf

import (
	"fmt"
	"slices"

	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/internal"
)

// Paginated splits a flat list of buttons into pages laid out on fixed slot
// positions, with optional previous/next buttons.
//
// Like every layout, a Paginated belongs to the first screen built with it.
//
// The i-th item of a page is placed at the i-th slot position; the item's own
// Slot is ignored. Items beyond the available slot positions are not shown.
type Paginated struct {
	screen *Screen

	items         []Button
	slotPositions []int
	static        []Button
	emptyButton   *Button
	prevButton    *Button
	nextButton    *Button

	itemsPerPage int
	currentPage  int
	totalPages   int

	err error
}

// NewPaginated creates a paginated layout with the default page size.
func NewPaginated() *Paginated {
	return &Paginated{
		itemsPerPage: constants.DefaultItemsPerPage,
	}
}

// SetPageItems replaces the paginated items. It does not re-render.
func (p *Paginated) SetPageItems(items []Button) *Paginated {
	p.items = slices.Clone(items)
	p.recompute()
	return p
}

// SetSlotPositions replaces the slots page items are placed on.
func (p *Paginated) SetSlotPositions(slots []int) *Paginated {
	p.slotPositions = slices.Clone(slots)
	return p
}

// SetItemsPerPage changes the page size. A non-positive size is rejected;
// the error is returned by the screen's Build unless a later call sets a
// valid size.
func (p *Paginated) SetItemsPerPage(n int) *Paginated {
	if n <= 0 {
		p.err = NewConfigurationError("set_items_per_page", fmt.Errorf("%w: %d", ErrInvalidItemsPerPage, n))
		return p
	}
	p.err = nil
	p.itemsPerPage = n
	p.recompute()
	return p
}

// SetEmptyButton sets the button shown when there are no items.
func (p *Paginated) SetEmptyButton(b Button) *Paginated {
	p.emptyButton = &b
	return p
}

// SetStaticButtons sets buttons shown on every page, including the empty page.
func (p *Paginated) SetStaticButtons(buttons ...Button) *Paginated {
	p.static = slices.Clone(buttons)
	return p
}

// SetPageButtons sets the navigation buttons. Their click actions are
// replaced with PrevPage and NextPage.
func (p *Paginated) SetPageButtons(prev, next Button) *Paginated {
	prev.SetClick(func(Actor) { p.PrevPage() })
	next.SetClick(func(Actor) { p.NextPage() })
	p.prevButton = &prev
	p.nextButton = &next
	return p
}

// SetPage moves to page n, clamped into the valid range. The screen is
// re-rendered only when the page actually changes.
func (p *Paginated) SetPage(n int) *Paginated {
	page := p.clamp(n)
	if page == p.currentPage {
		return p
	}

	p.currentPage = page
	if p.screen != nil && p.screen.Built() {
		p.screen.Render()
	}
	return p
}

func (p *Paginated) PrevPage() *Paginated { return p.SetPage(p.currentPage - 1) }
func (p *Paginated) NextPage() *Paginated { return p.SetPage(p.currentPage + 1) }

func (p *Paginated) Page() int         { return p.currentPage }
func (p *Paginated) TotalPages() int   { return p.totalPages }
func (p *Paginated) ItemsPerPage() int { return p.itemsPerPage }
func (p *Paginated) PageItems() []Button {
	return slices.Clone(p.items)
}

// HasPrev reports whether the previous-page button is visible.
func (p *Paginated) HasPrev() bool { return p.currentPage > 0 }

// HasNext reports whether the next-page button is visible.
func (p *Paginated) HasNext() bool { return p.currentPage < p.totalPages-1 }

func (p *Paginated) recompute() {
	p.totalPages = (len(p.items) + p.itemsPerPage - 1) / p.itemsPerPage
	p.currentPage = p.clamp(p.currentPage)
}

func (p *Paginated) clamp(n int) int {
	if p.totalPages <= 0 {
		return 0
	}
	return max(0, min(n, p.totalPages-1))
}

func (p *Paginated) Prepare(screen *Screen) error {
	if p.err != nil {
		return p.err
	}
	return bindScreen(&p.screen, screen)
}

func (p *Paginated) Buttons() []Button {
	buttons := slices.Clone(p.static)

	if len(p.items) == 0 {
		if p.emptyButton != nil {
			buttons = append(buttons, *p.emptyButton)
		}
		return buttons
	}

	start := p.currentPage * p.itemsPerPage
	end := min(start+p.itemsPerPage, len(p.items))

	for i, item := range p.items[start:end] {
		if i >= len(p.slotPositions) {
			internal.GetInternalLogger().Debug("Page items exceed slot positions",
				"page", p.currentPage, "items", end-start, "slots", len(p.slotPositions))
			break
		}
		buttons = append(buttons, item.At(p.slotPositions[i]))
	}

	if p.prevButton != nil && p.HasPrev() {
		buttons = append(buttons, *p.prevButton)
	}
	if p.nextButton != nil && p.HasNext() {
		buttons = append(buttons, *p.nextButton)
	}

	return buttons
}
