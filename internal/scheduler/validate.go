package scheduler

import (
	"errors"
	"fmt"

	"github.com/mhutchins/crewcal/internal/domain"
)

// ErrInvalidTemplate marks a template whose items cannot be scheduled:
// dangling or out-of-order predecessor references, duplicate IDs, or
// negative lag. Checked with errors.Is.
var ErrInvalidTemplate = errors.New("invalid phase template")

// ValidateTemplate checks that templateItems form a schedulable sequence:
// unique item IDs, every predecessor reference resolving to an item that
// appears strictly earlier in the list, and non-negative lag. Because a
// predecessor must precede its successor positionally, a passing template
// is acyclic by construction.
func ValidateTemplate(templateItems []domain.PhaseTemplateItem) error {
	position := make(map[string]int, len(templateItems))
	for i, item := range templateItems {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d (%q) has no id", ErrInvalidTemplate, i, item.Name)
		}
		if _, dup := position[item.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %q", ErrInvalidTemplate, item.ID)
		}
		position[item.ID] = i
	}

	for i, item := range templateItems {
		if item.LagDays < 0 {
			return fmt.Errorf("%w: item %q has negative lag %d", ErrInvalidTemplate, item.Name, item.LagDays)
		}
		if item.PredecessorItemID == nil {
			continue
		}
		predPos, ok := position[*item.PredecessorItemID]
		if !ok {
			return fmt.Errorf("%w: item %q references unknown predecessor %q", ErrInvalidTemplate, item.Name, *item.PredecessorItemID)
		}
		if predPos >= i {
			return fmt.Errorf("%w: item %q must come after its predecessor %q in sort order", ErrInvalidTemplate, item.Name, *item.PredecessorItemID)
		}
	}

	return nil
}
