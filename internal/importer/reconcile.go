package importer

import (
	"fmt"

	"github.com/3k2024/bodega-simple/internal/models"
)

// Policy decides what a repeated guide id means.
type Policy int

const (
	// PolicyMerge reuses the existing guide and attaches the item to it;
	// the row's guide-level fields are ignored. Bulk imports use this.
	PolicyMerge Policy = iota
	// PolicyReject fails the row. Manual single entry uses this.
	PolicyReject
)

// Store is the record store the reconciler writes through. Implementations
// are expected to be a single transaction: the session never commits
// partially applied batches.
type Store interface {
	// GetGuide returns (nil, nil) when the guide does not exist.
	GetGuide(id string) (*models.Guide, error)
	CreateGuide(g *models.Guide) error
	CreateItem(it *models.Item) error
}

// Reconciler applies normalized records to a Store.
type Reconciler struct {
	store  Store
	policy Policy
}

func NewReconciler(store Store, policy Policy) *Reconciler {
	return &Reconciler{store: store, policy: policy}
}

// Apply stages one record. Returns whether a new guide was created. row is
// only used for error reporting.
func (r *Reconciler) Apply(rec *Record, row int) (bool, error) {
	existing, err := r.store.GetGuide(rec.GuideID)
	if err != nil {
		return false, fmt.Errorf("store lookup for guide %q: %w", rec.GuideID, err)
	}

	created := false
	if existing == nil {
		supplier, note := rec.Supplier, rec.Note
		guide := &models.Guide{
			ID:       rec.GuideID,
			Date:     rec.Date,
			Supplier: &supplier,
			Note:     &note,
		}
		if err := r.store.CreateGuide(guide); err != nil {
			return false, fmt.Errorf("store create guide %q: %w", rec.GuideID, err)
		}
		created = true
	} else if r.policy == PolicyReject {
		return false, &DuplicateGuideError{GuideID: rec.GuideID, Row: row}
	}

	item := &models.Item{
		Tag:         rec.Tag,
		Description: rec.Description,
		Quantity:    rec.Quantity,
		Specialty:   rec.Specialty,
		GuideID:     rec.GuideID,
	}
	if err := r.store.CreateItem(item); err != nil {
		return created, fmt.Errorf("store create item for guide %q: %w", rec.GuideID, err)
	}

	return created, nil
}
