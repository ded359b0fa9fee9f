package models

import (
	"fmt"

	apperrors "ledgerbook/internal/errors"
)

// TransactionType enumerates the kinds of transactions the engine handles.
type TransactionType string

const (
	TypeSale           TransactionType = "sale"
	TypeInvoice        TransactionType = "invoice"
	TypeInvoicePayment TransactionType = "invoice-payment"
	TypePurchase       TransactionType = "purchase"
	TypeBill           TransactionType = "bill"
	TypeBillPayment    TransactionType = "bill-payment"
	TypeJournal        TransactionType = "journal"
)

// Transaction is the aggregate root: it exclusively owns its ordered element
// collection. A transaction with no id (and no elements) is unsaved; engines
// tolerate that state.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null" json:"type"`
	Date        string          `gorm:"type:date" json:"date"`
	Description string          `json:"description"`
	ActorID     uint            `gorm:"not null;default:0" json:"actor_id"`

	Elements []Element `gorm:"foreignKey:TransactionID" json:"elements,omitempty"`

	// tombstoned holds element ids removed by the last merge; the store
	// deletes them when the transaction is saved.
	tombstoned []uint
}

// DebitElementIDs returns the ids of the transaction's persisted debit-side
// elements, oldest first. Balancing regeneration recycles these before
// minting new ids.
func (t *Transaction) DebitElementIDs() []uint {
	var ids []uint
	for i := range t.Elements {
		e := &t.Elements[i]
		if e.ID != 0 && e.Drcr == Debit {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// FirstDebitElement returns the first debit-side element, or nil.
func (t *Transaction) FirstDebitElement() *Element {
	for i := range t.Elements {
		if t.Elements[i].Drcr == Debit {
			return &t.Elements[i]
		}
	}
	return nil
}

// FirstCreditElement returns the first credit-side element, or nil.
func (t *Transaction) FirstCreditElement() *Element {
	for i := range t.Elements {
		if t.Elements[i].Drcr == Credit {
			return &t.Elements[i]
		}
	}
	return nil
}

// TombstonedElementIDs returns the element ids removed by the last merge.
func (t *Transaction) TombstonedElementIDs() []uint {
	return t.tombstoned
}

// MergeElements reconciles the desired element list against the currently
// held (persisted) elements:
//
//   - a desired element with an id overwrites the persisted element of that
//     id field-for-field; an unknown id is a merge conflict
//   - a desired element without an id is a new insert, except wholly blank
//     lines (amount 0 and no tax code), which are dropped
//   - persisted elements whose id appears nowhere in the desired list are
//     tombstoned, as are id-bearing lines updated to amount 0 with no tax
//     code and a non-cleared currency; the cleared-currency zero-out is the
//     one zero update that persists, which is what keeps recycled debit ids
//     alive for external references
//   - ParentID -1 binds a tax line to the nearest preceding top-level
//     desired line; with no such line it is promoted to top-level
//
// The merged order is: persisted elements in their stored order, then new
// top-level lines, then new tax lines, each in desired order.
func (t *Transaction) MergeElements(desired []Element) error {
	t.tombstoned = nil

	byID := make(map[uint]*Element, len(t.Elements))
	for i := range t.Elements {
		if t.Elements[i].ID != 0 {
			byID[t.Elements[i].ID] = &t.Elements[i]
		}
	}

	referenced := make(map[uint]bool, len(desired))
	var addedTops, addedChildren []*Element
	type link struct{ child, parent *Element }
	var links []link
	var lastTop *Element

	for i := range desired {
		d := desired[i]
		var target *Element
		if d.ID != 0 {
			existing, ok := byID[d.ID]
			if !ok {
				return apperrors.WithMessage(apperrors.ErrMergeConflict,
					fmt.Sprintf("Element %d does not belong to transaction %d", d.ID, t.ID))
			}
			referenced[d.ID] = true
			id, createdAt := existing.ID, existing.CreatedAt
			*existing = d
			existing.ID, existing.CreatedAt = id, createdAt
			target = existing
		} else {
			if d.Amount == 0 && d.TaxCode == "" {
				// A wholly blank new line is dropped, not zero-filled.
				continue
			}
			e := d
			target = &e
			if e.ParentID == 0 {
				addedTops = append(addedTops, target)
			} else {
				addedChildren = append(addedChildren, target)
			}
		}

		target.parentRef = 0
		if target.ParentID == PendingParent {
			if lastTop != nil {
				links = append(links, link{child: target, parent: lastTop})
			} else {
				target.ParentID = 0
			}
		}
		if target.ParentID == 0 {
			lastTop = target
		}
	}

	// Keep persisted elements in stored order, dropping tombstones.
	var merged []*Element
	for i := range t.Elements {
		e := &t.Elements[i]
		if e.ID == 0 {
			// Leftover from a merge that never reached persistence; the
			// caller should have reloaded, so do not carry it forward.
			continue
		}
		if !referenced[e.ID] {
			t.tombstoned = append(t.tombstoned, e.ID)
			continue
		}
		if e.Amount == 0 && e.TaxCode == "" && e.Currency != "" {
			t.tombstoned = append(t.tombstoned, e.ID)
			continue
		}
		merged = append(merged, e)
	}
	merged = append(merged, addedTops...)
	merged = append(merged, addedChildren...)

	// Bind pending tax lines to their parent's position; parents that were
	// themselves dropped promote the child to top-level.
	position := make(map[*Element]int, len(merged))
	for i, e := range merged {
		position[e] = i
	}
	for _, l := range links {
		i, ok := position[l.parent]
		if !ok {
			l.child.ParentID = 0
			continue
		}
		l.child.parentRef = i + 1
	}

	elements := make([]Element, len(merged))
	for i, e := range merged {
		elements[i] = *e
	}
	t.Elements = elements
	return nil
}

// ResolvePendingParents fills ParentID for elements bound to a parent in the
// same merge pass. It must run after ids are assigned (ie. once all elements
// are persisted) and returns the indexes it touched so the caller can write
// them back.
func (t *Transaction) ResolvePendingParents() []int {
	var resolved []int
	for i := range t.Elements {
		e := &t.Elements[i]
		if e.parentRef > 0 {
			e.ParentID = int64(t.Elements[e.parentRef-1].ID)
			e.parentRef = 0
			resolved = append(resolved, i)
		}
	}
	return resolved
}

// CondenseElements drops elements that no longer carry any economic effect
// or reference: amount 0, no tax code, no settlement link. This is an
// in-memory cleanup after save; zeroed-out recycled rows stay persisted.
func (t *Transaction) CondenseElements() {
	var kept []Element
	for i := range t.Elements {
		e := t.Elements[i]
		if e.Amount == 0 && e.TaxCode == "" && e.SettleID == 0 {
			continue
		}
		kept = append(kept, e)
	}
	t.Elements = kept
}

// CheckBalanced verifies that debits equal credits for every currency among
// the transaction's elements. A violation here is an internal computation
// bug: it must be caught before anything reaches persistence.
func (t *Transaction) CheckBalanced() error {
	for currency, sum := range GetSums(t.Elements) {
		if sum != 0 {
			return apperrors.WithMessage(apperrors.ErrUnbalanced,
				fmt.Sprintf("Transaction is out of balance by %d %s", sum, currency))
		}
	}
	return nil
}
