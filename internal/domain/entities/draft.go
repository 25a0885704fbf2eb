package entities

import (
	"errors"
	"time"
)

// DocumentKind identifies which back-office document a draft will become.
type DocumentKind string

const (
	KindInvoice   DocumentKind = "invoice"
	KindQuotation DocumentKind = "quotation"
	KindService   DocumentKind = "service"
	KindRental    DocumentKind = "rental"
	KindPurchase  DocumentKind = "purchase"
	KindReport    DocumentKind = "report"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case KindInvoice, KindQuotation, KindService, KindRental, KindPurchase, KindReport:
		return true
	}
	return false
}

// Resource is the upstream collection a submitted draft of this kind lands in.
func (k DocumentKind) Resource() string {
	return string(k) + "s"
}

var (
	ErrUnknownHeaderField = errors.New("unknown header field")
	ErrGroupName          = errors.New("group requires a name")
	ErrGroupNotFound      = errors.New("group not found")
	ErrRowNotFound        = errors.New("line item not found")
)

// Header holds the scalar fields of a form-in-progress. Company and vendor
// scope the rows beneath them: option lists (branches, available products) are
// keyed by those references, so changing one invalidates everything downstream.
type Header struct {
	CompanyID string `json:"company_id"`
	VendorID  string `json:"vendor_id"`
	BranchID  string `json:"branch_id"`
	Date      string `json:"date"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}

// Group is a named line-item bucket used by multi-group report drafts.
type Group struct {
	GroupID string     `json:"group_id"`
	Name    string     `json:"name"`
	Items   []LineItem `json:"items"`
}

// Draft is the client-side staging copy of a document being created or
// edited. RemoteID is set only when the draft was hydrated from an existing
// upstream entity, which switches submission from create to update.
type Draft struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	RemoteID  string       `json:"remote_id,omitempty"`
	Header    Header       `json:"header"`
	Items     []LineItem   `json:"items"`
	Groups    []Group      `json:"groups,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// EditMode reports whether submission should update an existing entity.
func (d Draft) EditMode() bool {
	return d.RemoteID != ""
}

// SetHeaderField updates one named header field. Scoping fields (company,
// vendor) cascade: the row collection, groups and the dependent branch
// selection are cleared because their option lists are keyed by the scope.
func (d *Draft) SetHeaderField(field, value string) (cascaded bool, err error) {
	switch field {
	case "company":
		if d.Header.CompanyID != value {
			d.clearScoped()
			cascaded = true
		}
		d.Header.CompanyID = value
	case "vendor":
		if d.Header.VendorID != value {
			d.clearScoped()
			cascaded = true
		}
		d.Header.VendorID = value
	case "branch":
		d.Header.BranchID = value
	case "date":
		d.Header.Date = value
	case "reference":
		d.Header.Reference = value
	case "notes":
		d.Header.Notes = value
	case "status":
		d.Header.Status = value
	default:
		return false, ErrUnknownHeaderField
	}
	return cascaded, nil
}

func (d *Draft) clearScoped() {
	d.Items = nil
	d.Groups = nil
	d.Header.BranchID = ""
}

// AddItem appends a validated row to the draft's top-level collection.
func (d *Draft) AddItem(item LineItem) {
	d.Items = append(d.Items, item)
}

// AddGroup registers a named bucket for report drafts.
func (d *Draft) AddGroup(groupID, name string) error {
	if name == "" {
		return ErrGroupName
	}
	d.Groups = append(d.Groups, Group{GroupID: groupID, Name: name})
	return nil
}

func (d *Draft) RemoveGroup(groupID string) error {
	for i, g := range d.Groups {
		if g.GroupID == groupID {
			d.Groups = append(d.Groups[:i], d.Groups[i+1:]...)
			return nil
		}
	}
	return ErrGroupNotFound
}

// AddItemToGroup appends a validated row to the named bucket.
func (d *Draft) AddItemToGroup(groupID string, item LineItem) error {
	for i := range d.Groups {
		if d.Groups[i].GroupID == groupID {
			d.Groups[i].Items = append(d.Groups[i].Items, item)
			return nil
		}
	}
	return ErrGroupNotFound
}

// UpdateItem patches the row with the given client-local id, wherever it
// lives, and recomputes its total.
func (d *Draft) UpdateItem(rowID string, patch LineItemPatch) error {
	for i := range d.Items {
		if d.Items[i].RowID == rowID {
			return d.Items[i].Apply(patch)
		}
	}
	for gi := range d.Groups {
		for i := range d.Groups[gi].Items {
			if d.Groups[gi].Items[i].RowID == rowID {
				return d.Groups[gi].Items[i].Apply(patch)
			}
		}
	}
	return ErrRowNotFound
}

// RemoveItem deletes exactly the row with the given client-local id. Rows
// referencing the same product keep their own ids, so no other row is touched.
func (d *Draft) RemoveItem(rowID string) error {
	for i, item := range d.Items {
		if item.RowID == rowID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return nil
		}
	}
	for gi := range d.Groups {
		for i, item := range d.Groups[gi].Items {
			if item.RowID == rowID {
				d.Groups[gi].Items = append(d.Groups[gi].Items[:i], d.Groups[gi].Items[i+1:]...)
				return nil
			}
		}
	}
	return ErrRowNotFound
}

// AllItems flattens top-level rows and group rows in order.
func (d Draft) AllItems() []LineItem {
	items := make([]LineItem, 0, len(d.Items))
	items = append(items, d.Items...)
	for _, g := range d.Groups {
		items = append(items, g.Items...)
	}
	return items
}

// Empty reports whether the draft has nothing submittable: no top-level rows
// and no non-empty group.
func (d Draft) Empty() bool {
	if len(d.Items) > 0 {
		return false
	}
	for _, g := range d.Groups {
		if len(g.Items) > 0 {
			return false
		}
	}
	return true
}

// Totals derives the draft's financials across all rows.
func (d Draft) Totals() Totals {
	return ComputeTotals(d.AllItems())
}

// Reset discards all user input, returning the draft to its empty state. The
// kind and identity are kept; edit-mode linkage is dropped.
func (d *Draft) Reset() {
	d.RemoteID = ""
	d.Header = Header{}
	d.Items = nil
	d.Groups = nil
}

// Clone returns a copy sharing no slice storage with the receiver, so the two
// can be mutated independently.
func (d Draft) Clone() Draft {
	out := d
	out.Items = cloneItems(d.Items)
	if d.Groups != nil {
		out.Groups = make([]Group, len(d.Groups))
		for i, g := range d.Groups {
			out.Groups[i] = g
			out.Groups[i].Items = cloneItems(g.Items)
		}
	}
	return out
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Taxes != nil {
			taxes := make([]TaxComponent, len(out[i].Taxes))
			copy(taxes, out[i].Taxes)
			out[i].Taxes = taxes
		}
	}
	return out
}
