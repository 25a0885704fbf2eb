package entities

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// RemoteError carries the upstream API's failure message. The operation is
// abandoned and the draft stays intact so the user can retry.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "remote request failed"
}

// SequenceCounter is the server-owned running number and display template for
// one document resource. The counter is mutated only by the server on
// successful creation; clients only format it.
type SequenceCounter struct {
	Value    int64
	Template string
}

// ReferenceID resolves an upstream reference field regardless of whether the
// endpoint returned a populated object or a bare id. Depending on the route,
// the same field may arrive as "prod-1", {"_id": "prod-1", ...} or a numeric
// id; all collapse to the same string.
func ReferenceID(v any) string {
	switch ref := v.(type) {
	case nil:
		return ""
	case string:
		return ref
	case map[string]any:
		for _, key := range []string{"_id", "id"} {
			if id, ok := ref[key]; ok {
				return scalarString(id)
			}
		}
		return ""
	default:
		return scalarString(ref)
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; ids and counters are whole numbers.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// DraftFromRemote builds an edit-mode draft from a fetched upstream entity.
// References may be populated or bare, numbers may arrive as JSON numbers or
// strings, and alternate key spellings used by older endpoints are accepted.
func DraftFromRemote(draftID string, kind DocumentKind, remoteID string, payload map[string]any, newRowID func() string) Draft {
	now := time.Now().UTC()
	d := Draft{
		ID:        draftID,
		Kind:      kind,
		RemoteID:  remoteID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	d.Header = Header{
		CompanyID: ReferenceID(firstOf(payload, "company", "companyId")),
		VendorID:  ReferenceID(firstOf(payload, "vendor", "vendorId")),
		BranchID:  ReferenceID(firstOf(payload, "branch", "branchId")),
		Date:      scalarString(firstOf(payload, "date", "invoiceDate")),
		Reference: scalarString(firstOf(payload, "reference", "referenceNo")),
		Notes:     scalarString(payload["notes"]),
		Status:    scalarString(payload["status"]),
	}

	d.Items = remoteItems(firstOf(payload, "items", "products"), newRowID)

	if raw, ok := payload["groups"].([]any); ok {
		for _, entry := range raw {
			g, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			d.Groups = append(d.Groups, Group{
				GroupID: newRowID(),
				Name:    scalarString(g["name"]),
				Items:   remoteItems(g["items"], newRowID),
			})
		}
	}

	return d
}

func remoteItems(v any, newRowID func() string) []LineItem {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]LineItem, 0, len(raw))
	for _, entry := range raw {
		row, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := LineItem{
			RowID:     newRowID(),
			ProductID: ReferenceID(firstOf(row, "product", "productId")),
			Name:      scalarString(firstOf(row, "name", "productName")),
			Quantity:  remoteDecimal(row["quantity"]),
			UnitRate:  remoteDecimal(firstOf(row, "rate", "unitRate")),
			Taxes:     remoteTaxes(row["taxes"]),
		}
		item.Recompute()
		items = append(items, item)
	}
	return items
}

func remoteTaxes(v any) []TaxComponent {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	taxes := make([]TaxComponent, 0, len(raw))
	for _, entry := range raw {
		tax, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		taxes = append(taxes, TaxComponent{
			Name: scalarString(tax["name"]),
			Rate: remoteDecimal(tax["rate"]),
		})
	}
	return taxes
}

func remoteDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		return ParseAmount(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	default:
		return decimal.Zero
	}
}

func firstOf(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
