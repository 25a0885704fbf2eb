package entities

import (
	"strings"
)

// DefaultPageSize matches the admin tables' default rows-per-page.
const DefaultPageSize = 10

// Page is one visible slice of a filtered collection.
type Page struct {
	Rows       []map[string]any `json:"rows"`
	TotalRows  int              `json:"total_rows"`
	TotalPages int              `json:"total_pages"`
	PageIndex  int              `json:"page"`
}

// FilterRows keeps the rows where at least one of the whitelisted fields
// case-insensitively contains the query. An empty query returns every row in
// its original order. Fields are dot paths; missing or null values match as
// the empty string, never an error.
func FilterRows(rows []map[string]any, query string, fields []string) []map[string]any {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	matched := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(fieldString(row, field)), query) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// PaginateRows slices the rows to one page. An out-of-range page index falls
// back to the first page, which also covers requests whose query just changed.
func PaginateRows(rows []map[string]any, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize
	if page < 0 || page >= totalPages {
		page = 0
	}

	start := page * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page{
		Rows:       rows[start:end],
		TotalRows:  len(rows),
		TotalPages: totalPages,
		PageIndex:  page,
	}
}

// Collection is a loaded list view: the full row set plus the live query and
// page cursor. The visible slice is recomputed on every access, never cached.
type Collection struct {
	rows     []map[string]any
	fields   []string
	query    string
	page     int
	pageSize int
}

func NewCollection(rows []map[string]any, fields []string, pageSize int) *Collection {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Collection{rows: rows, fields: fields, pageSize: pageSize}
}

// SetRows swaps in freshly fetched data; the cursor resets so the view never
// shows a stale page.
func (c *Collection) SetRows(rows []map[string]any) {
	c.rows = rows
	c.page = 0
}

// SetQuery refines the view; any query change resets the page to 0.
func (c *Collection) SetQuery(query string) {
	if query != c.query {
		c.page = 0
	}
	c.query = query
}

func (c *Collection) SetPage(page int) {
	c.page = page
}

func (c *Collection) Visible() Page {
	return PaginateRows(FilterRows(c.rows, c.query, c.fields), c.page, c.pageSize)
}

func fieldString(row map[string]any, path string) string {
	var current any = row
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current = m[part]
	}
	return scalarString(current)
}
