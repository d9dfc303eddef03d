// Package scrape parses regulation tables out of HTML copied from the
// government RDTR portal. The portal offers no export, so users paste the
// page markup and this turns its <table> rows back into activity records.
package scrape

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// PortalRow is one scraped table row: an activity name followed by its
// permission cells in column order.
type PortalRow struct {
	Activity    string   `json:"activity"`
	Permissions []string `json:"permissions"`
}

// ParsePortalTable extracts the rows of the first <table> in the pasted
// markup. Header rows and rows without a plausible activity name are
// dropped; permission cells are kept verbatim for the caller to validate.
func ParsePortalTable(r io.Reader) ([]PortalRow, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portal markup: %w", err)
	}

	table := findNode(doc, "table")
	if table == nil {
		return nil, fmt.Errorf("no table found in portal markup")
	}

	var rows []PortalRow
	iterNodes(table, "tr")(func(tr *html.Node) bool {
		cells := cellTexts(tr)
		if len(cells) < 2 {
			return true
		}
		name := strings.TrimSpace(cells[0])
		if len(name) < 3 || isHeaderText(name) {
			return true
		}
		row := PortalRow{Activity: name}
		for _, cell := range cells[1:] {
			row.Permissions = append(row.Permissions, strings.TrimSpace(cell))
		}
		rows = append(rows, row)
		return true
	})
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows found in portal table")
	}
	return rows, nil
}

// ValidRows filters scraped rows down to those whose permission cells all
// pass token validation, pairing them with the given zone headers.
func ValidRows(rows []PortalRow, zones []string) []models.Activity {
	var activities []models.Activity
	for _, row := range rows {
		zonesMap := make(map[string]string)
		ok := true
		for i, perm := range row.Permissions {
			if i >= len(zones) || perm == "" || perm == "-" || perm == string(models.CodeX) {
				continue
			}
			if err := models.ValidatePermission(perm); err != nil {
				ok = false
				break
			}
			zonesMap[zones[i]] = perm
		}
		if ok {
			activities = append(activities, models.Activity{Activity: row.Activity, Zones: zonesMap})
		}
	}
	return activities
}

// findNode returns the first element with the given tag, depth-first.
func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// iterNodes yields every descendant element with the given tag.
func iterNodes(n *html.Node, tag string) func(yield func(*html.Node) bool) {
	var walk func(n *html.Node, yield func(*html.Node) bool) bool
	walk = func(n *html.Node, yield func(*html.Node) bool) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			return yield(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c, yield) {
				return false
			}
		}
		return true
	}
	return func(yield func(*html.Node) bool) {
		walk(n, yield)
	}
}

// cellTexts collects the text content of a row's td/th cells.
func cellTexts(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, nodeText(c))
		}
	}
	return cells
}

// nodeText concatenates the text descendants of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// isHeaderText recognizes header cells pasted along with the data.
func isHeaderText(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "kegiatan") && len(strings.Fields(lower)) <= 3 ||
		strings.Contains(lower, "nama") && strings.Contains(lower, "zona")
}
