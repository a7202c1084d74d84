package causelist

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/courtlist/causelist/model"
)

const listJSON = `{
  "pages": [
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "type": "text",
          "bbox": {"x": 40, "y": 40, "w": 520, "h": 30},
          "lines": [
            {"bbox": {"x": 40, "y": 40, "w": 520, "h": 14}, "text": "SUPREME COURT OF INDIA"},
            {"bbox": {"x": 40, "y": 56, "w": 200, "h": 14}, "text": "COURT NO. 2"}
          ]
        },
        {
          "type": "text",
          "bbox": {"x": 430, "y": 80, "w": 80, "h": 12},
          "lines": [
            {"bbox": {"x": 430, "y": 80, "w": 80, "h": 12}, "text": "Advocate"}
          ]
        },
        {
          "type": "text",
          "bbox": {"x": 40, "y": 120, "w": 360, "h": 56},
          "lines": [
            {"bbox": {"x": 40, "y": 120, "w": 200, "h": 14}, "text": "15 SLP(C) No. 101/2024"},
            {"bbox": {"x": 40, "y": 134, "w": 200, "h": 14}, "text": "ALPHA TRADERS"},
            {"bbox": {"x": 40, "y": 148, "w": 80, "h": 14}, "text": "versus"},
            {"bbox": {"x": 40, "y": 162, "w": 200, "h": 14}, "text": "STATE OF U.P."}
          ]
        }
      ]
    }
  ]
}`

func writeList(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// listPage builds a one-court page with the given serial and party names.
func listPage(number, court int, serial, petitioner, respondent string) *model.Page {
	page := model.NewPage(number, 612, 792)

	banner := "SUPREME COURT OF INDIA\nCOURT NO. " + strconv.Itoa(court)
	page.Blocks = append(page.Blocks, model.TextBlock{
		BBox: model.NewBBox(40, 40, 520, 30),
		Text: banner,
	})

	header := model.NewBBox(430, 80, 80, 12)
	page.Blocks = append(page.Blocks, model.TextBlock{BBox: header, Text: "Advocate"})
	page.Words = append(page.Words, model.ApportionWords("Advocate", header)...)

	body := serial + " SLP(C) No. 1/2024\n" + petitioner + "\nversus\n" + respondent
	page.Blocks = append(page.Blocks, model.TextBlock{
		BBox: model.NewBBox(40, 120, 360, 56),
		Text: body,
	})
	return page
}

func TestOpenEntries(t *testing.T) {
	path := writeList(t, "list.json", listJSON)

	entries, err := Open(path).Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Court != 2 || e.Serial != "15" {
		t.Errorf("unexpected entry key %d/%s", e.Court, e.Serial)
	}
	if e.Petitioner != "Alpha Traders" || e.Respondent != "State of U.P" {
		t.Errorf("unexpected parties %q / %q", e.Petitioner, e.Respondent)
	}
	if e.Page != 1 {
		t.Errorf("expected page 1, got %d", e.Page)
	}
}

func TestOpenSniffsExtensionlessFile(t *testing.T) {
	path := writeList(t, "list", listJSON)

	entries, err := Open(path).Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestOpenRejectsPDF(t *testing.T) {
	path := writeList(t, "list.pdf", "%PDF-1.7\n")

	_, err := Open(path).Entries()
	if err == nil {
		t.Fatal("expected an error for PDF input")
	}
	if !strings.Contains(err.Error(), "mutool convert") {
		t.Errorf("expected the error to point at conversion, got %v", err)
	}
}

func TestOpenMissingFilename(t *testing.T) {
	if _, err := Open("").Entries(); err == nil {
		t.Error("expected an error for an empty filename")
	}
}

func TestFromDocumentIndex(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(listPage(1, 3, "7", "RAM LAL", "UNION OF INDIA"))

	idx, err := FromDocument(doc).Index()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, ok := idx.Lookup("3/7")
	if !ok {
		t.Fatal("expected 3/7 to be indexed")
	}
	if e.Petitioner != "Ram Lal" {
		t.Errorf("unexpected petitioner %q", e.Petitioner)
	}
}

func TestPagesSelection(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(listPage(1, 1, "5", "FIRST ONE", "RESP ONE"))
	doc.AddPage(listPage(2, 2, "6", "SECOND ONE", "RESP TWO"))
	doc.AddPage(listPage(3, 3, "7", "THIRD ONE", "RESP THREE"))

	entries, err := FromDocument(doc).Pages(3, 1).Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Document order is preserved regardless of selection order.
	if entries[0].Court != 1 || entries[1].Court != 3 {
		t.Errorf("unexpected courts %d, %d", entries[0].Court, entries[1].Court)
	}
}

func TestPageRange(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(listPage(1, 1, "5", "FIRST ONE", "RESP ONE"))
	doc.AddPage(listPage(2, 2, "6", "SECOND ONE", "RESP TWO"))
	doc.AddPage(listPage(3, 3, "7", "THIRD ONE", "RESP THREE"))

	entries, err := FromDocument(doc).PageRange(2, 3).Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Court != 2 || entries[1].Court != 3 {
		t.Errorf("unexpected courts %d, %d", entries[0].Court, entries[1].Court)
	}
}

func TestChainingDoesNotMutate(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(listPage(1, 1, "5", "FIRST ONE", "RESP ONE"))
	doc.AddPage(listPage(2, 2, "6", "SECOND ONE", "RESP TWO"))

	base := FromDocument(doc)
	limited := base.Pages(1)

	all, err := base.Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected the base extractor to see both pages, got %d entries", len(all))
	}

	some, err := limited.Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(some) != 1 {
		t.Errorf("expected the limited extractor to see one page, got %d entries", len(some))
	}
}

func TestMust(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(listPage(1, 4, "9", "SOME ONE", "OTHER ONE"))

	idx := Must(FromDocument(doc).Index())
	if idx.Len() != 1 {
		t.Errorf("expected 1 indexed entry, got %d", idx.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must(Open("").Entries())
}
