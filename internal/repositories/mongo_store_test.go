package repositories

import (
	"testing"

	"travelapi/internal/domain"
)

func TestMongoListSortsBySeqFirst(t *testing.T) {
	if len(mongoListSort) != 2 || mongoListSort[0].Key != "seq" || mongoListSort[1].Key != "_id" {
		t.Fatalf("unexpected list sort %v", mongoListSort)
	}
}

func TestSeedDocsNumbersRecordsInOrder(t *testing.T) {
	records := []domain.Record{{"id": "d1"}, {"id": "d2"}, {"id": "d3"}}

	docs, err := seedDocs(domain.KindDestinations, records, 41)
	if err != nil {
		t.Fatalf("seed docs: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	for i, d := range docs {
		doc := d.(mongoRecord)
		if doc.Seq != int64(41+i) || doc.RecordID != records[i].ID() || doc.Kind != "destinations" {
			t.Fatalf("doc %d: unexpected %#v", i, doc)
		}
	}

	if _, err := seedDocs(domain.KindDestinations, []domain.Record{{"name": "no id"}}, 1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
