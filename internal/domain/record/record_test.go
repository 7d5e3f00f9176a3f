package record

import (
	"testing"
	"time"
)

func TestSourceKindIsValid(t *testing.T) {
	valid := []SourceKind{SourceCGU, SourceTCU, SourceOther}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", k)
		}
	}

	invalid := []SourceKind{"", "cgu", "TRIBUNAL"}
	for _, k := range invalid {
		if k.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", k)
		}
	}
}

func TestRecordFieldLookup(t *testing.T) {
	r := New("f.csv:0", SourceCGU, "f.csv", []Field{
		{Name: "titulo", Value: "Reforma UBS"},
		{Name: "uf", Value: "BA;SP"},
	}, "reforma ubs", 0, Attrs{Title: "Reforma UBS", UF: "BA;SP"})

	if got := r.Field("uf"); got != "BA;SP" {
		t.Errorf("Field(uf) = %q", got)
	}
	if got := r.Field("inexistente"); got != "" {
		t.Errorf("Field(inexistente) = %q, want empty", got)
	}
}

func TestRecordImmutableFields(t *testing.T) {
	fields := []Field{{Name: "titulo", Value: "a"}}
	r := New("id", SourceTCU, "f.csv", fields, "a", 0, Attrs{})
	fields[0].Value = "mutated"
	if got := r.Field("titulo"); got != "a" {
		t.Errorf("record shares caller slice: Field(titulo) = %q", got)
	}
}

func TestYear(t *testing.T) {
	ts := time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli()
	r := New("id", SourceCGU, "f.csv", nil, "", ts, Attrs{})
	if got := r.Year(); got != "2023" {
		t.Errorf("Year() = %q, want 2023", got)
	}

	unknown := New("id2", SourceCGU, "f.csv", nil, "", 0, Attrs{})
	if got := unknown.Year(); got != "" {
		t.Errorf("Year() for zero timestamp = %q, want empty", got)
	}
}

func TestScoredAccessors(t *testing.T) {
	r := New("id", SourceTCU, "f.csv", nil, "texto", 42, Attrs{})
	s := NewScored(r, 110)
	if s.Score() != 110 {
		t.Errorf("Score() = %d", s.Score())
	}
	if s.Timestamp() != 42 {
		t.Errorf("Timestamp() = %d", s.Timestamp())
	}
	if s.Source() != SourceTCU {
		t.Errorf("Source() = %q", s.Source())
	}
	rec := s.Record()
	if rec.ID() != "id" {
		t.Errorf("Record().ID() = %q", rec.ID())
	}
}
