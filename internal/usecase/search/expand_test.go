package search

import (
	"testing"

	"github.com/auditgov/auditdex/internal/domain/search/plan"
	"github.com/auditgov/auditdex/internal/lexicon"
)

func TestBuildPlanStripsCommandVerbs(t *testing.T) {
	p := buildPlan("busque dengue em salvador", lexicon.Default())

	if p.Mode() != plan.Keyword {
		t.Fatalf("mode = %q, want keyword", p.Mode())
	}
	wantTokens := []string{"dengue", "salvador"}
	if got := p.Tokens(); len(got) != len(wantTokens) {
		t.Fatalf("tokens = %v, want %v", got, wantTokens)
	} else {
		for i, tok := range wantTokens {
			if got[i] != tok {
				t.Fatalf("tokens = %v, want %v", got, wantTokens)
			}
		}
	}
	if !containsTerm(p.ExpandedTerms(), "aedes") {
		t.Errorf("expanded terms %v missing dictionary synonym %q", p.ExpandedTerms(), "aedes")
	}
	if !containsTerm(p.ExpandedTerms(), "dengue") {
		t.Errorf("expanded terms must include the literal token")
	}
}

func TestBuildPlanQuotedPhrase(t *testing.T) {
	p := buildPlan(`"Farmácia Popular"`, lexicon.Default())

	if p.Mode() != plan.Phrase {
		t.Fatalf("mode = %q, want phrase", p.Mode())
	}
	if p.NormalizedQuery() != "farmacia popular" {
		t.Errorf("normalized query = %q, want %q", p.NormalizedQuery(), "farmacia popular")
	}
	if p.Specific() {
		t.Error("phrase queries must not be specific")
	}
	if containsTerm(p.ExpandedTerms(), "pfpb") {
		t.Error("phrase mode must not expand synonyms")
	}
}

func TestBuildPlanDropsStopwordsAndShortTokens(t *testing.T) {
	p := buildPlan("a ir de dengue", lexicon.Default())

	if got := p.Tokens(); len(got) != 1 || got[0] != "dengue" {
		t.Fatalf("tokens = %v, want [dengue]", got)
	}
}

func TestBuildPlanFullQueryKeptForPhraseScoring(t *testing.T) {
	// The normalized full query keeps command verbs so the exact-phrase
	// bonus can still fire on verbatim matches.
	p := buildPlan("busque dengue", lexicon.Default())

	if p.NormalizedQuery() != "busque dengue" {
		t.Errorf("normalized query = %q, want %q", p.NormalizedQuery(), "busque dengue")
	}
}

func TestBuildPlanTokenSynonyms(t *testing.T) {
	p := buildPlan("dengue grave", lexicon.Default())

	syns := p.TokenSynonyms("dengue")
	if !containsTerm(syns, "aedes") {
		t.Errorf("token synonyms %v missing %q", syns, "aedes")
	}
	if containsTerm(syns, "dengue") {
		t.Error("a token must not list itself as its own synonym")
	}
}

func TestBuildPlanDeduplicatesExpansion(t *testing.T) {
	p := buildPlan("dengue dengue", lexicon.Default())

	seen := make(map[string]int)
	for _, term := range p.ExpandedTerms() {
		seen[term]++
		if seen[term] > 1 {
			t.Fatalf("expanded term %q appears more than once", term)
		}
	}
}

func TestPluralVariant(t *testing.T) {
	if got := pluralVariant("obra"); got != "obras" {
		t.Errorf("pluralVariant(obra) = %q, want obras", got)
	}
	if got := pluralVariant("obras"); got != "obra" {
		t.Errorf("pluralVariant(obras) = %q, want obra", got)
	}
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}
