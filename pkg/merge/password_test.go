package merge

import (
	"errors"
	"reflect"
	"testing"
)

type fakeDoc struct {
	correct  string
	attempts []string
}

func (f *fakeDoc) Unlock(password string) bool {
	f.attempts = append(f.attempts, password)
	return password == f.correct
}

func TestPasswordCandidates(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		override string
		want     []string
	}{
		{"none", "", "", nil},
		{"default only", "a", "", []string{"a"}},
		{"override only", "", "b", []string{"b"}},
		{"both distinct", "a", "b", []string{"a", "b"}},
		{"duplicate dropped", "a", "a", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PasswordCandidates(tt.def, tt.override)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PasswordCandidates(%q, %q) = %v, want %v", tt.def, tt.override, got, tt.want)
			}
		})
	}
}

func TestResolvePasswordTriesInOrder(t *testing.T) {
	doc := &fakeDoc{correct: "b"}
	if !ResolvePassword(doc, "x.pdf", []string{"a", "b"}, nil) {
		t.Fatal("resolution failed with a correct candidate present")
	}
	if !reflect.DeepEqual(doc.attempts, []string{"a", "b"}) {
		t.Errorf("attempts = %v, want [a b]", doc.attempts)
	}
}

func TestResolvePasswordStopsAtFirstSuccess(t *testing.T) {
	doc := &fakeDoc{correct: "a"}
	ResolvePassword(doc, "x.pdf", []string{"a", "b"}, nil)
	if len(doc.attempts) != 1 {
		t.Errorf("attempts = %v, want just the first candidate", doc.attempts)
	}
}

func TestResolvePasswordNoPromptExhausted(t *testing.T) {
	doc := &fakeDoc{correct: "secret"}
	if ResolvePassword(doc, "x.pdf", []string{"wrong"}, nil) {
		t.Fatal("resolution succeeded without the correct password")
	}
}

func TestResolvePasswordPromptOnce(t *testing.T) {
	doc := &fakeDoc{correct: "secret"}
	calls := 0
	prompt := func(name string) (string, error) {
		calls++
		if name != "x.pdf" {
			t.Errorf("prompt name = %q, want x.pdf", name)
		}
		return "secret", nil
	}
	if !ResolvePassword(doc, "x.pdf", []string{"wrong"}, prompt) {
		t.Fatal("resolution failed despite correct prompted password")
	}
	if calls != 1 {
		t.Errorf("prompt called %d times, want 1", calls)
	}
}

func TestResolvePasswordPromptEmpty(t *testing.T) {
	doc := &fakeDoc{correct: "secret"}
	prompt := func(string) (string, error) { return "", nil }
	if ResolvePassword(doc, "x.pdf", nil, prompt) {
		t.Fatal("empty prompt answer should stop resolution")
	}
	if len(doc.attempts) != 0 {
		t.Errorf("attempts = %v, want none after empty answer", doc.attempts)
	}
}

func TestResolvePasswordPromptError(t *testing.T) {
	doc := &fakeDoc{correct: "secret"}
	prompt := func(string) (string, error) { return "", errors.New("no tty") }
	if ResolvePassword(doc, "x.pdf", nil, prompt) {
		t.Fatal("prompt error should stop resolution")
	}
}

func TestResolvePasswordWrongPromptAnswer(t *testing.T) {
	doc := &fakeDoc{correct: "secret"}
	prompt := func(string) (string, error) { return "nope", nil }
	if ResolvePassword(doc, "x.pdf", []string{"also wrong"}, prompt) {
		t.Fatal("resolution succeeded with only wrong passwords")
	}
	if !reflect.DeepEqual(doc.attempts, []string{"also wrong", "nope"}) {
		t.Errorf("attempts = %v, want candidates then single prompt answer", doc.attempts)
	}
}
