package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/syntax"
)

const sampleScript = `# cast
:character alice { name: "Alice A.", mood: "calm" }
:act intro
:act left

intro = {
    @alice "Hello"
    @alice [
        "Go left" -> left,
        "Stay" -> intro
    ]
}
`

func TestParser_Parse_SampleScript(t *testing.T) {
	t.Parallel()

	stmts, err := NewParser(nil).Parse(strings.NewReader(sampleScript), "main.gcs")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(stmts) != 4 {
		t.Fatalf("len(stmts) = %d, want 4", len(stmts))
	}

	decl, ok := stmts[0].(*syntax.Declaration)
	if !ok {
		t.Fatalf("stmts[0] is %T, want *syntax.Declaration", stmts[0])
	}
	if decl.Atom != "character" || decl.Name != "alice" {
		t.Errorf("decl = {%q, %q}, want {character, alice}", decl.Atom, decl.Name)
	}
	wantAttrs := []symbol.Attribute{{Key: "name", Value: "Alice A."}, {Key: "mood", Value: "calm"}}
	if len(decl.Attributes) != len(wantAttrs) {
		t.Fatalf("len(Attributes) = %d, want %d", len(decl.Attributes), len(wantAttrs))
	}
	for i, a := range wantAttrs {
		if decl.Attributes[i] != a {
			t.Errorf("Attributes[%d] = %+v, want %+v", i, decl.Attributes[i], a)
		}
	}
	if decl.At.Line != 2 || decl.At.Column != 1 || decl.At.Source != "main.gcs" {
		t.Errorf("decl.At = %+v, want main.gcs line 2 column 1", decl.At)
	}
	if decl.At.Offset != len("# cast\n") {
		t.Errorf("decl.At.Offset = %d, want %d", decl.At.Offset, len("# cast\n"))
	}

	def, ok := stmts[3].(*syntax.Definition)
	if !ok {
		t.Fatalf("stmts[3] is %T, want *syntax.Definition", stmts[3])
	}
	if def.Name != "intro" || def.At.Line != 6 {
		t.Errorf("def = {%q, line %d}, want {intro, line 6}", def.Name, def.At.Line)
	}
	if len(def.Body) != 2 {
		t.Fatalf("len(def.Body) = %d, want 2", len(def.Body))
	}

	line, ok := def.Body[0].(*syntax.DialogueLine)
	if !ok {
		t.Fatalf("Body[0] is %T, want *syntax.DialogueLine", def.Body[0])
	}
	if line.Character != "alice" || line.Text != "Hello" {
		t.Errorf("line = {%q, %q}, want {alice, Hello}", line.Character, line.Text)
	}

	menu, ok := def.Body[1].(*syntax.ChoiceMenu)
	if !ok {
		t.Fatalf("Body[1] is %T, want *syntax.ChoiceMenu", def.Body[1])
	}
	if len(menu.Options) != 2 {
		t.Fatalf("len(Options) = %d, want 2", len(menu.Options))
	}
	if menu.Options[0].Text != "Go left" || menu.Options[0].Jump != "left" {
		t.Errorf("Options[0] = %+v, want {Go left -> left}", menu.Options[0])
	}
	if menu.Options[1].Text != "Stay" || menu.Options[1].Jump != "intro" {
		t.Errorf("Options[1] = %+v, want {Stay -> intro}", menu.Options[1])
	}
	if menu.Options[0].At.Line != 9 {
		t.Errorf("Options[0].At.Line = %d, want 9", menu.Options[0].At.Line)
	}
}

func TestParser_Parse_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		count int
	}{
		{name: "empty file", input: "", count: 0},
		{name: "comments only", input: "# nothing\n# here\n", count: 0},
		{name: "declaration without attributes", input: ":act intro", count: 1},
		{name: "empty attribute block", input: ":character bob {}", count: 1},
		{name: "empty definition", input: "intro = {}", count: 1},
		{name: "empty choice menu", input: "intro = { @a [] }", count: 1},
		{name: "raw string", input: "intro = { @a `say \"hi\"` }", count: 1},
		{name: "escaped string", input: `intro = { @a "line\nbreak" }`, count: 1},
		{name: "unknown atom still parses", input: ":prop lamp", count: 1},
		{name: "trailing comment", input: ":act intro # the opening", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts, err := NewParser(nil).Parse(strings.NewReader(tt.input), "f.gcs")
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.input, err)
			}
			if len(stmts) != tt.count {
				t.Errorf("len(stmts) = %d, want %d", len(stmts), tt.count)
			}
		})
	}
}

func TestParser_Parse_EscapedText(t *testing.T) {
	t.Parallel()

	stmts, err := NewParser(nil).Parse(strings.NewReader(`intro = { @a "line\nbreak" }`), "f.gcs")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	line := stmts[0].(*syntax.Definition).Body[0].(*syntax.DialogueLine)
	if line.Text != "line\nbreak" {
		t.Errorf("Text = %q, want %q", line.Text, "line\nbreak")
	}
}

func TestParser_Parse_GrammarMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		line     int
	}{
		{name: "stray string", input: `"hello"`, expected: "declaration or definition", line: 1},
		{name: "missing name", input: ":act", expected: "identifier", line: 1},
		{name: "missing equals", input: "intro {", expected: "'='", line: 1},
		{name: "line without at", input: "intro = {\n  alice \"hi\"\n}", expected: "'@' or '}'", line: 2},
		{name: "missing jump arrow", input: "intro = { @a [ \"go\" left ] }", expected: "'->'", line: 1},
		{name: "attribute value not a string", input: ":character a { name: bob }", expected: "string", line: 1},
		{name: "unterminated body", input: "intro = {\n @a \"hi\"", expected: "'@' or '}'", line: 2},
		{name: "bad character", input: "intro = { @a ! }", expected: "dialogue string or '['", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParser(nil).Parse(strings.NewReader(tt.input), "bad.gcs")
			if !errors.Is(err, domain.ErrGrammarMismatch) {
				t.Fatalf("Parse() error = %v, want ErrGrammarMismatch", err)
			}

			var gm *domain.GrammarMismatchError
			if !errors.As(err, &gm) {
				t.Fatalf("errors.As(*GrammarMismatchError) failed for %v", err)
			}
			if gm.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", gm.Expected, tt.expected)
			}
			if gm.At.Source != "bad.gcs" || gm.At.Line != tt.line {
				t.Errorf("At = %s, want bad.gcs line %d", gm.At, tt.line)
			}
		})
	}
}

func TestParser_ParseFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "main.gcs")
		if err := os.WriteFile(path, []byte(sampleScript), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		stmts, err := NewParser(nil).ParseFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ParseFile() error = %v, want nil", err)
		}
		if len(stmts) != 4 {
			t.Errorf("len(stmts) = %d, want 4", len(stmts))
		}
		if got := stmts[0].Pos().Source; got != path {
			t.Errorf("Pos().Source = %q, want %q", got, path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent.gcs")
		_, err := NewParser(nil).ParseFile(context.Background(), path)

		var sa *domain.SourceAccessError
		if !errors.As(err, &sa) {
			t.Fatalf("ParseFile() error = %v, want *SourceAccessError", err)
		}
		if sa.Source != path {
			t.Errorf("Source = %q, want %q", sa.Source, path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("errors.Is(err, os.ErrNotExist) = false for %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewParser(nil).ParseFile(ctx, "whatever.gcs")
		if !errors.Is(err, domain.ErrSourceAccess) || !errors.Is(err, context.Canceled) {
			t.Errorf("ParseFile() error = %v, want ErrSourceAccess wrapping context.Canceled", err)
		}
	})
}
