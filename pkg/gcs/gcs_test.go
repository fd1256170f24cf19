package gcs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/script"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/storyfile"
	"github.com/jsamuelsen11/game-narrative-script/internal/app"
	"github.com/jsamuelsen11/game-narrative-script/pkg/gcs"
)

const story = `:character alice { name: "Alice A." }
:character bob
:act intro
:act left

intro = {
    @alice "Hello"
    @alice [
        "Go left" -> left,
        "Stay" -> intro
    ]
}

left = {
    @bob "Bye"
}
`

// build compiles story with the real pipeline and returns the blob path.
func build(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(dir, "main.gcs")
	if err := os.WriteFile(src, []byte(story), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	svc := app.NewBuildService(script.NewParser(nil), storyfile.NewEncoder(nil), nil)
	res, err := svc.Build(context.Background(), app.BuildRequest{
		Sources:  []string{src},
		TreePath: filepath.Join(dir, gcs.DefaultTreeName),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return res.TreePath
}

func openWalker(t *testing.T) *gcs.Walker {
	t.Helper()

	w, err := gcs.Open(build(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWalker_Acts(t *testing.T) {
	t.Parallel()

	w := openWalker(t)
	if got, want := w.Acts(), []string{"intro", "left"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Acts() = %v, want %v", got, want)
	}
}

func TestWalker_Traverse(t *testing.T) {
	t.Parallel()

	w := openWalker(t)

	items, err := w.Traverse("intro")
	if err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}
	want := []gcs.Item{
		{
			Kind:        gcs.KindDialogue,
			Character:   "alice",
			DisplayName: "Alice A.",
			Text:        "Hello",
			Attributes:  []gcs.Attribute{{Key: "name", Value: "Alice A."}},
		},
		{
			Kind:        gcs.KindChoiceSet,
			Character:   "alice",
			DisplayName: "Alice A.",
			Choices:     []gcs.Choice{{Text: "Go left", Jump: "left"}, {Text: "Stay", Jump: "intro"}},
			Attributes:  []gcs.Attribute{{Key: "name", Value: "Alice A."}},
		},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Traverse(intro) = %+v, want %+v", items, want)
	}

	// Every jump target resolves to an act of the same story.
	for _, c := range items[1].Choices {
		if _, err := w.Traverse(c.Jump); err != nil {
			t.Errorf("Traverse(%q) error = %v, want nil", c.Jump, err)
		}
	}
}

func TestWalker_Traverse_UnknownScene(t *testing.T) {
	t.Parallel()

	w := openWalker(t)

	_, err := w.Traverse("missing")
	if !errors.Is(err, gcs.ErrUnknownScene) {
		t.Errorf("Traverse(missing) error = %v, want ErrUnknownScene", err)
	}
}

func TestWalker_ConcurrentTraverse(t *testing.T) {
	t.Parallel()

	w := openWalker(t)
	want, err := w.Traverse("left")
	if err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := range 32 {
		act := "left"
		if i%2 == 0 {
			act = "intro"
		}
		wg.Go(func() {
			items, err := w.Traverse(act)
			if err != nil {
				t.Errorf("Traverse(%q) error = %v", act, err)
				return
			}
			if act == "left" && !reflect.DeepEqual(items, want) {
				t.Errorf("Traverse(left) = %+v, want %+v", items, want)
			}
		})
	}
	wg.Wait()
}

func TestWalker_TraverseAfterClose(t *testing.T) {
	t.Parallel()

	w, err := gcs.Open(build(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err = w.Traverse("intro")
	if !errors.Is(err, gcs.ErrDecode) {
		t.Errorf("Traverse() after Close error = %v, want ErrDecode", err)
	}
}

func TestOpen_MissingIndex(t *testing.T) {
	t.Parallel()

	treePath := build(t)
	if err := os.Remove(gcs.IndexPath(treePath)); err != nil {
		t.Fatalf("removing index: %v", err)
	}

	_, err := gcs.Open(treePath)
	if !errors.Is(err, gcs.ErrDecode) {
		t.Errorf("Open() error = %v, want ErrDecode", err)
	}
}
