package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures compiles every program under testdata/fixtures and
// snapshots either the TAC listing or the diagnostic, so any change to
// lowering, numbering or error wording shows up as a snapshot diff.
func TestFixtures(t *testing.T) {
	pattern := filepath.Join("..", "..", "testdata", "fixtures", "*.pas")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no fixtures found under %s", pattern)
	}
	sort.Strings(files)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read fixture: %v", err)
			}

			var out bytes.Buffer
			compileErr := Compile(Options{
				Source: string(content),
				File:   name,
			}, &out)

			if compileErr != nil {
				snaps.MatchSnapshot(t, compileErr.Error())
				return
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
