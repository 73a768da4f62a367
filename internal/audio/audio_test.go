package audio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"assetmanifest/internal/audio"
	"assetmanifest/internal/testsupport"
)

func trackNames(tracks []audio.Track) []string {
	names := make([]string, len(tracks))
	for i, tr := range tracks {
		names[i] = tr.Name
	}
	return names
}

func TestScanOrdersTracksNaturally(t *testing.T) {
	root := t.TempDir()
	testsupport.MakeTree(t, root,
		"genesis/track 10.mp3",
		"genesis/Track 2.mp3",
		"genesis/intro.wav",
		"genesis/Ämbient.m4a",
		"genesis/outro.MP3",
		"genesis/.hidden.mp3",
		"genesis/notes.txt",
	)

	m, err := audio.NewBuilder(osfs.New("")).Scan(root, []audio.Section{{Key: "genesis", Dir: "genesis"}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	tracks, ok := m.Tracks("genesis")
	if !ok {
		t.Fatal("expected genesis section")
	}
	want := []string{"Ämbient.m4a", "intro.wav", "Track 2.mp3", "track 10.mp3"}
	if got := trackNames(tracks); !reflect.DeepEqual(got, want) {
		t.Fatalf("tracks = %v, want %v", got, want)
	}
}

func TestScanBreaksCollationTiesByByteOrder(t *testing.T) {
	fsys := memfs.New()
	for _, name := range []string{"a.mp3", "A.mp3"} {
		if err := util.WriteFile(fsys, "audio/side/"+name, []byte{1}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	m, err := audio.NewBuilder(fsys).Scan("audio", []audio.Section{{Key: "side", Dir: "side"}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	tracks, _ := m.Tracks("side")
	if got := trackNames(tracks); !reflect.DeepEqual(got, []string{"A.mp3", "a.mp3"}) {
		t.Fatalf("tracks = %v", got)
	}
}

func TestScanBuildsEscapedPaths(t *testing.T) {
	root := t.TempDir()
	testsupport.MakeTree(t, root,
		"final/side-a/01 Opening #1.mp3",
		"final/side-a/Song (Live) & More+1.mp3",
		"final/side-a/it's done!~*.mp3",
		"final/side-a/Café=a:b@c$.mp3",
	)

	m, err := audio.NewBuilder(osfs.New(""), audio.WithURLPrefix("/media/")).
		Scan(root, []audio.Section{{Key: "sideA", Dir: "final/side-a"}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	tracks, _ := m.Tracks("sideA")
	want := []audio.Track{
		{Name: "01 Opening #1.mp3", Path: "/media/final/side-a/01%20Opening%20%231.mp3"},
		{Name: "Café=a:b@c$.mp3", Path: "/media/final/side-a/Caf%C3%A9%3Da%3Ab%40c%24.mp3"},
		{Name: "it's done!~*.mp3", Path: "/media/final/side-a/it's%20done!~*.mp3"},
		{Name: "Song (Live) & More+1.mp3", Path: "/media/final/side-a/Song%20(Live)%20%26%20More%2B1.mp3"},
	}
	if !reflect.DeepEqual(tracks, want) {
		t.Fatalf("tracks = %+v, want %+v", tracks, want)
	}
}

func TestBuildMissingSectionsAndOutputDir(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "public", "audio")
	testsupport.MakeTree(t, root, "genesis/a.mp3")
	output := filepath.Join(base, "src", "data", "audio-manifest.json")

	sections := []audio.Section{
		{Key: "genesis", Dir: "genesis"},
		{Key: "broll", Dir: "b-roll"},
	}
	res, err := audio.NewBuilder(osfs.New("")).Build(root, sections, output)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := `{
  "genesis": [
    {
      "name": "a.mp3",
      "path": "/audio/genesis/a.mp3"
    }
  ],
  "broll": []
}`
	if string(res.JSON) != want {
		t.Fatalf("unexpected JSON:\n%s\nwant:\n%s", res.JSON, want)
	}
	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(written, res.JSON) {
		t.Fatalf("written file differs:\n%s", written)
	}
	if got := res.Manifest.Keys(); !reflect.DeepEqual(got, []string{"genesis", "broll"}) {
		t.Fatalf("keys = %v", got)
	}
	if res.Manifest.TrackCount() != 1 {
		t.Fatalf("track count = %d", res.Manifest.TrackCount())
	}
}

func TestScanSectionIsFile(t *testing.T) {
	root := t.TempDir()
	testsupport.MakeTree(t, root, "genesis")
	_, err := audio.NewBuilder(osfs.New("")).Scan(root, []audio.Section{{Key: "genesis", Dir: "genesis"}})
	if err == nil {
		t.Fatal("expected error when a section path is a file")
	}
	if !strings.Contains(err.Error(), "read audio section genesis") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomExtensions(t *testing.T) {
	root := t.TempDir()
	testsupport.MakeTree(t, root, "s/a.flac", "s/b.mp3")
	m, err := audio.NewBuilder(osfs.New(""), audio.WithExtensions(".flac")).Scan(root, []audio.Section{{Key: "s", Dir: "s"}})
	if err != nil {
		t.Fatal(err)
	}
	tracks, _ := m.Tracks("s")
	if got := trackNames(tracks); !reflect.DeepEqual(got, []string{"a.flac"}) {
		t.Fatalf("tracks = %v", got)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	if err := audio.Report(&buf, &audio.Result{Path: "src/data/audio-manifest.json"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Audio manifest generated at src/data/audio-manifest.json\n" {
		t.Fatalf("report = %q", buf.String())
	}
}
