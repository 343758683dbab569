package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/games/calculator"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

// isolate keeps user config files out of the embedded defaults.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func simConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestRegisteredGames(t *testing.T) {
	want := []string{"bounce", "flappy", "snake"}
	var got []string
	for _, g := range registry.List() {
		got = append(got, g.ID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("registered games = %v, want %v", got, want)
	}
}

func TestCreateGame(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		difficulty string
		wantPreset string
		wantErr    bool
	}{
		{"default preset", "snake", "", "normal", false},
		{"explicit preset", "flappy", "HARD", "hard", false},
		{"unknown game", "pong", "", "", true},
		{"unknown preset", "snake", "insane", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, preset, err := createGame(tt.id, "", tt.difficulty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("createGame() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if game.ID() != tt.id || preset != tt.wantPreset {
				t.Errorf("got %s/%s, want %s/%s", game.ID(), preset, tt.id, tt.wantPreset)
			}
		})
	}
}

func TestSimulateSnakeEats(t *testing.T) {
	isolate(t)
	game, _, err := createGame("snake", "", "")
	if err != nil {
		t.Fatal(err)
	}

	res, err := simulate(game, simConfig(42), 3000)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if res.Score == 0 {
		t.Errorf("autopilot scored nothing in %d ticks", res.Ticks)
	}
	if res.Ticks > 3000 {
		t.Errorf("ran %d ticks, limit 3000", res.Ticks)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	isolate(t)
	for _, id := range []string{"snake", "flappy"} {
		t.Run(id, func(t *testing.T) {
			var results []simResult
			for range 2 {
				game, _, err := createGame(id, "", "")
				if err != nil {
					t.Fatal(err)
				}
				res, err := simulate(game, simConfig(7), 2000)
				if err != nil {
					t.Fatalf("simulate() failed: %v", err)
				}
				results = append(results, res)
			}
			if results[0] != results[1] {
				t.Errorf("same seed gave %+v and %+v", results[0], results[1])
			}
		})
	}
}

func TestSimulateBadConfig(t *testing.T) {
	isolate(t)
	game, _, err := createGame("flappy", filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := simulate(game, simConfig(1), 10); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestWriteFramePNG(t *testing.T) {
	isolate(t)
	game, _, err := createGame("bounce", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := simulate(game, simConfig(1), 50); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeFramePNG(game, path); err != nil {
		t.Fatalf("writeFramePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != panelWidth || b.Dy() != panelHeight {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), panelWidth, panelHeight)
	}
}

func TestCalcKeys(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"12", "+", "3"}, []string{"1", "2", "+", "3"}},
		{[]string{"2.5", "x", "4"}, []string{"2", ".", "5", "x", "4"}},
		{[]string{"CE", "+/-", "BK"}, []string{"CE", "+/-", "BK"}},
		{[]string{"", "="}, []string{"", "="}},
	}
	for _, tt := range tests {
		if got := calcKeys(tt.args); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("calcKeys(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestCalcEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"12", "+", "30", "="}, "42"},
		{[]string{"7", "/", "0", "="}, calculator.ErrorDisplay},
		{[]string{"2.5", "x", "4", "+/-"}, "-4"},
	}
	for _, tt := range tests {
		got, err := calculator.Eval(calcKeys(tt.args))
		if err != nil {
			t.Fatalf("Eval(%q) failed: %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, "snake"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty table output:\n%s", empty.String())
	}

	for _, s := range []int{10, 30} {
		if _, err := store.SaveScore(storage.Record{GameID: "snake", Player: "ann", Score: s}); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := printScores(&out, store, "snake"); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"High Scores - Snake", "ann", "Best: 30  Games: 2  Average: 20.0"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
