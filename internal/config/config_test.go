package config

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-sod/geoindex/internal/index"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	if err := Load(context.Background(), &cfg); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "geoindex")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "geoindex.toml")
	data := []byte(`
log_level = "debug"
queries = 10

[index]
algs = ["QUAD_TREE"]

[points]
count = 50
width = 64
height = 32
`)
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	setenv(t, "GEOINDEX_CONFIG", path)
	setenv(t, "GEOINDEX_HEIGHT", "48")

	var cfg Config
	if err := Load(context.Background(), &cfg); err != nil {
		t.Fatal(err)
	}
	expected := Default()
	expected.LogLevel = "debug"
	expected.Queries = 10
	expected.Index.Algs = []index.AlgType{index.AlgTypeQuadTree}
	expected.Points.Count = 50
	expected.Points.Width = 64
	expected.Points.Height = 48
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	setenv(t, "GEOINDEX_WIDTH", "0")
	var cfg Config
	if err := Load(context.Background(), &cfg); err == nil {
		t.Errorf("an empty plane must be rejected")
	}
}
