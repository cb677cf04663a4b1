package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestRun_NoArguments(t *testing.T) {
	var out bytes.Buffer
	if code := run(nil, &out); code != ExitNoArguments {
		t.Fatalf("exit code = %d, want %d", code, ExitNoArguments)
	}
	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("help not printed: %q", out.String())
	}
}

func TestRun_MissingOutput(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--sources=a.bin"}, &out)
	if code != ExitNoOutput {
		t.Fatalf("exit code = %d, want %d", code, ExitNoOutput)
	}
	if !strings.Contains(out.String(), "--output=") {
		t.Errorf("help not printed: %q", out.String())
	}

	if code := run([]string{"--output="}, &out); code != ExitNoOutput {
		t.Fatalf("empty --output: exit code = %d, want %d", code, ExitNoOutput)
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"--help"}, &out); code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	if !strings.Contains(out.String(), "R E S O U R C E S") {
		t.Errorf("banner not printed: %q", out.String())
	}
}

func TestRun_EmptyProject(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "out", "res")
	var out bytes.Buffer
	if code := run([]string{"--output=" + stem}, &out); code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	for _, p := range []string{stem + ".h", stem + ".cpp"} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
}

func TestRun_Sources(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.dat")
	for _, p := range []string{a, b, c} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)), 0644); err != nil {
			t.Fatal(err)
		}
	}
	stem := filepath.Join(dir, "res")

	var out bytes.Buffer
	args := []string{"--sources=" + a + ",," + b + ",", "--sources=" + c, "--output=" + stem, "--unknown=1", "stray"}
	if code := run(args, &out); code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}

	data, err := os.ReadFile(stem + ".cpp")
	if err != nil {
		t.Fatal(err)
	}
	source := string(data)
	ia := strings.Index(source, `insert_or_assign("a_bin"`)
	ib := strings.Index(source, `insert_or_assign("b_txt"`)
	ic := strings.Index(source, `insert_or_assign("c_dat"`)
	if ia < 0 || ib < ia || ic < ib {
		t.Errorf("registrations missing or out of order: %d %d %d", ia, ib, ic)
	}
}

func TestRun_MissingSource(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "res")
	if err := os.WriteFile(stem+".h", []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := run([]string{"--sources=" + filepath.Join(dir, "nope.png"), "--output=" + stem}, &out)
	if code != ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, ExitFailure)
	}
	if _, err := os.Stat(stem + ".h"); !os.IsNotExist(err) {
		t.Error("stale header should be deleted")
	}
	if _, err := os.Stat(stem + ".cpp"); !os.IsNotExist(err) {
		t.Error("no source should be written")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(asset, []byte{137, 80, 78, 71}, 0644); err != nil {
		t.Fatal(err)
	}
	stem := filepath.Join(dir, "gen", "resources")
	cfgPath := filepath.Join(dir, "resources.yaml")
	content := "sources:\n  - " + filepath.ToSlash(asset) + "\noutput: " + filepath.ToSlash(stem) + "\nlogging:\n  level: warn\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"--config=" + cfgPath}, &out); code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	data, err := os.ReadFile(stem + ".cpp")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "logo_png[4]") {
		t.Error("resource from config file not compiled")
	}
}

func TestRun_BadConfig(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--config=" + filepath.Join(t.TempDir(), "missing.yaml")}, &out)
	if code != ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, ExitFailure)
	}
}

func TestRun_StrictCollision(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.b.c")
	b := filepath.Join(dir, "a_b.c")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte{1}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	args := []string{"--sources=" + a + "," + b, "--output=" + filepath.Join(dir, "res"), "--strict"}
	if code := run(args, &out); code != ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, ExitFailure)
	}
}

func TestUnknownOptions(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("sources", "", "")
	fs.String("output", "", "")
	fs.BoolP("help", "h", false, "")

	raw := []string{"--sources=a", "--bogus", "--output=x", "-h", "-z", "plain", "--other=1", "kept", "--", "--after"}
	got := unknownOptions(fs, raw)
	want := []string{"--bogus", "-z", "plain", "--other=1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknownOptions() = %v, want %v", got, want)
	}
}

func TestUnknownOptions_SwallowedValue(t *testing.T) {
	var opts options
	cmd := newRootCmd(&opts, &bytes.Buffer{})
	cmd.InitDefaultHelpFlag()

	raw := []string{"--bogus", "stray.png", "--output=res"}
	got := unknownOptions(cmd.Flags(), raw)
	want := []string{"--bogus", "stray.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknownOptions() = %v, want %v", got, want)
	}
}

func TestRun_UnknownFlagWithValue(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "res")
	var out bytes.Buffer
	if code := run([]string{"--bogus", "stray.png", "--output=" + stem}, &out); code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	data, err := os.ReadFile(stem + ".cpp")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stray_png") {
		t.Error("the swallowed argument must not become a resource")
	}
}
