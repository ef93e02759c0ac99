package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points config and logging at a temp dir so tests never read the
// developer's own settings.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FOODLIST_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("FOODLIST_CURRENCY", "")
	t.Setenv("FOODLIST_FORMAT", "")
	t.Setenv("FOODLIST_LOG_LEVEL", "")
	t.Setenv("FOODLIST_LOG_FILE", "")
	t.Setenv("FOODLIST_LOG_FORMAT", "")
	t.Setenv("FOODLIST_GLYPHS", "")
	t.Setenv("FOODLIST_OVERLAY_SPAWN", "")
	return dir
}

func TestRender_WritesFoodItemsJSON(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runCLI(t, []string{"render", "--item", "Rice=12.50", "--item", "Dal=8"})
	if err != nil {
		t.Fatalf("render: %v\nstderr:\n%s", err, stderr)
	}
	if got := strings.TrimSpace(string(stdout)); got != `{"foodItems":[{"foodItem":"Rice","price":12.5},{"foodItem":"Dal","price":8}]}` {
		t.Fatalf("unexpected stdout: %s", got)
	}
	if len(stderr) != 0 {
		t.Fatalf("expected quiet stderr at default level; got:\n%s", stderr)
	}
}

func TestRender_EDN(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--format", "edn", "render", "--item", "Chai=1"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.TrimSpace(string(stdout)); got != `{:foodItems [{:foodItem "Chai" :price 1}]}` {
		t.Fatalf("unexpected stdout: %s", got)
	}
}

func TestRender_NameMayContainEquals(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"render", "--item", "a=b=2"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var env struct {
		FoodItems []map[string]any `json:"foodItems"`
	}
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if len(env.FoodItems) != 1 || env.FoodItems[0]["foodItem"] != "a=b" {
		t.Fatalf("unexpected items: %#v", env.FoodItems)
	}
}

func TestRender_ValidationErrors(t *testing.T) {
	isolate(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "empty list", args: []string{"render"}, want: "Please add at least one food item."},
		{name: "blank name", args: []string{"render", "--item", "  =3"}, want: "Please enter a valid food item."},
		{name: "bad price", args: []string{"render", "--item", "Rice=12abc"}, want: "Please enter a valid price."},
		{name: "price past float range", args: []string{"render", "--item", "Rice=1e99999999"}, want: "Please enter a valid price."},
		{name: "no separator", args: []string{"render", "--item", "Rice"}, want: "want name=price"},
	}
	for _, tc := range cases {
		stdout, stderr, err := runCLI(t, tc.args)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(string(stderr), tc.want) {
			t.Fatalf("%s: expected stderr to contain %q; got:\n%s", tc.name, tc.want, stderr)
		}
		if len(stdout) != 0 {
			t.Fatalf("%s: expected no stdout; got:\n%s", tc.name, stdout)
		}
	}
}

func TestRender_LogLevelFlagLogsToStderr(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, []string{"--log-level", "info", "render", "--item", "Rice=1"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(stderr), "msg=finalize") {
		t.Fatalf("expected finalize log on stderr; got:\n%s", stderr)
	}
	if !strings.Contains(string(stderr), "component=render") {
		t.Fatalf("expected render component on log lines; got:\n%s", stderr)
	}
}

func TestRender_TableShowsExactPrices(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--format", "table", "render", "--item", "Chai=12.555", "--item", "Thali=1e20"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"₹12.555", "₹100,000,000,000,000,000,000.00"} {
		if !strings.Contains(string(stdout), want) {
			t.Fatalf("expected %q in table; got:\n%s", want, stdout)
		}
	}
}

func TestConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("currency: usd\nglyphs: ascii\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(string(stdout), "currency: USD") || !strings.Contains(string(stdout), "glyphs: ascii") {
		t.Fatalf("expected file values; got:\n%s", stdout)
	}

	t.Setenv("FOODLIST_CURRENCY", "EUR")
	stdout, _, err = runCLI(t, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(string(stdout), "currency: EUR") {
		t.Fatalf("expected env to win over file; got:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, []string{"--currency", "gbp", "config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(string(stdout), "currency: GBP") {
		t.Fatalf("expected flag to win over env; got:\n%s", stdout)
	}
}

func TestConfig_UnknownCurrencyFails(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, []string{"--currency", "XYZQ", "render", "--item", "Rice=1"})
	if err == nil {
		t.Fatalf("expected error for unknown currency")
	}
	if !strings.Contains(string(stderr), "unknown currency") {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
}

func TestConfig_InitWritesOnce(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")

	stdout, _, err := runCLI(t, []string{"--currency", "USD", "config", "init"})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != path {
		t.Fatalf("expected path on stdout; got %q", stdout)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(b), "currency: USD") {
		t.Fatalf("unexpected config file:\n%s", b)
	}

	if _, _, err := runCLI(t, []string{"config", "init"}); err == nil {
		t.Fatalf("expected second init to refuse to overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--force"}); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"version"})
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "foodlist ") {
		t.Fatalf("unexpected version output: %q", stdout)
	}
}

func TestDocs_ListAndRaw(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if got := strings.TrimSpace(string(stdout)); got != `{"topics":["config","keys","render"]}` {
		t.Fatalf("unexpected topics: %s", got)
	}

	stdout, _, err = runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("unexpected raw docs: %q", stdout)
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

func TestRender_Table(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--format", "table", "--currency", "USD", "render", "--item", "Dosa=12.5", "--item", "Masala Chai=1"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(stdout), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, 2 rows and total; got:\n%s", stdout)
	}
	if !strings.HasPrefix(lines[0], "FOOD ITEM") || !strings.HasSuffix(lines[3], "$13.50") || !strings.HasPrefix(lines[3], "TOTAL") {
		t.Fatalf("unexpected table:\n%s", stdout)
	}
}
