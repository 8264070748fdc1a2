package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/seimei/internal/app/merge"
	"github.com/John-Robertt/seimei/internal/config"
	"github.com/John-Robertt/seimei/internal/domain"
	"github.com/John-Robertt/seimei/internal/emit"
)

func runCLI(t *testing.T, cwd string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	a := newApp(&out, &errb)
	a.cwd = cwd
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestCLI_MergeDefaults(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "js", "given_names_generated.js"),
		"// 自動生成\nwindow.GIVEN_NAME_MASTER = [\n  \"花子\",\n  \"太郎\",\n  \"花子\",\n];\n")
	writeFile(t, filepath.Join(cwd, "js", "given_names_cleaned.js"),
		"const GIVEN_NAME_MASTER = [\n  \"次郎\",\n  \"花子\",\n];\n\nexport default GIVEN_NAME_MASTER;\n")

	_, stderr, err := runCLI(t, cwd, "merge")
	require.NoError(t, err)
	assert.Contains(t, stderr, "merge 完成")
	assert.Contains(t, stderr, "run_id")

	got, err := os.ReadFile(filepath.Join(cwd, "js", "given_names.js"))
	require.NoError(t, err)
	want := emit.ModuleConst(emit.IdentGivenNames, []string{"花子", "太郎", "次郎"}, emit.ModuleOptions{AttachWindow: true, ExportDefault: true})
	assert.Equal(t, string(want), string(got))
}

func TestCLI_MergeMissingInputFails(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "js", "given_names_generated.js"), `window.X = ["花子"];`)

	_, _, err := runCLI(t, cwd, "merge")
	var ie *merge.InputError
	require.True(t, errors.As(err, &ie), "err=%v", err)
	assert.Equal(t, filepath.Join(cwd, "js", "given_names_cleaned.js"), ie.Path)

	_, statErr := os.Stat(filepath.Join(cwd, "js", "given_names.js"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_CleanDefaults(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "js", "given_names.js"), `const GIVEN_NAME_MASTER = [" 蓮", "葵", "蓮"];`)

	_, _, err := runCLI(t, cwd, "clean")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(cwd, "js", "given_names_cleaned.js"))
	require.NoError(t, err)
	assert.Equal(t, "const GIVEN_NAME_MASTER = [\n  \"蓮\",\n  \"葵\",\n];\n\nexport default GIVEN_NAME_MASTER;\n", string(got))
}

const rankingPage = `<html><body>
<table class="tbl_ranking"><tbody>
<tr><td>1</td><td>大翔<br><span>ひろと</span></td></tr>
<tr><td>2</td><td>さくら<br>x</td></tr>
<tr><td>3</td><td>美咲<br>みさき</td></tr>
</tbody></table>
</body></html>`

func TestCLI_HarvestWithConfigFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "5" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(rankingPage))
	}))
	defer srv.Close()

	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "custom.yaml"), strings.Join([]string{
		"base_url: " + srv.URL + "/ninshin/name/",
		"years:",
		"  from: 2010",
		"  to: 2010",
		"harvest:",
		"  output: out/names.js",
		"  report_path: out/report.json",
		"log:",
		"  format: json",
		"",
	}, "\n"))

	_, stderr, err := runCLI(t, cwd, "--config", "custom.yaml", "harvest")
	require.NoError(t, err)
	assert.Contains(t, stderr, "页面抓取失败")
	assert.Contains(t, stderr, "YEAR")

	got, err := os.ReadFile(filepath.Join(cwd, "out", "names.js"))
	require.NoError(t, err)
	want := emit.WindowArray(emit.IdentGivenNameMaster, emit.HarvestHeader(2010, 2010), []string{"大翔", "美咲"})
	assert.Equal(t, string(want), string(got))

	b, err := os.ReadFile(filepath.Join(cwd, "out", "report.json"))
	require.NoError(t, err)
	var rr domain.HarvestReport
	require.NoError(t, json.Unmarshal(b, &rr))
	assert.Equal(t, domain.HarvestSummary{Pages: 5, OK: 4, Failed: 1}, rr.Summary)
	assert.Equal(t, 3, rr.Accumulated)
	assert.Equal(t, []string{"大翔", "美咲"}, rr.Names)
}

func TestCLI_ConfigErrorFails(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "seimei.yaml"), "years:\n  from: 2030\n  to: 2020\n")

	_, _, err := runCLI(t, cwd, "harvest")
	assert.Equal(t, config.ErrCodeYearRange, config.Code(err))
}

func TestCLI_RejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "merge", "extra")
	assert.Error(t, err)
}
