package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/seimei/internal/jsarray"
)

func TestWindowArray_Format(t *testing.T) {
	got := string(WindowArray(IdentGivenNameMaster, HarvestHeader(2005, 2025), []string{"葵", `a"b`}))
	want := "// 自動生成：たまひよ名前ランキング（2005-2025）\n" +
		"window.GIVEN_NAME_MASTER = [\n" +
		"  \"葵\",\n" +
		"  \"a\\\"b\",\n" +
		"];\n"
	assert.Equal(t, want, got)
}

func TestModuleConst_MergeFormat(t *testing.T) {
	got := string(ModuleConst(IdentGivenNames, []string{"花子", "太郎"}, ModuleOptions{AttachWindow: true, ExportDefault: true}))
	want := `const GIVEN_NAMES = [
  "花子",
  "太郎",
];

if (typeof window !== "undefined") {
  window.GIVEN_NAMES = GIVEN_NAMES;
}

export default GIVEN_NAMES;
`
	assert.Equal(t, want, got)
}

func TestModuleConst_CleanFormat(t *testing.T) {
	got := string(ModuleConst(IdentGivenNameMaster, []string{"蓮"}, ModuleOptions{ExportDefault: true}))
	want := `const GIVEN_NAME_MASTER = [
  "蓮",
];

export default GIVEN_NAME_MASTER;
`
	assert.Equal(t, want, got)
}

func TestModuleConst_Empty(t *testing.T) {
	got := string(ModuleConst("X", nil, ModuleOptions{}))
	assert.Equal(t, "const X = [\n];\n", got)
}

func TestRoundTrip_WithJSArray(t *testing.T) {
	names := []string{"陽翔", `引"号`, `反\斜`}

	back, err := jsarray.FirstArray(string(WindowArray(IdentGivenNameMaster, "h", names)))
	require.NoError(t, err)
	assert.Equal(t, names, back)

	back, err = jsarray.FirstArray(string(ModuleConst(IdentGivenNames, names, ModuleOptions{AttachWindow: true})))
	require.NoError(t, err)
	assert.Equal(t, names, back)
}

func TestValidIdent(t *testing.T) {
	assert.True(t, ValidIdent("GIVEN_NAMES"))
	assert.True(t, ValidIdent("$x1"))
	assert.False(t, ValidIdent("1X"))
	assert.False(t, ValidIdent("a-b"))
	assert.False(t, ValidIdent(""))
}
