package jsarray

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstArray_GeneratedFile(t *testing.T) {
	text := "// 自動生成：たまひよ名前ランキング（2005-2025）\n" +
		"window.GIVEN_NAME_MASTER = [\n" +
		"  \"花子\",\n" +
		"  \"太郎\",\n" +
		"  \"花子\",\n" +
		"];"

	got, err := FirstArray(text)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"花子", "太郎", "花子"}, got); diff != "" {
		t.Fatalf("结果不符合预期 (-want +got):\n%s", diff)
	}
}

func TestFirstArray_IgnoresEverythingOutsideFirstBrackets(t *testing.T) {
	text := `const A = "前置";
const GIVEN_NAME_MASTER = ["葵", "蓮"];
const OTHER = ["無視"];
export default GIVEN_NAME_MASTER;`

	got, err := FirstArray(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"葵", "蓮"}, got)
}

func TestFirstArray_EscapesAndBracketInsideString(t *testing.T) {
	got, err := FirstArray(`x = ["a\"b", "c]d", "", "e\\f"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{`a"b`, "c]d", `e\f`}, got, "空串跳过，字符串中的 ] 不结束数组")
}

func TestFirstArray_NoArray(t *testing.T) {
	_, err := FirstArray(`const X = "花子";`)
	assert.True(t, errors.Is(err, ErrNoArray))

	_, err = FirstArray(`const X = ["花子", "太郎"`)
	assert.True(t, errors.Is(err, ErrNoArray), "未闭合的数组也视为找不到")
}

func TestFirstArray_EmptyArray(t *testing.T) {
	got, err := FirstArray("const X = [\n];")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuotedStrings_WholeText(t *testing.T) {
	text := `const GIVEN_NAME_MASTER = [
  "陽翔",
  " 蓮 ",
];
window.X = ["葵"];`

	assert.Equal(t, []string{"陽翔", " 蓮 ", "葵"}, QuotedStrings(text))
}

func TestQuotedStrings_UnterminatedDropped(t *testing.T) {
	assert.Equal(t, []string{"葵"}, QuotedStrings("[\"葵\", \"蓮\n]"))
}
