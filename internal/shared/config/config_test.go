package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags([]string{"#News", "alerts", "  #Digest  ", "", "#", "  "})

	assert.Equal(t, []string{"news", "alerts", "digest"}, tags)
}

func TestParseTagSpec_JSONArray(t *testing.T) {
	tags := parseTagSpec(`["#news", "alerts"]`)

	assert.Equal(t, []string{"#news", "alerts"}, tags)
}

func TestParseTagSpec_SingleTag(t *testing.T) {
	assert.Equal(t, []string{"#news"}, parseTagSpec("#news"))
	assert.Equal(t, []string{"news"}, parseTagSpec("news"))
}

func TestParseTagSpec_InvalidJSONFailsClosed(t *testing.T) {
	assert.Empty(t, parseTagSpec(`["unterminated`))
	assert.Empty(t, parseTagSpec(nil))
	assert.Empty(t, parseTagSpec(42))
}

func TestCoerceChatIDs_JSONArray(t *testing.T) {
	ids := coerceChatIDs(`["-1001", -1002, "-1003"]`)

	assert.Equal(t, []string{"-1001", "-1002", "-1003"}, ids)
}

func TestCoerceChatIDs_CommaSeparated(t *testing.T) {
	ids := coerceChatIDs("-1001, -1002 ,,-1003")

	assert.Equal(t, []string{"-1001", "-1002", "-1003"}, ids)
}

func TestCoerceChatIDs_NativeList(t *testing.T) {
	ids := coerceChatIDs([]interface{}{"-1001", float64(-1002), int64(-1003)})

	assert.Equal(t, []string{"-1001", "-1002", "-1003"}, ids)
}

func TestCoerceChatIDs_InvalidInput(t *testing.T) {
	assert.Empty(t, coerceChatIDs(nil))
	assert.Empty(t, coerceChatIDs(`[unterminated`))
	assert.Empty(t, coerceChatIDs("  "))
}

func TestCoerceChatID(t *testing.T) {
	assert.Equal(t, "-1001234567890", coerceChatID("-1001234567890"))
	assert.Equal(t, "-1001234567890", coerceChatID(float64(-1001234567890)))
	assert.Equal(t, "-42", coerceChatID(int64(-42)))
	assert.Equal(t, "", coerceChatID(nil))
}
