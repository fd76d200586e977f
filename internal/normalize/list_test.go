package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followup_tracker/internal/model"
)

func TestExtractList_BareArrayUnchanged(t *testing.T) {
	payload := decode(t, `[{"name":"A"},{"name":"B"}]`)
	list := ExtractList(payload)
	assert.Equal(t, payload, any(list))
	assert.Len(t, list, 2)
}

func TestExtractList_WrappedFields(t *testing.T) {
	shapes := map[string]string{
		"converts": `{"converts":[{"name":"A"}]}`,
		"data":     `{"data":[{"name":"A"}]}`,
		"results":  `{"results":[{"name":"A"}]}`,
		"items":    `{"items":[{"name":"A"}]}`,
		"result":   `{"result":[{"name":"A"}]}`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			list := ExtractList(decode(t, raw))
			require.Len(t, list, 1)
		})
	}
}

func TestExtractList_ProbeOrder(t *testing.T) {
	// "converts" outranks "data" when both are arrays.
	raw := `{"data":[{"name":"wrong"}],"converts":[{"name":"right"}]}`
	list := ExtractList(decode(t, raw))
	require.Len(t, list, 1)
	item := list[0].(map[string]any)
	assert.Equal(t, "right", item["name"])
}

func TestExtractList_NonArrayFieldSkipped(t *testing.T) {
	// "data" holds an object here; the probe moves on and finds "result".
	raw := `{"data":{"page":1},"result":[{"name":"A"}]}`
	list := ExtractList(decode(t, raw))
	assert.Len(t, list, 1)
}

func TestExtractList_DegradesToEmpty(t *testing.T) {
	shapes := map[string]string{
		"no matching field": `{"message":"ok","count":3}`,
		"scalar payload":    `42`,
		"null payload":      `null`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			list := ExtractList(decode(t, raw))
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestExtractListAs_DecodesConverts(t *testing.T) {
	raw := `{"converts":[{"_id":"c1","name":"Ada","phone":"0801","visits":[1,2]}]}`
	converts := ExtractListAs[model.Convert](decode(t, raw))
	require.Len(t, converts, 1)
	assert.Equal(t, "Ada", converts[0].Name)
	assert.Equal(t, []int{1, 2}, converts[0].Visits)
}
