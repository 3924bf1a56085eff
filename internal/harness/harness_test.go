package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibromley/great-expectations/internal/fixture"
)

func loadSuite(t *testing.T, name string) *fixture.Document {
	t.Helper()
	doc, err := fixture.Load(filepath.Join("testdata", "suites", name))
	require.NoError(t, err)
	return doc
}

func TestRunSuiteFixtures(t *testing.T) {
	files, err := fixture.FindFiles(filepath.Join("testdata", "suites"), "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	h := New()
	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			doc, err := fixture.Load(path)
			require.NoError(t, err)

			result, err := h.RunDocument(name, doc)
			require.NoError(t, err)
			assert.True(t, result.Pass(), "cases: %+v", result.Cases)
		})
	}
}

func TestRunDocumentCaughtError(t *testing.T) {
	doc := loadSuite(t, "distinct_contain_set.yaml")
	result, err := New().RunDocument("distinct_contain_set", doc)
	require.NoError(t, err)

	require.Len(t, result.Cases, 3)
	caught := result.Cases[2]
	assert.Equal(t, StatusCaught, caught.Status)
	require.NotEmpty(t, caught.Errors)
	assert.Contains(t, caught.Errors[0], "COLUMN_NOT_FOUND")
	assert.Nil(t, caught.Actual)

	// caught counts as non-fatal
	assert.Equal(t, 3, result.Passed)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, result.Pass())
}

func TestRunDocumentUncaughtErrorFailsCase(t *testing.T) {
	doc := &fixture.Document{
		ExpectationType: "proportion_of_unique_values_to_be_between",
		Datasets: []fixture.DatasetFixture{{
			Data: map[string][]any{"a": {1, 2}},
			Tests: []fixture.TestCase{{
				Title: "missing column without catch",
				In:    map[string]any{"column": "nope", "min_value": 0.5},
				Out:   map[string]any{"success": true},
			}},
		}},
	}

	result, err := New().RunDocument("errors", doc)
	require.NoError(t, err)
	require.Len(t, result.Cases, 1)
	assert.Equal(t, StatusError, result.Cases[0].Status)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Pass())
}

func TestRunDocumentMismatchFailsCase(t *testing.T) {
	doc := &fixture.Document{
		ExpectationType: "unique_value_count_to_be_between",
		Datasets: []fixture.DatasetFixture{{
			Data: map[string][]any{"a": {1, 2, 3}},
			Tests: []fixture.TestCase{{
				Title: "wrong expected count",
				In:    map[string]any{"column": "a", "max_value": 10},
				Out:   map[string]any{"success": true, "observed_value": 2},
			}},
		}},
	}

	result, err := New().RunDocument("mismatch", doc)
	require.NoError(t, err)
	require.Len(t, result.Cases, 1)

	c := result.Cases[0]
	assert.Equal(t, StatusFail, c.Status)
	require.NotEmpty(t, c.Errors)
	assert.Contains(t, c.Errors[0], "observed_value")
	require.NotNil(t, c.Actual)
	assert.True(t, c.Actual.Success)
}

func TestRunDocumentBadDataAborts(t *testing.T) {
	doc := &fixture.Document{
		ExpectationType: "distinct_values_to_contain_set",
		Datasets: []fixture.DatasetFixture{{
			Data: map[string][]any{"a": {[]any{1, 2}}},
		}},
	}
	_, err := New().RunDocument("bad", doc)
	require.Error(t, err)
}

func TestGoldenSnapshot(t *testing.T) {
	doc := loadSuite(t, "distinct_contain_basic.yaml")
	result, err := New().RunDocument("distinct_contain_basic", doc)
	require.NoError(t, err)
	require.True(t, result.Pass())

	AssertGolden(t, result)
}
