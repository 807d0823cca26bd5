package cinelist_test

import (
	"testing"

	"github.com/mtoscano/cinelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		run := &cinelist.Run{URL: "https://www.imdb.com/chart/top/"}
		assert.NoError(t, run.Validate())
	})

	t.Run("URLRequired", func(t *testing.T) {
		t.Parallel()

		err := (&cinelist.Run{}).Validate()
		require.Error(t, err)
		assert.Equal(t, cinelist.EINVALID, cinelist.ErrorCode(err))
		assert.Equal(t, "run URL required", cinelist.ErrorMessage(err))
	})
}

func TestRun_Dataset(t *testing.T) {
	t.Parallel()

	run := &cinelist.Run{
		URL: "https://www.imdb.com/chart/top/",
		Rows: []cinelist.Row{
			{No: 1, Record: cinelist.Record{Title: "Heat", Year: ptr(1995)}},
			{No: 2, Record: cinelist.Record{Title: "Ronin", Year: ptr(1998)}},
		},
	}

	ds := run.Dataset()
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Heat", ds.Rows[0].Title)
	assert.Equal(t, 2, ds.Rows[1].No)
}
