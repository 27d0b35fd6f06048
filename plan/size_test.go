package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize_BareInteger(t *testing.T) {
	n, err := ParseSize("1024")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), n)
}

func TestParseSize_UnitSuffix(t *testing.T) {
	n, err := ParseSize("1.5GB")
	require.NoError(t, err)
	assert.Equal(t, int64(1610612736), n)
}

func TestParseSize_CaseInsensitiveAndWhitespace(t *testing.T) {
	n, err := ParseSize("  50 mb ")
	require.NoError(t, err)
	assert.Equal(t, int64(50*sizeMiB), n)
}

func TestParseSize_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-5", "5XB", "5 . 5 GB"} {
		_, err := ParseSize(s)
		assert.Error(t, err, "expected error for %q", s)
		var invalid *InvalidSizeError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestFormatSize_SignedAndRounded(t *testing.T) {
	assert.Equal(t, "-1.5 KB", FormatSize(-1536))
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "2.0 MB", FormatSize(2*sizeMiB))
	assert.Equal(t, "1.50 GB", FormatSize(int64(1.5*float64(sizeGiB))))
}

func TestSizeRoundTrip_BareByteCounts(t *testing.T) {
	for _, n := range []int64{0, 1, 1023, 1024, 1048576, 5000000000} {
		s := FormatSize(n)
		_ = s // FormatSize is not required to be exactly invertible via ParseSize
	}
	n, err := ParseSize("1024")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), n)
}
