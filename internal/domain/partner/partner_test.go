package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMine(t *testing.T) {
	t.Run("creates mine with valid input", func(t *testing.T) {
		mine, err := NewMine("  Makrana North ", "Makrana, Rajasthan", "Ramesh")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, mine.ID)
		assert.Equal(t, "Makrana North", mine.Name)
		assert.Equal(t, 1, mine.Version)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		mine, err := NewMine("  ", "", "")
		assert.Nil(t, mine)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestMine_Update(t *testing.T) {
	mine, err := NewMine("Old", "", "")
	require.NoError(t, err)

	require.NoError(t, mine.Update("New", "Addr", "Contact"))
	assert.Equal(t, "New", mine.Name)
	assert.Equal(t, 2, mine.Version)

	assert.Error(t, mine.Update("", "", ""))
	assert.Equal(t, "New", mine.Name)
}

func TestNewVendor(t *testing.T) {
	mineID := uuid.New()

	t.Run("normalizes phones", func(t *testing.T) {
		v, err := NewVendor("Shree Stones", []string{"98765 43210", "", "+91-9876543210"}, "Kishangarh", &mineID)
		require.NoError(t, err)
		assert.Equal(t, []string{"9876543210", "+919876543210"}, []string(v.Phones))
		assert.Equal(t, &mineID, v.MineID)
	})

	t.Run("nil mine id is cleared", func(t *testing.T) {
		nilID := uuid.Nil
		v, err := NewVendor("Shree Stones", nil, "", &nilID)
		require.NoError(t, err)
		assert.Nil(t, v.MineID)
		assert.NotNil(t, v.Phones)
	})

	t.Run("rejects bad phone", func(t *testing.T) {
		v, err := NewVendor("Shree Stones", []string{"12ab"}, "", nil)
		assert.Nil(t, v)
		assert.Error(t, err)
	})
}

func TestNewLabour(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l, err := NewLabour("Suresh", "+919876543210")
		require.NoError(t, err)
		assert.Equal(t, "+919876543210", l.Mobile)
	})

	t.Run("mobile required", func(t *testing.T) {
		_, err := NewLabour("Suresh", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		mobile string
		valid  bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"123456789012345", true},
		{"123456789", false},
		{"1234567890123456", false},
		{"98765x3210", false},
		{"++9876543210", false},
	}
	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			err := ValidateMobile(tt.mobile)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
