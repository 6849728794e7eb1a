package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePersonalID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		country Country
		wantErr bool
	}{
		{"chile dotted", "12.345.678-9", CountryChile, false},
		{"chile plain with K", "12345678-K", CountryChile, false},
		{"chile missing dv", "12345678", CountryChile, true},
		{"peru 11 digits", "20123456789", CountryPeru, false},
		{"peru too short", "1234567", CountryPeru, true},
		{"colombia dotted", "123.456.789-0", CountryColombia, false},
		{"colombia no hyphen", "1234567890", CountryColombia, false},
		{"unsupported country", "123", Country("Mexico"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePersonalID(tt.id, tt.country)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, KindInvalid, KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBusinessID_Field(t *testing.T) {
	err := ValidateBusinessID("abc", CountryChile)
	var de *Error
	if assert.ErrorAs(t, err, &de) {
		assert.Equal(t, "businessId", de.Field)
	}
}

func TestIDTypeFor(t *testing.T) {
	typ, err := IDTypeFor(CountryPeru)
	assert.NoError(t, err)
	assert.Equal(t, IDTypeRUC, typ)

	_, err = IDTypeFor("Atlantis")
	assert.Error(t, err)
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("Ñuble"))
	assert.False(t, ValidRegion("Patagonia"))
}

func TestNewPage(t *testing.T) {
	p := NewPage(0, 0)
	assert.Equal(t, Page{Page: 1, PerPage: DefaultPerPage}, p)
	assert.Equal(t, int64(MaxPerPage), NewPage(2, 1000).PerPage)
	assert.Equal(t, int64(20), NewPage(3, 10).Offset())
	assert.Equal(t, int64(3), NewPage(1, 10).TotalPages(21))
	assert.Equal(t, int64(0), NewPage(1, 10).TotalPages(0))
}

func TestNewPage_HugePageKeepsOffsetPositive(t *testing.T) {
	p := NewPage(math.MaxInt64, MaxPerPage)
	assert.Equal(t, int64(MaxPage), p.Page)
	assert.Equal(t, int64(MaxPage-1)*MaxPerPage, p.Offset())
	assert.Positive(t, p.Offset())
}
