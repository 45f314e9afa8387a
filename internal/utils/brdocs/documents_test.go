package brdocs_test

import (
	"testing"

	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
	"github.com/stretchr/testify/assert"
)

func TestDigitsAndClean(t *testing.T) {
	assert.Equal(t, "52998224725", brdocs.Digits("529.982.247-25"))
	assert.Equal(t, "", brdocs.Digits("abc"))
	assert.Equal(t, "01310100", brdocs.CleanCEP("01310-100 extra 99"))
	assert.Equal(t, "5511999998888", brdocs.CleanPhone("+55 (11) 99999-8888"))
	assert.Equal(t, "11222333000181", brdocs.CleanCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "52998224725", brdocs.CleanCPF("529.982.247-25-99"))
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},
		{"529.982.247-24", false},
		{"111.111.111-11", false},
		{"5299822472", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, brdocs.ValidCPF(tt.in))
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	assert.True(t, brdocs.ValidCNPJ("11.222.333/0001-81"))
	assert.True(t, brdocs.ValidCNPJ("45723174000110"))
	assert.False(t, brdocs.ValidCNPJ("11.222.333/0001-82"))
	assert.False(t, brdocs.ValidCNPJ("00000000000000"))
	assert.False(t, brdocs.ValidCNPJ("1122233300018"))
}

func TestCEP(t *testing.T) {
	assert.True(t, brdocs.ValidCEP("01310-100"))
	assert.True(t, brdocs.ValidCEP("01310100"))
	assert.False(t, brdocs.ValidCEP("0131010"))
	assert.False(t, brdocs.ValidCEP("013101000"))

	assert.Equal(t, "01310", brdocs.MaskCEP("01310"))
	assert.Equal(t, "01310-1", brdocs.MaskCEP("013101"))
	assert.Equal(t, "01310-100", brdocs.MaskCEP("01310100"))
	assert.Equal(t, "01310-100", brdocs.MaskCEP("01310-1009"))
}

func TestMasks(t *testing.T) {
	assert.Equal(t, "529.982.247-25", brdocs.MaskCPF("52998224725"))
	assert.Equal(t, "5299822", brdocs.MaskCPF("5299822"))
	assert.Equal(t, "11.222.333/0001-81", brdocs.MaskCNPJ("11222333000181"))
}
