// Package brdocs normalises, masks and validates Brazilian identifiers:
// CPF, CNPJ, CEP and PIX keys.
package brdocs

import "strings"

const (
	CPFLength  = 11
	CNPJLength = 14
	CEPLength  = 8
)

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func allSame(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}

// CleanCPF returns at most the first 11 digits of s.
func CleanCPF(s string) string { return truncate(Digits(s), CPFLength) }

// CleanCNPJ returns at most the first 14 digits of s.
func CleanCNPJ(s string) string { return truncate(Digits(s), CNPJLength) }

// CleanCEP returns at most the first 8 digits of s.
func CleanCEP(s string) string { return truncate(Digits(s), CEPLength) }

// CleanPhone returns at most the first 15 digits of s.
func CleanPhone(s string) string { return truncate(Digits(s), 15) }

// ValidCPF checks length and both check digits. Repeated-digit numbers
// such as 111.111.111-11 are rejected.
func ValidCPF(s string) bool {
	cpf := Digits(s)
	if len(cpf) != CPFLength || allSame(cpf) {
		return false
	}
	dv := func(n int) int {
		sum := 0
		for i := 0; i < n-1; i++ {
			sum += int(cpf[i]-'0') * (n - i)
		}
		r := (sum * 10) % 11
		if r == 10 {
			return 0
		}
		return r
	}
	return int(cpf[9]-'0') == dv(10) && int(cpf[10]-'0') == dv(11)
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ checks length and both check digits.
func ValidCNPJ(s string) bool {
	cnpj := Digits(s)
	if len(cnpj) != CNPJLength || allSame(cnpj) {
		return false
	}
	dv := func(weights []int) int {
		sum := 0
		for i, w := range weights {
			sum += int(cnpj[i]-'0') * w
		}
		r := sum % 11
		if r < 2 {
			return 0
		}
		return 11 - r
	}
	return int(cnpj[12]-'0') == dv(cnpjWeights1) && int(cnpj[13]-'0') == dv(cnpjWeights2)
}

// ValidCEP reports whether s holds exactly eight digits once the mask is removed.
func ValidCEP(s string) bool {
	return len(Digits(s)) == CEPLength
}

// MaskCEP renders "12345-678" as soon as more than five digits are present.
func MaskCEP(s string) string {
	d := CleanCEP(s)
	if len(d) > 5 {
		return d[:5] + "-" + d[5:]
	}
	return d
}

// MaskCPF renders a complete CPF as "000.000.000-00"; partial input is
// returned as bare digits.
func MaskCPF(s string) string {
	d := CleanCPF(s)
	if len(d) != CPFLength {
		return d
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// MaskCNPJ renders a complete CNPJ as "00.000.000/0000-00".
func MaskCNPJ(s string) string {
	d := CleanCNPJ(s)
	if len(d) != CNPJLength {
		return d
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}
