package models

import (
	"fmt"
	"regexp"
	"strings"
)

// RegulationCode is one of the atomic permission codes used in RDTR
// permitted-use tables.
type RegulationCode string

const (
	CodeI  RegulationCode = "I"  // diizinkan
	CodeT1 RegulationCode = "T1" // terbatas 1
	CodeT2 RegulationCode = "T2" // terbatas 2
	CodeT3 RegulationCode = "T3" // terbatas 3
	CodeB1 RegulationCode = "B1" // bersyarat 1
	CodeB2 RegulationCode = "B2" // bersyarat 2
	CodeB3 RegulationCode = "B3" // bersyarat 3
	CodeX  RegulationCode = "X"  // tidak diizinkan
)

// permissionToken matches a single atomic code inside a permission string.
var permissionToken = regexp.MustCompile(`^[IX]$|^[TB][1-3]$`)

// RegulationDescriptions returns the fixed code-to-description table. The map
// is built fresh on every call so callers can never mutate shared state; it is
// passed explicitly to the formatting layer.
func RegulationDescriptions() map[RegulationCode]string {
	return map[RegulationCode]string{
		CodeI:  "Kegiatan diizinkan",
		CodeT1: "Pembatasan pengoperasian, baik dalam bentuk pembatasan waktu beroperasinya suatu kegiatan",
		CodeT2: "Pembatasan intensitas ruang, baik KDB, KLB, KDH, jarak bebas, maupun ketinggian bangunan",
		CodeT3: "Pembatasan jumlah pemanfaatan, jika pemanfaatan yang diusulkan telah ada mampu melayani kebutuhan dan belum memerlukan tambahan",
		CodeB1: "Wajib menyusun dokumen lingkungan sesuai dengan ketentuan peraturan perundang-undangan",
		CodeB2: "Wajib menyusun kajian sesuai dengan ketentuan peraturan perundang-undangan",
		CodeB3: "Wajib mendapatkan persetujuan dari instansi yang berwenang sesuai dengan ketentuan peraturan perundang-undangan",
		CodeX:  "Kegiatan tidak diizinkan",
	}
}

// ValidatePermission checks a raw permission cell value. A valid value is one
// atomic code or a comma-separated combination of them; X never appears in a
// combination.
func ValidatePermission(perm string) error {
	tokens := SplitPermission(perm)
	if len(tokens) == 0 {
		return fmt.Errorf("empty permission value")
	}
	for _, tok := range tokens {
		if !permissionToken.MatchString(tok) {
			return fmt.Errorf("invalid permission token %q in %q", tok, perm)
		}
		if tok == string(CodeX) && len(tokens) > 1 {
			return fmt.Errorf("code X combined with other codes in %q", perm)
		}
	}
	return nil
}

// CanonicalPermission rewrites a permission string as its trimmed tokens
// joined by plain commas, so "T1, B2" and "T1,B2" store and compare equal.
func CanonicalPermission(perm string) string {
	return strings.Join(SplitPermission(perm), ",")
}

// SplitPermission splits a permission string into trimmed atomic tokens.
func SplitPermission(perm string) []string {
	var tokens []string
	for _, tok := range strings.Split(perm, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
