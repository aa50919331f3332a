// file: internals/helpers/ranking.go
//
// Pola "ranking santri berdasarkan jumlah record terkait":
// (a) group record anak per santri + count, (b) urut menurun,
// (c) paginate DI ATAS hasil group (bukan baris mentah),
// (d) hydrate tiap baris halaman dengan identitas santri.
// Total & totalPages dihitung dari jumlah santri distinct yang punya
// >= 1 record, bukan dari jumlah record mentah.
package helper

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RankedSantri struct {
	SantriID uuid.UUID `json:"santri_id"`
	NIS      string    `json:"nis"`
	Nama     string    `json:"nama"`
	Kelas    string    `json:"kelas"`
	Jumlah   int64     `json:"jumlah"`
}

type santriIdent struct {
	SantriID uuid.UUID
	NIS      string
	Nama     string
	Kelas    string
}

type rankedGroup struct {
	SantriID uuid.UUID
	Jumlah   int64
}

// mergeRankedSantri menggabungkan hasil group-count dengan identitas
// santri, mempertahankan urutan group. Santri induk yang sudah hilang
// tetap tampil dengan nama generik.
func mergeRankedSantri(groups []rankedGroup, idents []santriIdent) []RankedSantri {
	byID := make(map[uuid.UUID]santriIdent, len(idents))
	for _, s := range idents {
		byID[s.SantriID] = s
	}

	out := make([]RankedSantri, 0, len(groups))
	for _, g := range groups {
		row := RankedSantri{SantriID: g.SantriID, Jumlah: g.Jumlah}
		if s, ok := byID[g.SantriID]; ok {
			row.NIS, row.Nama, row.Kelas = s.NIS, s.Nama, s.Kelas
		} else {
			row.Nama = "(santri tidak ditemukan)"
		}
		out = append(out, row)
	}
	return out
}

// RankSantriByChildCount menjalankan pola di atas untuk tabel anak
// apa pun yang punya kolom FK ke santri.
// Tie-break: jumlah sama → santri_id ASC supaya urutan deterministik.
func RankSantriByChildCount(db *gorm.DB, childTable, fkColumn string, paging Paging) ([]RankedSantri, Pagination, error) {
	// total = jumlah santri distinct dengan >= 1 record anak
	var total int64
	if err := db.Table(childTable).
		Where("deleted_at IS NULL").
		Distinct(fkColumn).
		Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var groups []rankedGroup
	if err := db.Table(childTable).
		Select(fkColumn + " AS santri_id, COUNT(*) AS jumlah").
		Where("deleted_at IS NULL").
		Group(fkColumn).
		Order("jumlah DESC, santri_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&groups).Error; err != nil {
		return nil, Pagination{}, err
	}

	pagination := BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	if len(groups) == 0 {
		return []RankedSantri{}, pagination, nil
	}

	// hydrate identitas santri satu kali via IN
	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.SantriID)
	}
	var idents []santriIdent
	if err := db.Table("santris").
		Select("santri_id, santri_nis AS nis, santri_nama AS nama, santri_kelas AS kelas").
		Where("santri_id IN ?", ids).
		Scan(&idents).Error; err != nil {
		return nil, Pagination{}, err
	}

	return mergeRankedSantri(groups, idents), pagination, nil
}
