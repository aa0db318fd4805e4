package service

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
)

// Gender codes as stored by the backend
const (
	GenderMale   = "L"
	GenderFemale = "P"
)

// GenderLabel display text of a gender code
func GenderLabel(code string) string {
	switch code {
	case GenderMale:
		return "Laki-laki"
	case GenderFemale:
		return "Perempuan"
	default:
		return code
	}
}

// ── column builders ──

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func textColumn[T any](key, title string, get func(T) string) table.Column[T] {
	return table.Column[T]{
		Key:        key,
		Title:      title,
		Value:      func(r T) any { return get(r) },
		Searchable: true,
		Compare:    func(a, b T) int { return compareFold(get(a), get(b)) },
	}
}

func boolColumn[T any](key, title string, get func(T) bool) table.Column[T] {
	return table.Column[T]{
		Key:   key,
		Title: title,
		Value: func(r T) any { return get(r) },
		Filters: []table.FilterOption{
			{Label: table.Yes, Value: "true"},
			{Label: table.No, Value: "false"},
		},
		Match: func(r T, v string) bool { return strconv.FormatBool(get(r)) == v },
		Compare: func(a, b T) int {
			x, y := get(a), get(b)
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		},
	}
}

func genderColumn[T any](key, title string, get func(T) string) table.Column[T] {
	return table.Column[T]{
		Key:    key,
		Title:  title,
		Value:  func(r T) any { return get(r) },
		Render: func(r T) string { return GenderLabel(get(r)) },
		Filters: []table.FilterOption{
			{Label: GenderLabel(GenderMale), Value: GenderMale},
			{Label: GenderLabel(GenderFemale), Value: GenderFemale},
		},
		Match:   func(r T, v string) bool { return get(r) == v },
		Compare: func(a, b T) int { return strings.Compare(get(a), get(b)) },
	}
}

// lookupColumn shows the name an id resolves to in m. Searching, filtering and
// sorting all work on the resolved name.
func lookupColumn[T any](key, title string, m map[int64]string, id func(T) *int64) table.Column[T] {
	name := func(r T) string { return Name(m, id(r)) }
	return table.Column[T]{
		Key:        key,
		Title:      title,
		Value:      func(r T) any { return name(r) },
		Searchable: true,
		Filters:    Options(m),
		Compare:    func(a, b T) int { return compareFold(name(a), name(b)) },
	}
}

// dateColumn keeps the backend's ISO-8601 string; the exporter localizes it.
// ISO strings of one layout sort chronologically as text.
func dateColumn[T any](key, title string, get func(T) string) table.Column[T] {
	return table.Column[T]{
		Key:     key,
		Title:   title,
		Value:   func(r T) any { return get(r) },
		Compare: func(a, b T) int { return strings.Compare(get(a), get(b)) },
	}
}

func numberColumn[T any](key, title string, get func(T) int) table.Column[T] {
	return table.Column[T]{
		Key:     key,
		Title:   title,
		Value:   func(r T) any { return get(r) },
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

func pictureColumn[T any](key, title string, get func(T) string) table.Column[T] {
	return table.Column[T]{
		Key:   key,
		Title: title,
		Value: func(r T) any { return get(r) },
	}
}

func ptr[V any](v V) *V { return &v }

// ── catalogues ──

// EmployeeColumns the employee table
func EmployeeColumns(l *Lookups) []table.Column[model.Employee] {
	return []table.Column[model.Employee]{
		textColumn("nipNipp", "NIP/NIPP", func(e model.Employee) string { return e.NipNipp }),
		textColumn("employeeName", "Nama Pegawai", func(e model.Employee) string { return e.EmployeeName }),
		genderColumn("employeeGender", "Jenis Kelamin", func(e model.Employee) string { return e.EmployeeGender }),
		textColumn("lastPosition", "Jabatan Terakhir", func(e model.Employee) string { return e.LastPosition }),
		textColumn("deathCause", "Penyebab Wafat", func(e model.Employee) string { return e.DeathCause }),
		boolColumn("isAccident", "Kecelakaan Kerja", func(e model.Employee) bool { return e.IsAccident }),
		lookupColumn("regionName", "Wilayah", l.Regions, func(e model.Employee) *int64 { return e.RegionID }),
		pictureColumn("employeePicture", "Foto", func(e model.Employee) string { return e.EmployeePicture }),
		dateColumn("createdAt", "Dibuat", func(e model.Employee) string { return e.CreatedAt }),
	}
}

// PartnerColumns the partner table
func PartnerColumns(l *Lookups) []table.Column[model.Partner] {
	return []table.Column[model.Partner]{
		textColumn("partnerName", "Nama Pasangan", func(p model.Partner) string { return p.PartnerName }),
		textColumn("partnerNik", "NIK", func(p model.Partner) string { return p.PartnerNik }),
		lookupColumn("employeeName", "Pegawai", l.Employees, func(p model.Partner) *int64 { return p.EmployeeID }),
		textColumn("partnerJob", "Pekerjaan", func(p model.Partner) string { return p.PartnerJob }),
		textColumn("phoneNumber", "No. HP", func(p model.Partner) string { return p.PhoneNumber }),
		textColumn("address", "Alamat", func(p model.Partner) string { return p.Address }),
		boolColumn("isActive", "Aktif", func(p model.Partner) bool { return p.IsActive }),
		boolColumn("isAlive", "Masih Hidup", func(p model.Partner) bool { return p.IsAlive }),
		lookupColumn("regionName", "Wilayah", l.Regions, func(p model.Partner) *int64 { return p.RegionID }),
		lookupColumn("subdistrictName", "Kecamatan", l.Subdistricts, func(p model.Partner) *int64 { return p.SubdistrictID }),
		pictureColumn("partnerPicture", "Foto", func(p model.Partner) string { return p.PartnerPicture }),
		dateColumn("createdAt", "Dibuat", func(p model.Partner) string { return p.CreatedAt }),
	}
}

// WaliColumns the wali table
func WaliColumns(l *Lookups) []table.Column[model.Wali] {
	return []table.Column[model.Wali]{
		textColumn("waliName", "Nama Wali", func(w model.Wali) string { return w.WaliName }),
		textColumn("relation", "Hubungan", func(w model.Wali) string { return w.Relation }),
		textColumn("waliPhone", "No. HP", func(w model.Wali) string { return w.WaliPhone }),
		textColumn("waliAddress", "Alamat", func(w model.Wali) string { return w.WaliAddress }),
		lookupColumn("regionName", "Wilayah", l.Regions, func(w model.Wali) *int64 { return w.RegionID }),
		pictureColumn("waliPicture", "Foto", func(w model.Wali) string { return w.WaliPicture }),
		dateColumn("createdAt", "Dibuat", func(w model.Wali) string { return w.CreatedAt }),
	}
}

// ParentsText the composite "orangtua" cell: employee and partner names
func ParentsText(l *Lookups, c model.Children) string {
	father, mother := Name(l.Employees, c.EmployeeID), Name(l.Partners, c.PartnerID)
	switch {
	case father != "" && mother != "":
		return father + " & " + mother
	case father != "":
		return father
	default:
		return mother
	}
}

// ChildrenColumns the children table
func ChildrenColumns(l *Lookups) []table.Column[model.Children] {
	parents := func(c model.Children) string { return ParentsText(l, c) }
	return []table.Column[model.Children]{
		textColumn("childrenName", "Nama Anak", func(c model.Children) string { return c.ChildrenName }),
		{
			Key:        "orangtua",
			Title:      "Orang Tua",
			Value:      func(c model.Children) any { return parents(c) },
			Searchable: true,
			SearchText: func(c model.Children) string {
				return Name(l.Employees, c.EmployeeID) + " " + Name(l.Partners, c.PartnerID)
			},
			Compare: func(a, b model.Children) int { return compareFold(parents(a), parents(b)) },
		},
		lookupColumn("waliName", "Wali", l.Walis, func(c model.Children) *int64 { return c.WaliID }),
		genderColumn("childrenGender", "Jenis Kelamin", func(c model.Children) string { return c.ChildrenGender }),
		dateColumn("childrenBirthdate", "Tanggal Lahir", func(c model.Children) string { return c.ChildrenBirthdate }),
		numberColumn("index", "Anak Ke", func(c model.Children) int { return c.Index }),
		boolColumn("isFatherAlive", "Ayah Hidup", func(c model.Children) bool { return c.IsFatherAlive }),
		boolColumn("isMotherAlive", "Ibu Hidup", func(c model.Children) bool { return c.IsMotherAlive }),
		boolColumn("isCondition", "Berkebutuhan Khusus", func(c model.Children) bool { return c.IsCondition }),
		pictureColumn("childrenPicture", "Foto", func(c model.Children) string { return c.ChildrenPicture }),
	}
}

// UmkmColumns the small-business table
func UmkmColumns(l *Lookups) []table.Column[model.Umkm] {
	return []table.Column[model.Umkm]{
		textColumn("businessName", "Nama Usaha", func(u model.Umkm) string { return u.BusinessName }),
		textColumn("ownerName", "Pemilik", func(u model.Umkm) string { return u.OwnerName }),
		textColumn("businessType", "Jenis Usaha", func(u model.Umkm) string { return u.BusinessType }),
		textColumn("products", "Produk", func(u model.Umkm) string { return u.Products }),
		textColumn("businessAddress", "Alamat Usaha", func(u model.Umkm) string { return u.BusinessAddress }),
		lookupColumn("regionName", "Wilayah", l.Regions, func(u model.Umkm) *int64 { return u.RegionID }),
		lookupColumn("subdistrictName", "Kecamatan", l.Subdistricts, func(u model.Umkm) *int64 { return u.SubdistrictID }),
		pictureColumn("umkmPicture", "Foto", func(u model.Umkm) string { return u.UmkmPicture }),
		dateColumn("createdAt", "Dibuat", func(u model.Umkm) string { return u.CreatedAt }),
	}
}

// StaffColumns the staff table
func StaffColumns(*Lookups) []table.Column[model.Staff] {
	role := textColumn("role", "Peran", func(s model.Staff) string { return s.Role })
	role.Searchable = false
	role.Filters = []table.FilterOption{
		{Label: "Admin", Value: model.RoleAdmin},
		{Label: "Operator", Value: model.RoleOperator},
	}
	role.Match = func(s model.Staff, v string) bool { return s.Role == v }
	return []table.Column[model.Staff]{
		textColumn("username", "Username", func(s model.Staff) string { return s.Username }),
		textColumn("name", "Nama", func(s model.Staff) string { return s.Name }),
		textColumn("email", "Email", func(s model.Staff) string { return s.Email }),
		role,
		boolColumn("isActive", "Aktif", func(s model.Staff) bool { return s.IsActive }),
		dateColumn("createdAt", "Dibuat", func(s model.Staff) string { return s.CreatedAt }),
	}
}

// HomeColumns the home table, one row per home
func HomeColumns(l *Lookups) []table.Column[model.Home] {
	return []table.Column[model.Home]{
		lookupColumn("employeeName", "Pegawai", l.Employees, func(h model.Home) *int64 { return ptr(h.EmployeeID) }),
		lookupColumn("partnerName", "Pasangan", l.Partners, func(h model.Home) *int64 { return ptr(h.PartnerID) }),
		lookupColumn("waliName", "Wali", l.Walis, func(h model.Home) *int64 { return h.WaliID }),
		lookupColumn("regionName", "Wilayah", l.Regions, func(h model.Home) *int64 { return h.RegionID }),
		textColumn("postalCode", "Kode Pos", func(h model.Home) string { return h.PostalCode }),
		numberColumn("childrenCount", "Jumlah Anak", func(h model.Home) int { return len(h.Children) }),
		dateColumn("createdAt", "Dibuat", func(h model.Home) string { return h.CreatedAt }),
	}
}

// FamilyRow one child of a home, or the home alone when it has no children
type FamilyRow struct {
	Home  model.Home
	Child model.Children
}

// FamilyRows flattens homes into one row per child, keeping the home order
func FamilyRows(homes []model.Home) []FamilyRow {
	var out []FamilyRow
	for _, h := range homes {
		if len(h.Children) == 0 {
			out = append(out, FamilyRow{Home: h})
			continue
		}
		for _, c := range h.Children {
			out = append(out, FamilyRow{Home: h, Child: c})
		}
	}
	return out
}

// FamilyColumns the home export: home columns merge across their children's rows
func FamilyColumns(l *Lookups) []table.Column[FamilyRow] {
	merged := func(c table.Column[FamilyRow]) table.Column[FamilyRow] {
		c.Mergeable = true
		c.MergeKey = func(r FamilyRow) string { return strconv.FormatInt(r.Home.HomeID, 10) }
		return c
	}
	index := numberColumn("index", "Anak Ke", func(r FamilyRow) int { return r.Child.Index })
	index.Export = func(r FamilyRow) any {
		if r.Child.ChildrenName == "" {
			return ""
		}
		return r.Child.Index
	}
	return []table.Column[FamilyRow]{
		merged(lookupColumn("employeeName", "Pegawai", l.Employees, func(r FamilyRow) *int64 { return ptr(r.Home.EmployeeID) })),
		merged(lookupColumn("partnerName", "Pasangan", l.Partners, func(r FamilyRow) *int64 { return ptr(r.Home.PartnerID) })),
		merged(lookupColumn("waliName", "Wali", l.Walis, func(r FamilyRow) *int64 { return r.Home.WaliID })),
		merged(lookupColumn("regionName", "Wilayah", l.Regions, func(r FamilyRow) *int64 { return r.Home.RegionID })),
		textColumn("childrenName", "Nama Anak", func(r FamilyRow) string { return r.Child.ChildrenName }),
		genderColumn("childrenGender", "Jenis Kelamin", func(r FamilyRow) string { return r.Child.ChildrenGender }),
		dateColumn("childrenBirthdate", "Tanggal Lahir", func(r FamilyRow) string { return r.Child.ChildrenBirthdate }),
		index,
	}
}
